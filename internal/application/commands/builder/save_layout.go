package builder

import (
	"context"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/events"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/domain/value"
)

// SaveLayout stores what the visual editor produced. Any rendered_html it
// hands over is kept verbatim and marks the builder as editor rendered.
type SaveLayout struct {
	store interfaces.Store
}

func NewSaveLayout(store interfaces.Store) *SaveLayout {
	return &SaveLayout{store: store}
}

func (c *SaveLayout) Execute(ctx context.Context, builderID uint64, req *dto.SaveLayoutRequest) (*entity.Builder, error) {
	if err := dto.ValidateWithDocuments(req, dto.Document("custom_data_json", req.CustomData)); err != nil {
		return nil, err
	}

	customData := value.FromObject(value.Object{})
	if req.CustomData != nil && !req.CustomData.IsNull() {
		customData = *req.CustomData
	}
	layout := entity.Layout{
		CustomData:   customData,
		RenderedHTML: req.RenderedHTML,
		LayoutHTML:   req.HTMLLayout,
		LayoutCSS:    req.CSSStyles,
	}

	var builder *entity.Builder
	err := c.store.InTx(ctx, func(repos interfaces.Repos) error {
		var err error
		builder, err = repos.Builders.SaveLayout(ctx, builderID, layout)
		if err != nil {
			return err
		}
		saved := events.BuilderLayoutSaved{BuilderID: builderID}
		if req.RenderedHTML != nil {
			saved.RenderSource = string(consts.RenderSourceEditor)
		}
		return repos.Events.InsertEvent(ctx, saved)
	})
	if err != nil {
		return nil, fmt.Errorf("err saving layout of builder %d, %w", builderID, err)
	}
	return builder, nil
}
