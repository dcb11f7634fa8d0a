package builder

import (
	"context"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/events"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/sirupsen/logrus"
)

// RenderPreview re-renders a builder from its template and custom data and
// overwrites the stored rendered_html with the result.
type RenderPreview struct {
	store interfaces.Store
}

func NewRenderPreview(store interfaces.Store) *RenderPreview {
	return &RenderPreview{store: store}
}

func (c *RenderPreview) Execute(ctx context.Context, builderID uint64) (string, error) {
	var html string
	err := c.store.InTx(ctx, func(repos interfaces.Repos) error {
		builder, err := repos.Builders.GetBuilderByID(ctx, builderID)
		if err != nil {
			return err
		}
		template := builder.Template
		if template == nil {
			template, err = repos.Templates.GetTemplateByID(ctx, builder.TemplateID)
			if err != nil {
				return err
			}
		}

		html = builder.Render(*template)
		if err = repos.Builders.UpdateRenderedHTML(ctx, builderID, html, consts.RenderSourceTemplate); err != nil {
			return err
		}
		return repos.Events.InsertEvent(ctx, events.BuilderRendered{
			BuilderID:  builderID,
			TemplateID: template.ID,
			UserID:     builder.UserID.String(),
		})
	})
	if err != nil {
		return "", fmt.Errorf("err rendering builder %d, %w", builderID, err)
	}

	logrus.WithField("builderID", builderID).Debug("builder rendered")
	return html, nil
}
