package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/entity"
)

type UpdateBuilder struct {
	store interfaces.Store
}

func NewUpdateBuilder(store interfaces.Store) *UpdateBuilder {
	return &UpdateBuilder{store: store}
}

func (c *UpdateBuilder) Execute(ctx context.Context, builderID uint64, req *dto.UpdateBuilderRequest) (*entity.Builder, error) {
	if err := dto.ValidateWithDocuments(req, dto.Document("custom_data_json", req.CustomData)); err != nil {
		return nil, err
	}
	repos := c.store.Repos()

	if req.TemplateID != nil {
		if _, err := repos.Templates.GetTemplateByID(ctx, *req.TemplateID); err != nil {
			var notFound errs.NotFoundError
			if errors.As(err, &notFound) {
				return nil, errs.NewValidationError("template_id", "selected template does not exist")
			}
			return nil, fmt.Errorf("err getting template %d, %w", *req.TemplateID, err)
		}
	}

	builder, err := repos.Builders.UpdateBuilder(ctx, builderID, entity.BuilderPatch{
		TemplateID:   req.TemplateID,
		Name:         req.Name,
		CustomData:   req.CustomData,
		RenderedHTML: req.RenderedHTML,
	})
	if err != nil {
		return nil, fmt.Errorf("err updating builder %d, %w", builderID, err)
	}
	return builder, nil
}
