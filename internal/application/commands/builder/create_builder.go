package builder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/google/uuid"
)

type CreateBuilder struct {
	store interfaces.Store
}

func NewCreateBuilder(store interfaces.Store) *CreateBuilder {
	return &CreateBuilder{store: store}
}

func (c *CreateBuilder) Execute(ctx context.Context, userID uuid.UUID, req *dto.CreateBuilderRequest) (*entity.Builder, error) {
	if err := dto.ValidateWithDocuments(req, dto.Document("custom_data_json", req.CustomData)); err != nil {
		return nil, err
	}
	repos := c.store.Repos()

	template, err := repos.Templates.GetTemplateByID(ctx, req.TemplateID)
	if err != nil {
		var notFound errs.NotFoundError
		if errors.As(err, &notFound) {
			return nil, errs.NewValidationError("template_id", "selected template does not exist")
		}
		return nil, fmt.Errorf("err getting template %d, %w", req.TemplateID, err)
	}

	now := time.Now()
	builder := entity.Builder{
		UserID:       userID,
		TemplateID:   template.ID,
		Name:         req.Name,
		CustomData:   req.CustomData,
		RenderedHTML: req.RenderedHTML,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.RenderedHTML != nil {
		source := consts.RenderSourceEditor
		builder.RenderSource = &source
	}
	if err = repos.Builders.InsertBuilder(ctx, &builder); err != nil {
		return nil, fmt.Errorf("err inserting builder, %w", err)
	}
	builder.Template = template
	return &builder, nil
}
