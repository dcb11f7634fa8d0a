package template

import (
	"context"
	"fmt"
	"time"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/entity"
)

type CreateTemplate struct {
	store interfaces.Store
}

func NewCreateTemplate(store interfaces.Store) *CreateTemplate {
	return &CreateTemplate{store: store}
}

func (c *CreateTemplate) Execute(ctx context.Context, req *dto.CreateTemplateRequest) (*entity.Template, error) {
	if err := dto.ValidateWithDocuments(req, dto.Document("config_json", req.ConfigJSON)); err != nil {
		return nil, err
	}

	now := time.Now()
	template := entity.Template{
		Name:         req.Name,
		ThumbnailURL: req.ThumbnailURL,
		HTMLLayout:   req.HTMLLayout,
		ConfigJSON:   req.ConfigJSON,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.IsPremium != nil {
		template.IsPremium = *req.IsPremium
	}

	if err := c.store.Repos().Templates.InsertTemplate(ctx, &template); err != nil {
		return nil, fmt.Errorf("err inserting template, %w", err)
	}
	return &template, nil
}
