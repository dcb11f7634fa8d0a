package template

import (
	"context"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/sirupsen/logrus"
)

type UpdateTemplate struct {
	store interfaces.Store
	cache interfaces.PreviewCache
}

func NewUpdateTemplate(store interfaces.Store, cache interfaces.PreviewCache) *UpdateTemplate {
	return &UpdateTemplate{store: store, cache: cache}
}

func (c *UpdateTemplate) Execute(ctx context.Context, templateID uint64, req *dto.UpdateTemplateRequest) (*entity.Template, error) {
	if err := dto.ValidateWithDocuments(req, dto.Document("config_json", req.ConfigJSON)); err != nil {
		return nil, err
	}

	template, err := c.store.Repos().Templates.UpdateTemplate(ctx, templateID, entity.TemplatePatch{
		Name:         req.Name,
		ThumbnailURL: req.ThumbnailURL,
		HTMLLayout:   req.HTMLLayout,
		ConfigJSON:   req.ConfigJSON,
		IsPremium:    req.IsPremium,
	})
	if err != nil {
		return nil, fmt.Errorf("err updating template %d, %w", templateID, err)
	}

	if err := c.cache.Invalidate(ctx, templateID); err != nil {
		logrus.WithError(err).WithField("templateID", templateID).Warn("can't invalidate template preview")
	}
	return template, nil
}
