package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/infra/config"
	"github.com/sirupsen/logrus"
)

type ListTemplates struct {
	store interfaces.Store
	pages config.PaginationConfig
}

func NewListTemplates(store interfaces.Store, pages config.PaginationConfig) *ListTemplates {
	return &ListTemplates{store: store, pages: pages}
}

func (c *ListTemplates) Query(ctx context.Context, params dto.ListTemplatesParams) ([]entity.Template, error) {
	filter := consts.TemplatesAll
	if params.Type != nil {
		filter = consts.ParseTemplateFilter(*params.Type)
	}

	templates, err := c.store.Repos().Templates.ListTemplates(ctx, filter, c.pages.Limit(params.PerPage))
	if err != nil {
		return nil, fmt.Errorf("err listing %s templates, %w", filter, err)
	}
	return templates, nil
}

// GetTemplate returns nil without an error when there is no such template.
type GetTemplate struct {
	store interfaces.Store
}

func NewGetTemplate(store interfaces.Store) *GetTemplate {
	return &GetTemplate{store: store}
}

func (c *GetTemplate) Query(ctx context.Context, templateID uint64) (*entity.Template, error) {
	template, err := c.store.Repos().Templates.GetTemplateByID(ctx, templateID)
	if err != nil {
		var notFound errs.NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("err getting template %d, %w", templateID, err)
	}
	return template, nil
}

// PreviewTemplate renders a template with the demo sample data.
type PreviewTemplate struct {
	store interfaces.Store
	cache interfaces.PreviewCache
}

func NewPreviewTemplate(store interfaces.Store, cache interfaces.PreviewCache) *PreviewTemplate {
	return &PreviewTemplate{store: store, cache: cache}
}

func (c *PreviewTemplate) Query(ctx context.Context, templateID uint64) (string, error) {
	log := logrus.WithField("templateID", templateID)

	html, ok, err := c.cache.Get(ctx, templateID)
	if err != nil {
		log.WithError(err).Warn("can't read template preview from cache")
	} else if ok {
		return html, nil
	}

	template, err := c.store.Repos().Templates.GetTemplateByID(ctx, templateID)
	if err != nil {
		return "", fmt.Errorf("err getting template %d, %w", templateID, err)
	}

	// An update that invalidates between the read above and this Set leaves
	// the old preview cached until the entry's TTL runs out.
	html = template.Preview()
	if err = c.cache.Set(ctx, templateID, html); err != nil {
		log.WithError(err).Warn("can't cache template preview")
	}
	return html, nil
}
