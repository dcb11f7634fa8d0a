package template

import (
	"context"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/events"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/sirupsen/logrus"
)

// DeleteTemplate removes a template. Builders made from it go with it.
type DeleteTemplate struct {
	store interfaces.Store
	cache interfaces.PreviewCache
}

func NewDeleteTemplate(store interfaces.Store, cache interfaces.PreviewCache) *DeleteTemplate {
	return &DeleteTemplate{store: store, cache: cache}
}

func (c *DeleteTemplate) Execute(ctx context.Context, templateID uint64) error {
	err := c.store.InTx(ctx, func(repos interfaces.Repos) error {
		if err := repos.Templates.DeleteTemplate(ctx, templateID); err != nil {
			return err
		}
		return repos.Events.InsertEvent(ctx, events.TemplateDeleted{TemplateID: templateID})
	})
	if err != nil {
		return fmt.Errorf("err deleting template %d, %w", templateID, err)
	}

	if err := c.cache.Invalidate(ctx, templateID); err != nil {
		logrus.WithError(err).WithField("templateID", templateID).Warn("can't invalidate template preview")
	}
	return nil
}
