package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/infra/config"
	"github.com/google/uuid"
)

type ListPublishes struct {
	store interfaces.Store
	pages config.PaginationConfig
}

func NewListPublishes(store interfaces.Store, pages config.PaginationConfig) *ListPublishes {
	return &ListPublishes{store: store, pages: pages}
}

func (c *ListPublishes) Query(ctx context.Context, userID uuid.UUID, perPage *int) ([]entity.Publish, error) {
	publishes, err := c.store.Repos().Publishes.ListPublishesByOwner(ctx, userID, c.pages.Limit(perPage))
	if err != nil {
		return nil, fmt.Errorf("err listing publishes, %w", err)
	}
	return publishes, nil
}

// GetPublish returns nil without an error when there is no such record.
type GetPublish struct {
	store interfaces.Store
}

func NewGetPublish(store interfaces.Store) *GetPublish {
	return &GetPublish{store: store}
}

func (c *GetPublish) Query(ctx context.Context, publishID uint64) (*entity.Publish, error) {
	publish, err := c.store.Repos().Publishes.GetPublishByID(ctx, publishID)
	if err != nil {
		var notFound errs.NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("err getting publish %d, %w", publishID, err)
	}
	return publish, nil
}
