package query

import (
	"context"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/infra/config"
	"github.com/google/uuid"
)

type ListRSVPs struct {
	store interfaces.Store
	pages config.PaginationConfig
}

func NewListRSVPs(store interfaces.Store, pages config.PaginationConfig) *ListRSVPs {
	return &ListRSVPs{store: store, pages: pages}
}

func (c *ListRSVPs) Query(ctx context.Context, ownerID uuid.UUID, perPage *int) ([]entity.RSVP, error) {
	rsvps, err := c.store.Repos().RSVPs.ListRSVPsByOwner(ctx, ownerID, c.pages.Limit(perPage))
	if err != nil {
		return nil, fmt.Errorf("err listing rsvps, %w", err)
	}
	return rsvps, nil
}
