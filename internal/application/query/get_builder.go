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

type ListBuilders struct {
	store interfaces.Store
	pages config.PaginationConfig
}

func NewListBuilders(store interfaces.Store, pages config.PaginationConfig) *ListBuilders {
	return &ListBuilders{store: store, pages: pages}
}

func (c *ListBuilders) Query(ctx context.Context, userID uuid.UUID, perPage *int) ([]entity.Builder, error) {
	builders, err := c.store.Repos().Builders.ListBuildersByOwner(ctx, userID, c.pages.Limit(perPage))
	if err != nil {
		return nil, fmt.Errorf("err listing builders, %w", err)
	}
	return builders, nil
}

// GetBuilder returns nil without an error when there is no such builder.
type GetBuilder struct {
	store interfaces.Store
}

func NewGetBuilder(store interfaces.Store) *GetBuilder {
	return &GetBuilder{store: store}
}

func (c *GetBuilder) Query(ctx context.Context, builderID uint64) (*entity.Builder, error) {
	builder, err := c.store.Repos().Builders.GetBuilderByID(ctx, builderID)
	if err != nil {
		var notFound errs.NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("err getting builder %d, %w", builderID, err)
	}
	return builder, nil
}
