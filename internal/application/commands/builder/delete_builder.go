package builder

import (
	"context"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/interfaces"
)

type DeleteBuilder struct {
	store interfaces.Store
}

func NewDeleteBuilder(store interfaces.Store) *DeleteBuilder {
	return &DeleteBuilder{store: store}
}

func (c *DeleteBuilder) Execute(ctx context.Context, builderID uint64) error {
	if err := c.store.Repos().Builders.DeleteBuilder(ctx, builderID); err != nil {
		return fmt.Errorf("err deleting builder %d, %w", builderID, err)
	}
	return nil
}
