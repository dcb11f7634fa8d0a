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

const recentEditorsLimit = 5

type ListEditors struct {
	store interfaces.Store
	pages config.PaginationConfig
}

func NewListEditors(store interfaces.Store, pages config.PaginationConfig) *ListEditors {
	return &ListEditors{store: store, pages: pages}
}

func (c *ListEditors) Query(ctx context.Context, userID uuid.UUID, perPage *int) ([]entity.Editor, error) {
	editors, err := c.store.Repos().Editors.ListEditorsByOwner(ctx, userID, c.pages.Limit(perPage))
	if err != nil {
		return nil, fmt.Errorf("err listing editors, %w", err)
	}
	return editors, nil
}

type ListEditorTemplates struct {
	store interfaces.Store
}

func NewListEditorTemplates(store interfaces.Store) *ListEditorTemplates {
	return &ListEditorTemplates{store: store}
}

func (c *ListEditorTemplates) Query(ctx context.Context, userID uuid.UUID) ([]entity.Editor, error) {
	templates, err := c.store.Repos().Editors.ListTemplatesByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("err listing editor templates, %w", err)
	}
	return templates, nil
}

// GetEditor returns nil without an error when there is no such editor.
type GetEditor struct {
	store interfaces.Store
}

func NewGetEditor(store interfaces.Store) *GetEditor {
	return &GetEditor{store: store}
}

func (c *GetEditor) Query(ctx context.Context, editorID uint64) (*entity.Editor, error) {
	editor, err := c.store.Repos().Editors.GetEditorByID(ctx, editorID)
	if err != nil {
		var notFound errs.NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("err getting editor %d, %w", editorID, err)
	}
	return editor, nil
}

type EditorStatistics struct {
	store interfaces.Store
}

func NewEditorStatistics(store interfaces.Store) *EditorStatistics {
	return &EditorStatistics{store: store}
}

func (c *EditorStatistics) Query(ctx context.Context, userID uuid.UUID) (*entity.EditorStatistics, error) {
	editors := c.store.Repos().Editors

	total, err := editors.CountByOwner(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("err counting editors, %w", err)
	}
	templates, err := editors.CountByOwner(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("err counting editor templates, %w", err)
	}
	recent, err := editors.ListEditorsByOwner(ctx, userID, recentEditorsLimit)
	if err != nil {
		return nil, fmt.Errorf("err listing recent editors, %w", err)
	}
	if recent == nil {
		recent = []entity.Editor{}
	}

	return &entity.EditorStatistics{
		TotalEditors:   total,
		TotalTemplates: templates,
		RecentEditors:  recent,
	}, nil
}

type ListComponents struct {
	catalog interfaces.ComponentCatalog
}

func NewListComponents(catalog interfaces.ComponentCatalog) *ListComponents {
	return &ListComponents{catalog: catalog}
}

func (c *ListComponents) Query() []entity.Component {
	return c.catalog.Components()
}
