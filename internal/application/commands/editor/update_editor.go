package editor

import (
	"context"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/entity"
)

type UpdateEditor struct {
	store interfaces.Store
}

func NewUpdateEditor(store interfaces.Store) *UpdateEditor {
	return &UpdateEditor{store: store}
}

func (c *UpdateEditor) Execute(ctx context.Context, editorID uint64, req *dto.UpdateEditorRequest) (*entity.Editor, error) {
	if err := dto.ValidateWithDocuments(req, dto.Document("content", req.Content)); err != nil {
		return nil, err
	}

	editor, err := c.store.Repos().Editors.UpdateEditor(ctx, editorID, entity.EditorPatch{
		Name:    req.Name,
		Content: req.Content,
		HTML:    req.HTML,
		CSS:     req.CSS,
	})
	if err != nil {
		return nil, fmt.Errorf("err updating editor %d, %w", editorID, err)
	}
	return editor, nil
}

type DeleteEditor struct {
	store interfaces.Store
}

func NewDeleteEditor(store interfaces.Store) *DeleteEditor {
	return &DeleteEditor{store: store}
}

func (c *DeleteEditor) Execute(ctx context.Context, editorID uint64) error {
	if err := c.store.Repos().Editors.DeleteEditor(ctx, editorID); err != nil {
		return fmt.Errorf("err deleting editor %d, %w", editorID, err)
	}
	return nil
}
