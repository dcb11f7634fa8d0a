package editor

import (
	"context"
	"fmt"
	"time"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/google/uuid"
)

type SaveEditor struct {
	store interfaces.Store
}

func NewSaveEditor(store interfaces.Store) *SaveEditor {
	return &SaveEditor{store: store}
}

func (c *SaveEditor) Execute(ctx context.Context, userID uuid.UUID, req *dto.SaveEditorRequest) (*entity.Editor, error) {
	if err := dto.ValidateWithDocuments(req, dto.RequiredDocument("content", req.Content)); err != nil {
		return nil, err
	}
	return insertEditor(ctx, c.store, newEditor(userID, req, false))
}

// SaveEditorTemplate stores a project as a reusable template of its owner.
type SaveEditorTemplate struct {
	store interfaces.Store
}

func NewSaveEditorTemplate(store interfaces.Store) *SaveEditorTemplate {
	return &SaveEditorTemplate{store: store}
}

func (c *SaveEditorTemplate) Execute(ctx context.Context, userID uuid.UUID, req *dto.SaveEditorTemplateRequest) (*entity.Editor, error) {
	if err := dto.ValidateWithDocuments(req, dto.RequiredDocument("content", req.Content)); err != nil {
		return nil, err
	}
	editor := newEditor(userID, &req.SaveEditorRequest, true)
	editor.Thumbnail = req.Thumbnail
	return insertEditor(ctx, c.store, editor)
}

func newEditor(userID uuid.UUID, req *dto.SaveEditorRequest, isTemplate bool) entity.Editor {
	now := time.Now()
	html := req.HTML
	return entity.Editor{
		UserID:     userID,
		Name:       req.Name,
		Content:    req.Content,
		HTML:       &html,
		CSS:        req.CSS,
		IsTemplate: isTemplate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func insertEditor(ctx context.Context, store interfaces.Store, editor entity.Editor) (*entity.Editor, error) {
	if err := store.Repos().Editors.InsertEditor(ctx, &editor); err != nil {
		return nil, fmt.Errorf("err inserting editor, %w", err)
	}
	return &editor, nil
}
