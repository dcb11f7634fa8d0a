package editor

import (
	"context"
	"fmt"
	"time"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/events"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/entity"
)

type DuplicateEditor struct {
	store interfaces.Store
}

func NewDuplicateEditor(store interfaces.Store) *DuplicateEditor {
	return &DuplicateEditor{store: store}
}

func (c *DuplicateEditor) Execute(ctx context.Context, editorID uint64, req *dto.DuplicateEditorRequest) (*entity.Editor, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	var copied entity.Editor
	err := c.store.InTx(ctx, func(repos interfaces.Repos) error {
		source, err := repos.Editors.GetEditorByID(ctx, editorID)
		if err != nil {
			return err
		}

		copied = source.Duplicate(req.Name)
		copied.CreatedAt = time.Now()
		copied.UpdatedAt = copied.CreatedAt
		if err = repos.Editors.InsertEditor(ctx, &copied); err != nil {
			return err
		}
		return repos.Events.InsertEvent(ctx, events.EditorDuplicated{
			SourceID: source.ID,
			EditorID: copied.ID,
			UserID:   copied.UserID.String(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("err duplicating editor %d, %w", editorID, err)
	}
	return &copied, nil
}
