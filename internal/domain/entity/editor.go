package entity

import (
	"time"

	"github.com/dhank77/undangan.love/internal/domain/value"
	"github.com/google/uuid"
)

// Editor is a drag-and-drop page project, independent of builders.
type Editor struct {
	ID          uint64       `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Name        string       `json:"name"`
	Content     *value.Value `json:"content"`
	HTML        *string      `json:"html"`
	CSS         *string      `json:"css"`
	IsTemplate  bool         `json:"is_template"`
	Thumbnail   *string      `json:"thumbnail"`
	PublishedAt *time.Time   `json:"published_at"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Duplicate copies the project under a new name. Copies are never templates.
func (e Editor) Duplicate(name string) Editor {
	return Editor{
		UserID:     e.UserID,
		Name:       name,
		Content:    e.Content,
		HTML:       e.HTML,
		CSS:        e.CSS,
		IsTemplate: false,
	}
}

type EditorPatch struct {
	Name    *string
	Content *value.Value
	HTML    *string
	CSS     *string
}

type EditorStatistics struct {
	TotalEditors   int      `json:"total_editors"`
	TotalTemplates int      `json:"total_templates"`
	RecentEditors  []Editor `json:"recent_editors"`
}
