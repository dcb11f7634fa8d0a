package entity

import (
	"time"

	"github.com/dhank77/undangan.love/internal/domain/render"
	"github.com/dhank77/undangan.love/internal/domain/value"
)

// Template is an administrator authored layout with {{token}} placeholders.
type Template struct {
	ID           uint64       `json:"id"`
	Name         string       `json:"name"`
	ThumbnailURL *string      `json:"thumbnail_url"`
	HTMLLayout   string       `json:"html_layout"`
	ConfigJSON   *value.Value `json:"config_json"`
	IsPremium    bool         `json:"is_premium"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (t Template) Preview() string {
	return render.Placeholders(t.HTMLLayout, render.SampleData())
}

// TemplatePatch holds the fields of a partial update; nil means unchanged.
type TemplatePatch struct {
	Name         *string
	ThumbnailURL *string
	HTMLLayout   *string
	ConfigJSON   *value.Value
	IsPremium    *bool
}
