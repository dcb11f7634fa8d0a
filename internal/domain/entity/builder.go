package entity

import (
	"time"

	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/render"
	"github.com/dhank77/undangan.love/internal/domain/value"
	"github.com/google/uuid"
)

// Builder is a user's customized instance of a template. RenderedHTML is a
// cache of the last render and may be stale until Render is called again.
type Builder struct {
	ID           uint64               `json:"id"`
	UserID       uuid.UUID            `json:"user_id"`
	TemplateID   uint64               `json:"template_id"`
	Name         *string              `json:"name"`
	CustomData   *value.Value         `json:"custom_data_json"`
	RenderedHTML *string              `json:"rendered_html"`
	RenderSource *consts.RenderSource `json:"render_source"`
	LayoutHTML   *string              `json:"html_layout"`
	LayoutCSS    *string              `json:"css_styles"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`

	Template *Template `json:"template,omitempty"`
}

// Fields returns the custom data as a flat key space for the renderer.
func (b Builder) Fields() value.Object {
	if b.CustomData == nil {
		return nil
	}
	return b.CustomData.Fields()
}

// Render applies the builder's custom data to the given template layout.
func (b Builder) Render(template Template) string {
	return render.Placeholders(template.HTMLLayout, b.Fields())
}

type BuilderPatch struct {
	TemplateID   *uint64
	Name         *string
	CustomData   *value.Value
	RenderedHTML *string
}

// Layout is what the visual editing path saves in one go.
type Layout struct {
	CustomData   value.Value
	RenderedHTML *string
	LayoutHTML   *string
	LayoutCSS    *string
}
