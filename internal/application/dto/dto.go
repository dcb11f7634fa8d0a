package dto

import (
	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/domain/value"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields []errs.FieldError `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HTMLResponse struct {
	HTML string `json:"html"`
}

type ListParams struct {
	PerPage *int `json:"per_page,omitempty"`
}

type ListTemplatesParams struct {
	Type    *string `json:"type,omitempty"`
	PerPage *int    `json:"per_page,omitempty"`
}

type CreateTemplateRequest struct {
	Name         string       `json:"name" validate:"required,min=3,max=255"`
	ThumbnailURL *string      `json:"thumbnail_url" validate:"omitnil,url"`
	HTMLLayout   string       `json:"html_layout" validate:"required"`
	ConfigJSON   *value.Value `json:"config_json"`
	IsPremium    *bool        `json:"is_premium"`
}

type UpdateTemplateRequest struct {
	Name         *string      `json:"name" validate:"omitnil,min=3,max=255"`
	ThumbnailURL *string      `json:"thumbnail_url" validate:"omitnil,url"`
	HTMLLayout   *string      `json:"html_layout" validate:"omitnil,min=1"`
	ConfigJSON   *value.Value `json:"config_json"`
	IsPremium    *bool        `json:"is_premium"`
}

type CreateBuilderRequest struct {
	TemplateID   uint64       `json:"template_id" validate:"required"`
	Name         *string      `json:"name" validate:"omitnil,min=3,max=255"`
	CustomData   *value.Value `json:"custom_data_json"`
	RenderedHTML *string      `json:"rendered_html"`
}

type UpdateBuilderRequest struct {
	TemplateID   *uint64      `json:"template_id" validate:"omitnil,gt=0"`
	Name         *string      `json:"name" validate:"omitnil,min=3,max=255"`
	CustomData   *value.Value `json:"custom_data_json"`
	RenderedHTML *string      `json:"rendered_html"`
}

// SaveLayoutRequest is sent by the visual editor. Only CustomData is
// required to be meaningful; the raw HTML/CSS is stored as handed over.
type SaveLayoutRequest struct {
	HTMLLayout   *string      `json:"html_layout"`
	CSSStyles    *string      `json:"css_styles"`
	RenderedHTML *string      `json:"rendered_html"`
	CustomData   *value.Value `json:"custom_data_json"`
}

type EnrichContentRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}

type EnrichContentResponse struct {
	Enriched string `json:"enriched"`
}

type SaveEditorRequest struct {
	Name    string       `json:"name" validate:"required,min=3,max=255"`
	Content *value.Value `json:"content"`
	HTML    string       `json:"html" validate:"required"`
	CSS     *string      `json:"css"`
}

type SaveEditorTemplateRequest struct {
	SaveEditorRequest
	Thumbnail *string `json:"thumbnail" validate:"omitnil,max=2048"`
}

type UpdateEditorRequest struct {
	Name    *string      `json:"name" validate:"omitnil,min=3,max=255"`
	Content *value.Value `json:"content"`
	HTML    *string      `json:"html"`
	CSS     *string      `json:"css"`
}

type DuplicateEditorRequest struct {
	Name string `json:"name" validate:"required,min=3,max=255"`
}

type CreateRSVPRequest struct {
	GuestName   string  `json:"guest_name" validate:"required,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitnil,max=32"`
	Attending   *string `json:"attending" validate:"omitnil,oneof=yes no maybe"`
	Message     *string `json:"message" validate:"omitnil,max=2000"`
}

type CreatePublishRequest struct {
	BuilderID    uint64  `json:"builder_id" validate:"required"`
	Subdomain    string  `json:"subdomain" validate:"required,max=63,hostname_rfc1123"`
	CustomDomain *string `json:"custom_domain" validate:"omitnil,fqdn"`
}
