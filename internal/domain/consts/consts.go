package consts

type PublishStatus string

const (
	PublishStatusDraft       PublishStatus = "draft"
	PublishStatusPublished   PublishStatus = "published"
	PublishStatusUnpublished PublishStatus = "unpublished"
)

type Attending string

const (
	AttendingYes   Attending = "yes"
	AttendingNo    Attending = "no"
	AttendingMaybe Attending = "maybe"
)

func (a Attending) Valid() bool {
	switch a {
	case AttendingYes, AttendingNo, AttendingMaybe:
		return true
	}
	return false
}

// RenderSource records which path last wrote a builder's rendered_html.
type RenderSource string

const (
	// RenderSourceTemplate is the server side placeholder render.
	RenderSourceTemplate RenderSource = "template"
	// RenderSourceEditor is HTML handed over by the visual editor as is.
	RenderSourceEditor RenderSource = "editor"
)

type TemplateFilter string

const (
	TemplatesAll     TemplateFilter = "all"
	TemplatesFree    TemplateFilter = "free"
	TemplatesPremium TemplateFilter = "premium"
)

// ParseTemplateFilter falls back to TemplatesAll for unknown input.
func ParseTemplateFilter(s string) TemplateFilter {
	switch TemplateFilter(s) {
	case TemplatesFree:
		return TemplatesFree
	case TemplatesPremium:
		return TemplatesPremium
	}
	return TemplatesAll
}

type OutboxStatus int

const (
	NotProcessed OutboxStatus = iota
	Processed
	Processing
	InError
)
