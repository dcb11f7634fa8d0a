package db

import (
	"encoding/json"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/events"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/domain/value"
)

// DocumentToRaw encodes an optional document for a JSONB column. Absent and
// null documents are stored as SQL NULL.
func DocumentToRaw(doc *value.Value) (json.RawMessage, error) {
	if doc == nil || doc.IsNull() {
		return nil, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("err encoding document, %v", err)
	}
	return raw, nil
}

func RawToDocument(raw json.RawMessage) (*value.Value, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	doc, err := value.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("err decoding document, %v", err)
	}
	if doc.IsNull() {
		return nil, nil
	}
	return &doc, nil
}

func MapTemplateModelToEntity(m Template) (entity.Template, error) {
	config, err := RawToDocument(m.ConfigJSON)
	if err != nil {
		return entity.Template{}, err
	}
	return entity.Template{
		ID:           m.ID,
		Name:         m.Name,
		ThumbnailURL: m.ThumbnailURL,
		HTMLLayout:   m.HTMLLayout,
		ConfigJSON:   config,
		IsPremium:    m.IsPremium,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

func MapBuilderModelToEntity(m Builder) (entity.Builder, error) {
	customData, err := RawToDocument(m.CustomDataJSON)
	if err != nil {
		return entity.Builder{}, err
	}
	var source *consts.RenderSource
	if m.RenderSource != nil {
		s := consts.RenderSource(*m.RenderSource)
		source = &s
	}
	return entity.Builder{
		ID:           m.ID,
		UserID:       m.UserID,
		TemplateID:   m.TemplateID,
		Name:         m.Name,
		CustomData:   customData,
		RenderedHTML: m.RenderedHTML,
		RenderSource: source,
		LayoutHTML:   m.LayoutHTML,
		LayoutCSS:    m.LayoutCSS,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

func MapEditorModelToEntity(m Editor) (entity.Editor, error) {
	content, err := RawToDocument(m.Content)
	if err != nil {
		return entity.Editor{}, err
	}
	return entity.Editor{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Content:     content,
		HTML:        m.HTML,
		CSS:         m.CSS,
		IsTemplate:  m.IsTemplate,
		Thumbnail:   m.Thumbnail,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

func MapPublishModelToEntity(m Publish) entity.Publish {
	return entity.Publish{
		ID:           m.ID,
		UserID:       m.UserID,
		BuilderID:    m.BuilderID,
		Subdomain:    m.Subdomain,
		CustomDomain: m.CustomDomain,
		PublishedAt:  m.PublishedAt,
		Status:       consts.PublishStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func MapRSVPModelToEntity(m RSVP) entity.RSVP {
	return entity.RSVP{
		ID:          m.ID,
		UserID:      m.UserID,
		GuestName:   m.GuestName,
		PhoneNumber: m.PhoneNumber,
		Attending:   consts.Attending(m.Attending),
		Message:     m.Message,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func MapOutboxModelToBuilderRendered(outbox Outbox) (events.BuilderRendered, error) {
	var rendered events.BuilderRendered
	if err := json.Unmarshal(outbox.Payload, &rendered); err != nil {
		return events.BuilderRendered{}, fmt.Errorf("err unmarshalling %s event, %v", outbox.Event, err)
	}
	return rendered, nil
}
