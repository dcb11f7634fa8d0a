package interfaces

import (
	"context"

	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	shared "github.com/dhank77/undangan.love/pkg/interfaces"
	"github.com/google/uuid"
)

// Lookups of a missing row return errs.NotFoundError; the same goes for
// updates and deletes that touch no row.

type TemplateRepo interface {
	ListTemplates(ctx context.Context, filter consts.TemplateFilter, limit int) ([]entity.Template, error)
	GetTemplateByID(ctx context.Context, id uint64) (*entity.Template, error)
	InsertTemplate(ctx context.Context, template *entity.Template) error
	UpdateTemplate(ctx context.Context, id uint64, patch entity.TemplatePatch) (*entity.Template, error)
	DeleteTemplate(ctx context.Context, id uint64) error
}

type BuilderRepo interface {
	ListBuildersByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Builder, error)
	// GetBuilderByID attaches the builder's template.
	GetBuilderByID(ctx context.Context, id uint64) (*entity.Builder, error)
	InsertBuilder(ctx context.Context, builder *entity.Builder) error
	UpdateBuilder(ctx context.Context, id uint64, patch entity.BuilderPatch) (*entity.Builder, error)
	SaveLayout(ctx context.Context, id uint64, layout entity.Layout) (*entity.Builder, error)
	UpdateRenderedHTML(ctx context.Context, id uint64, html string, source consts.RenderSource) error
	DeleteBuilder(ctx context.Context, id uint64) error
}

type EditorRepo interface {
	// ListEditorsByOwner returns non-template editors, most recently updated first.
	ListEditorsByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Editor, error)
	// ListTemplatesByOwner returns template editors, newest first.
	ListTemplatesByOwner(ctx context.Context, userID uuid.UUID) ([]entity.Editor, error)
	CountByOwner(ctx context.Context, userID uuid.UUID, isTemplate bool) (int, error)
	GetEditorByID(ctx context.Context, id uint64) (*entity.Editor, error)
	InsertEditor(ctx context.Context, editor *entity.Editor) error
	UpdateEditor(ctx context.Context, id uint64, patch entity.EditorPatch) (*entity.Editor, error)
	DeleteEditor(ctx context.Context, id uint64) error
}

type PublishRepo interface {
	InsertPublish(ctx context.Context, publish *entity.Publish) error
	GetPublishByID(ctx context.Context, id uint64) (*entity.Publish, error)
	ListPublishesByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Publish, error)
	SubdomainTaken(ctx context.Context, subdomain string) (bool, error)
}

type RSVPRepo interface {
	InsertRSVP(ctx context.Context, rsvp *entity.RSVP) error
	ListRSVPsByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]entity.RSVP, error)
	DeleteRSVP(ctx context.Context, id uint64) error
}

type EventRepo interface {
	InsertEvent(ctx context.Context, event shared.Event) error
}

type PreviewCache interface {
	Get(ctx context.Context, templateID uint64) (html string, ok bool, err error)
	Set(ctx context.Context, templateID uint64, html string) error
	Invalidate(ctx context.Context, templateID uint64) error
}

type Repos struct {
	Templates TemplateRepo
	Builders  BuilderRepo
	Editors   EditorRepo
	Publishes PublishRepo
	RSVPs     RSVPRepo
	Events    EventRepo
}

// Store hands out repositories. Repos run each statement on its own; InTx
// binds them to one unit of work that commits when fn returns nil.
type Store interface {
	Repos() Repos
	InTx(ctx context.Context, fn func(repos Repos) error) error
}

// Publisher relays outbox events to a broker.
type Publisher interface {
	Publish(ctx context.Context, event string, key string, payload []byte) error
	Close() error
}

// SnapshotStorage archives rendered invitation pages.
type SnapshotStorage interface {
	PutSnapshot(ctx context.Context, key string, html string) (string, error)
}

// ContentEnricher rewrites an invitation message.
type ContentEnricher interface {
	Enrich(ctx context.Context, content string) (string, error)
}

// PhoneNormalizer turns user supplied phone numbers into E.164.
type PhoneNormalizer interface {
	Normalize(raw string) (string, error)
}

type ComponentCatalog interface {
	Components() []entity.Component
}
