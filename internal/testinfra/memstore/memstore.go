// Package memstore keeps every repository in process memory. It backs the
// command, query and REST tests; the Postgres repositories are covered
// against a real database in infra/db/repo.
package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	shared "github.com/dhank77/undangan.love/pkg/interfaces"
	"github.com/google/uuid"
)

type Event struct {
	Type    string
	Payload json.RawMessage
}

type Store struct {
	mu    sync.Mutex
	clock time.Time
	seq   uint64

	templates map[uint64]entity.Template
	builders  map[uint64]entity.Builder
	editors   map[uint64]entity.Editor
	publishes map[uint64]entity.Publish
	rsvps     map[uint64]entity.RSVP
	events    []Event
}

var _ interfaces.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		clock:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		templates: make(map[uint64]entity.Template),
		builders:  make(map[uint64]entity.Builder),
		editors:   make(map[uint64]entity.Editor),
		publishes: make(map[uint64]entity.Publish),
		rsvps:     make(map[uint64]entity.RSVP),
	}
}

func (s *Store) Repos() interfaces.Repos {
	return interfaces.Repos{
		Templates: templateRepo{s},
		Builders:  builderRepo{s},
		Editors:   editorRepo{s},
		Publishes: publishRepo{s},
		RSVPs:     rsvpRepo{s},
		Events:    eventRepo{s},
	}
}

// InTx runs fn against the same maps; a failing fn is not rolled back.
func (s *Store) InTx(_ context.Context, fn func(repos interfaces.Repos) error) error {
	return fn(s.Repos())
}

func (s *Store) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// now advances a fake clock so that orderings by timestamp are strict.
func (s *Store) now() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *Store) nextID() uint64 {
	s.seq++
	return s.seq
}

type templateRepo struct{ s *Store }

func (r templateRepo) ListTemplates(_ context.Context, filter consts.TemplateFilter, limit int) ([]entity.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Template, 0)
	for _, t := range r.s.templates {
		if filter == consts.TemplatesFree && t.IsPremium || filter == consts.TemplatesPremium && !t.IsPremium {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return limited(out, limit), nil
}

func (r templateRepo) GetTemplateByID(_ context.Context, id uint64) (*entity.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.templates[id]
	if !ok {
		return nil, errs.NotFoundError{Entity: "template", ID: id}
	}
	return &t, nil
}

func (r templateRepo) InsertTemplate(_ context.Context, template *entity.Template) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	template.ID = r.s.nextID()
	template.CreatedAt = r.s.now()
	template.UpdatedAt = template.CreatedAt
	r.s.templates[template.ID] = *template
	return nil
}

func (r templateRepo) UpdateTemplate(_ context.Context, id uint64, patch entity.TemplatePatch) (*entity.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.templates[id]
	if !ok {
		return nil, errs.NotFoundError{Entity: "template", ID: id}
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.ThumbnailURL != nil {
		t.ThumbnailURL = patch.ThumbnailURL
	}
	if patch.HTMLLayout != nil {
		t.HTMLLayout = *patch.HTMLLayout
	}
	if patch.ConfigJSON != nil {
		t.ConfigJSON = patch.ConfigJSON
	}
	if patch.IsPremium != nil {
		t.IsPremium = *patch.IsPremium
	}
	t.UpdatedAt = r.s.now()
	r.s.templates[id] = t
	return &t, nil
}

func (r templateRepo) DeleteTemplate(_ context.Context, id uint64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.templates[id]; !ok {
		return errs.NotFoundError{Entity: "template", ID: id}
	}
	delete(r.s.templates, id)
	for bid, b := range r.s.builders {
		if b.TemplateID == id {
			r.s.deleteBuilder(bid)
		}
	}
	return nil
}

type builderRepo struct{ s *Store }

func (r builderRepo) ListBuildersByOwner(_ context.Context, userID uuid.UUID, limit int) ([]entity.Builder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Builder, 0)
	for _, b := range r.s.builders {
		if b.UserID == userID {
			out = append(out, r.s.withTemplate(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return limited(out, limit), nil
}

func (r builderRepo) GetBuilderByID(_ context.Context, id uint64) (*entity.Builder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.builders[id]
	if !ok {
		return nil, errs.NotFoundError{Entity: "builder", ID: id}
	}
	b = r.s.withTemplate(b)
	return &b, nil
}

func (r builderRepo) InsertBuilder(_ context.Context, builder *entity.Builder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.templates[builder.TemplateID]; !ok {
		return errs.NotFoundError{Entity: "template", ID: builder.TemplateID}
	}
	builder.ID = r.s.nextID()
	builder.CreatedAt = r.s.now()
	builder.UpdatedAt = builder.CreatedAt
	stored := *builder
	stored.Template = nil
	r.s.builders[builder.ID] = stored
	return nil
}

func (r builderRepo) UpdateBuilder(_ context.Context, id uint64, patch entity.BuilderPatch) (*entity.Builder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.builders[id]
	if !ok {
		return nil, errs.NotFoundError{Entity: "builder", ID: id}
	}
	if patch.TemplateID != nil {
		b.TemplateID = *patch.TemplateID
	}
	if patch.Name != nil {
		b.Name = patch.Name
	}
	if patch.CustomData != nil {
		b.CustomData = patch.CustomData
	}
	if patch.RenderedHTML != nil {
		source := consts.RenderSourceEditor
		b.RenderedHTML = patch.RenderedHTML
		b.RenderSource = &source
	}
	b.UpdatedAt = r.s.now()
	r.s.builders[id] = b
	b = r.s.withTemplate(b)
	return &b, nil
}

func (r builderRepo) SaveLayout(_ context.Context, id uint64, layout entity.Layout) (*entity.Builder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.builders[id]
	if !ok {
		return nil, errs.NotFoundError{Entity: "builder", ID: id}
	}
	data := layout.CustomData
	b.CustomData = &data
	if layout.LayoutHTML != nil {
		b.LayoutHTML = layout.LayoutHTML
	}
	if layout.LayoutCSS != nil {
		b.LayoutCSS = layout.LayoutCSS
	}
	if layout.RenderedHTML != nil {
		source := consts.RenderSourceEditor
		b.RenderedHTML = layout.RenderedHTML
		b.RenderSource = &source
	}
	b.UpdatedAt = r.s.now()
	r.s.builders[id] = b
	b = r.s.withTemplate(b)
	return &b, nil
}

func (r builderRepo) UpdateRenderedHTML(_ context.Context, id uint64, html string, source consts.RenderSource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.builders[id]
	if !ok {
		return errs.NotFoundError{Entity: "builder", ID: id}
	}
	b.RenderedHTML = &html
	b.RenderSource = &source
	b.UpdatedAt = r.s.now()
	r.s.builders[id] = b
	return nil
}

func (r builderRepo) DeleteBuilder(_ context.Context, id uint64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.builders[id]; !ok {
		return errs.NotFoundError{Entity: "builder", ID: id}
	}
	r.s.deleteBuilder(id)
	return nil
}

func (s *Store) deleteBuilder(id uint64) {
	delete(s.builders, id)
	for pid, p := range s.publishes {
		if p.BuilderID == id {
			delete(s.publishes, pid)
		}
	}
}

func (s *Store) withTemplate(b entity.Builder) entity.Builder {
	if t, ok := s.templates[b.TemplateID]; ok {
		b.Template = &t
	}
	return b
}

type editorRepo struct{ s *Store }

func (r editorRepo) byOwner(userID uuid.UUID, isTemplate bool) []entity.Editor {
	out := make([]entity.Editor, 0)
	for _, e := range r.s.editors {
		if e.UserID == userID && e.IsTemplate == isTemplate {
			out = append(out, e)
		}
	}
	return out
}

func (r editorRepo) ListEditorsByOwner(_ context.Context, userID uuid.UUID, limit int) ([]entity.Editor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.byOwner(userID, false)
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return limited(out, limit), nil
}

func (r editorRepo) ListTemplatesByOwner(_ context.Context, userID uuid.UUID) ([]entity.Editor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.byOwner(userID, true)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r editorRepo) CountByOwner(_ context.Context, userID uuid.UUID, isTemplate bool) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.byOwner(userID, isTemplate)), nil
}

func (r editorRepo) GetEditorByID(_ context.Context, id uint64) (*entity.Editor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.editors[id]
	if !ok {
		return nil, errs.NotFoundError{Entity: "editor", ID: id}
	}
	return &e, nil
}

func (r editorRepo) InsertEditor(_ context.Context, editor *entity.Editor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	editor.ID = r.s.nextID()
	editor.CreatedAt = r.s.now()
	editor.UpdatedAt = editor.CreatedAt
	r.s.editors[editor.ID] = *editor
	return nil
}

func (r editorRepo) UpdateEditor(_ context.Context, id uint64, patch entity.EditorPatch) (*entity.Editor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.editors[id]
	if !ok {
		return nil, errs.NotFoundError{Entity: "editor", ID: id}
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Content != nil {
		e.Content = patch.Content
	}
	if patch.HTML != nil {
		e.HTML = patch.HTML
	}
	if patch.CSS != nil {
		e.CSS = patch.CSS
	}
	e.UpdatedAt = r.s.now()
	r.s.editors[id] = e
	return &e, nil
}

func (r editorRepo) DeleteEditor(_ context.Context, id uint64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.editors[id]; !ok {
		return errs.NotFoundError{Entity: "editor", ID: id}
	}
	delete(r.s.editors, id)
	return nil
}

type publishRepo struct{ s *Store }

func (r publishRepo) InsertPublish(_ context.Context, publish *entity.Publish) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.publishes {
		if p.Subdomain == publish.Subdomain {
			return errs.NewValidationError("subdomain", "has already been taken")
		}
	}
	publish.ID = r.s.nextID()
	publish.CreatedAt = r.s.now()
	publish.UpdatedAt = publish.CreatedAt
	r.s.publishes[publish.ID] = *publish
	return nil
}

func (r publishRepo) GetPublishByID(_ context.Context, id uint64) (*entity.Publish, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.publishes[id]
	if !ok {
		return nil, errs.NotFoundError{Entity: "publish", ID: id}
	}
	return &p, nil
}

func (r publishRepo) ListPublishesByOwner(_ context.Context, userID uuid.UUID, limit int) ([]entity.Publish, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Publish, 0)
	for _, p := range r.s.publishes {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return limited(out, limit), nil
}

func (r publishRepo) SubdomainTaken(_ context.Context, subdomain string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.publishes {
		if p.Subdomain == subdomain {
			return true, nil
		}
	}
	return false, nil
}

type rsvpRepo struct{ s *Store }

func (r rsvpRepo) InsertRSVP(_ context.Context, rsvp *entity.RSVP) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rsvp.ID = r.s.nextID()
	rsvp.CreatedAt = r.s.now()
	rsvp.UpdatedAt = rsvp.CreatedAt
	r.s.rsvps[rsvp.ID] = *rsvp
	return nil
}

func (r rsvpRepo) ListRSVPsByOwner(_ context.Context, userID uuid.UUID, limit int) ([]entity.RSVP, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.RSVP, 0)
	for _, v := range r.s.rsvps {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return limited(out, limit), nil
}

func (r rsvpRepo) DeleteRSVP(_ context.Context, id uint64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rsvps[id]; !ok {
		return errs.NotFoundError{Entity: "rsvp", ID: id}
	}
	delete(r.s.rsvps, id)
	return nil
}

type eventRepo struct{ s *Store }

func (r eventRepo) InsertEvent(_ context.Context, event shared.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.events = append(r.s.events, Event{Type: event.GetType(), Payload: payload})
	return nil
}

func limited[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
