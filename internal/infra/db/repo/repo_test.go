package repo_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/events"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/domain/value"
	"github.com/dhank77/undangan.love/internal/infra/db/repo"
	"github.com/dhank77/undangan.love/internal/testinfra"
	dbs "github.com/dhank77/undangan.love/pkg/db"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var store *repo.Store

func TestMain(m *testing.M) {
	store = repo.NewStore(dbs.NewUoWFactory(testinfra.Pool))
	os.Exit(m.Run())
}

func reset(t *testing.T) {
	t.Helper()
	require.NoError(t, testinfra.Truncate(context.Background()))
}

func ptr[T any](v T) *T { return &v }

func insertTemplate(t *testing.T, name string, premium bool) *entity.Template {
	t.Helper()
	config := value.FromObject(value.Object{"colors": value.Array(value.String("#fff"))})
	template := entity.Template{
		Name:       name,
		HTMLLayout: "<h1>{{bride_name}}</h1>",
		ConfigJSON: &config,
		IsPremium:  premium,
	}
	require.NoError(t, store.Repos().Templates.InsertTemplate(context.Background(), &template))
	return &template
}

func insertBuilder(t *testing.T, templateID uint64, userID uuid.UUID) *entity.Builder {
	t.Helper()
	data := value.FromObject(value.Object{"bride_name": value.String("Sarah")})
	builder := entity.Builder{UserID: userID, TemplateID: templateID, Name: ptr("Our wedding"), CustomData: &data}
	require.NoError(t, store.Repos().Builders.InsertBuilder(context.Background(), &builder))
	return &builder
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	var notFound errs.NotFoundError
	require.True(t, errors.As(err, &notFound), "expected not found, got %v", err)
}

func TestTemplateCRUD(t *testing.T) {
	reset(t)
	ctx := context.Background()
	templates := store.Repos().Templates

	free := insertTemplate(t, "Classic Elegant", false)
	premium := insertTemplate(t, "Royal Gold", true)
	require.NotZero(t, free.ID)
	require.False(t, free.CreatedAt.IsZero())

	got, err := templates.GetTemplateByID(ctx, free.ID)
	require.NoError(t, err)
	require.Equal(t, "Classic Elegant", got.Name)
	require.JSONEq(t, `{"colors":["#fff"]}`, mustJSON(t, got.ConfigJSON))

	all, err := templates.ListTemplates(ctx, consts.TemplatesAll, 12)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, premium.ID, all[0].ID)

	onlyPremium, err := templates.ListTemplates(ctx, consts.TemplatesPremium, 12)
	require.NoError(t, err)
	require.Len(t, onlyPremium, 1)
	require.Equal(t, premium.ID, onlyPremium[0].ID)

	limited, err := templates.ListTemplates(ctx, consts.TemplatesAll, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)

	updated, err := templates.UpdateTemplate(ctx, free.ID, entity.TemplatePatch{Name: ptr("Classic Elegant II")})
	require.NoError(t, err)
	require.Equal(t, "Classic Elegant II", updated.Name)
	require.Equal(t, free.HTMLLayout, updated.HTMLLayout)
	require.NotNil(t, updated.ConfigJSON)

	require.NoError(t, templates.DeleteTemplate(ctx, free.ID))
	_, err = templates.GetTemplateByID(ctx, free.ID)
	requireNotFound(t, err)
	requireNotFound(t, templates.DeleteTemplate(ctx, free.ID))
}

func TestBuilderLifecycle(t *testing.T) {
	reset(t)
	ctx := context.Background()
	builders := store.Repos().Builders
	userID := uuid.New()
	template := insertTemplate(t, "Classic Elegant", false)

	builder := insertBuilder(t, template.ID, userID)
	insertBuilder(t, template.ID, uuid.New())

	got, err := builders.GetBuilderByID(ctx, builder.ID)
	require.NoError(t, err)
	require.Equal(t, userID, got.UserID)
	require.NotNil(t, got.Template)
	require.Equal(t, template.Name, got.Template.Name)

	owned, err := builders.ListBuildersByOwner(ctx, userID, 12)
	require.NoError(t, err)
	require.Len(t, owned, 1)

	require.NoError(t, builders.UpdateRenderedHTML(ctx, builder.ID, "<h1>Sarah</h1>", consts.RenderSourceTemplate))
	got, err = builders.GetBuilderByID(ctx, builder.ID)
	require.NoError(t, err)
	require.Equal(t, "<h1>Sarah</h1>", *got.RenderedHTML)
	require.Equal(t, consts.RenderSourceTemplate, *got.RenderSource)

	saved, err := builders.SaveLayout(ctx, builder.ID, entity.Layout{
		CustomData:   value.FromObject(value.Object{"bride_name": value.String("Aisyah")}),
		RenderedHTML: ptr("<main>edited</main>"),
		LayoutCSS:    ptr("h1{color:red}"),
	})
	require.NoError(t, err)
	require.Equal(t, "<main>edited</main>", *saved.RenderedHTML)
	require.Equal(t, consts.RenderSourceEditor, *saved.RenderSource)
	require.Equal(t, "h1{color:red}", *saved.LayoutCSS)
	require.Nil(t, saved.LayoutHTML)

	renamed, err := builders.UpdateBuilder(ctx, builder.ID, entity.BuilderPatch{Name: ptr("Reception")})
	require.NoError(t, err)
	require.Equal(t, "Reception", *renamed.Name)
	require.Equal(t, "<main>edited</main>", *renamed.RenderedHTML)

	require.NoError(t, builders.UpdateRenderedHTML(ctx, builder.ID, "<h1>Sarah</h1>", consts.RenderSourceTemplate))
	rewritten, err := builders.UpdateBuilder(ctx, builder.ID, entity.BuilderPatch{RenderedHTML: ptr("<p>client written</p>")})
	require.NoError(t, err)
	require.Equal(t, "<p>client written</p>", *rewritten.RenderedHTML)
	require.Equal(t, consts.RenderSourceEditor, *rewritten.RenderSource)

	_, err = builders.UpdateBuilder(ctx, builder.ID, entity.BuilderPatch{TemplateID: ptr(uint64(999))})
	var validation errs.ValidationError
	require.True(t, errors.As(err, &validation))
	require.Equal(t, "template_id", validation.Fields[0].Field)

	require.NoError(t, builders.DeleteBuilder(ctx, builder.ID))
	_, err = builders.GetBuilderByID(ctx, builder.ID)
	requireNotFound(t, err)

	kept, err := store.Repos().Templates.GetTemplateByID(ctx, template.ID)
	require.NoError(t, err)
	require.Equal(t, template.Name, kept.Name)
}

func TestInsertBuilderWithMissingTemplate(t *testing.T) {
	reset(t)
	err := store.Repos().Builders.InsertBuilder(context.Background(), &entity.Builder{UserID: uuid.New(), TemplateID: 999})
	requireNotFound(t, err)
}

func TestDeletingTemplateCascades(t *testing.T) {
	reset(t)
	ctx := context.Background()
	userID := uuid.New()
	template := insertTemplate(t, "Floral Romance", true)
	builder := insertBuilder(t, template.ID, userID)

	publish := entity.Publish{UserID: userID, BuilderID: builder.ID, Subdomain: "sarah-ahmad", Status: consts.PublishStatusDraft}
	require.NoError(t, store.Repos().Publishes.InsertPublish(ctx, &publish))

	require.NoError(t, store.Repos().Templates.DeleteTemplate(ctx, template.ID))

	_, err := store.Repos().Builders.GetBuilderByID(ctx, builder.ID)
	requireNotFound(t, err)
	_, err = store.Repos().Publishes.GetPublishByID(ctx, publish.ID)
	requireNotFound(t, err)
}

func TestPublishSubdomainIsUnique(t *testing.T) {
	reset(t)
	ctx := context.Background()
	publishes := store.Repos().Publishes
	userID := uuid.New()
	builder := insertBuilder(t, insertTemplate(t, "Modern Minimalist", false).ID, userID)

	first := entity.Publish{UserID: userID, BuilderID: builder.ID, Subdomain: "sarah-ahmad", Status: consts.PublishStatusDraft}
	require.NoError(t, publishes.InsertPublish(ctx, &first))

	taken, err := publishes.SubdomainTaken(ctx, "sarah-ahmad")
	require.NoError(t, err)
	require.True(t, taken)

	second := entity.Publish{UserID: userID, BuilderID: builder.ID, Subdomain: "sarah-ahmad", Status: consts.PublishStatusDraft}
	err = publishes.InsertPublish(ctx, &second)
	var validation errs.ValidationError
	require.True(t, errors.As(err, &validation))
	require.Equal(t, "subdomain", validation.Fields[0].Field)

	owned, err := publishes.ListPublishesByOwner(ctx, userID, 12)
	require.NoError(t, err)
	require.Len(t, owned, 1)
}

func TestEditorsAndStatistics(t *testing.T) {
	reset(t)
	ctx := context.Background()
	editors := store.Repos().Editors
	userID := uuid.New()

	content := value.FromObject(value.Object{"blocks": value.Array()})
	project := entity.Editor{UserID: userID, Name: "Landing", Content: &content, HTML: ptr("<div></div>")}
	require.NoError(t, editors.InsertEditor(ctx, &project))
	template := entity.Editor{UserID: userID, Name: "Starter", HTML: ptr("<p></p>"), IsTemplate: true, Thumbnail: ptr("thumb.png")}
	require.NoError(t, editors.InsertEditor(ctx, &template))

	projects, err := editors.ListEditorsByOwner(ctx, userID, 12)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, project.ID, projects[0].ID)

	templates, err := editors.ListTemplatesByOwner(ctx, userID)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	require.Equal(t, "thumb.png", *templates[0].Thumbnail)

	count, err := editors.CountByOwner(ctx, userID, true)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	updated, err := editors.UpdateEditor(ctx, project.ID, entity.EditorPatch{CSS: ptr("body{}")})
	require.NoError(t, err)
	require.Equal(t, "body{}", *updated.CSS)
	require.Equal(t, "Landing", updated.Name)

	require.NoError(t, editors.DeleteEditor(ctx, project.ID))
	_, err = editors.GetEditorByID(ctx, project.ID)
	requireNotFound(t, err)
}

func TestRSVPs(t *testing.T) {
	reset(t)
	ctx := context.Background()
	rsvps := store.Repos().RSVPs
	owner := uuid.New()

	rsvp := entity.RSVP{UserID: owner, GuestName: "Budi", PhoneNumber: ptr("+6281234567890"), Attending: consts.AttendingMaybe}
	require.NoError(t, rsvps.InsertRSVP(ctx, &rsvp))

	listed, err := rsvps.ListRSVPsByOwner(ctx, owner, 12)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, consts.AttendingMaybe, listed[0].Attending)

	require.NoError(t, rsvps.DeleteRSVP(ctx, rsvp.ID))
	requireNotFound(t, rsvps.DeleteRSVP(ctx, rsvp.ID))
}

func TestInTxRollsBackOnError(t *testing.T) {
	reset(t)
	ctx := context.Background()
	failure := errors.New("boom")

	err := store.InTx(ctx, func(repos interfaces.Repos) error {
		template := entity.Template{Name: "Discarded", HTMLLayout: "<p></p>"}
		if err := repos.Templates.InsertTemplate(ctx, &template); err != nil {
			return err
		}
		if err := repos.Events.InsertEvent(ctx, events.TemplateDeleted{TemplateID: template.ID}); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	all, err := store.Repos().Templates.ListTemplates(ctx, consts.TemplatesAll, 12)
	require.NoError(t, err)
	require.Empty(t, all)

	var outboxRows int
	require.NoError(t, testinfra.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM undangan.outbox").Scan(&outboxRows))
	require.Zero(t, outboxRows)
}

func TestInTxCommitsEvent(t *testing.T) {
	reset(t)
	ctx := context.Background()

	err := store.InTx(ctx, func(repos interfaces.Repos) error {
		return repos.Events.InsertEvent(ctx, events.TemplateDeleted{TemplateID: 3})
	})
	require.NoError(t, err)

	var event string
	var status int
	require.NoError(t, testinfra.Pool.QueryRow(ctx, "SELECT event, status FROM undangan.outbox").Scan(&event, &status))
	require.Equal(t, "TemplateDeleted", event)
	require.Equal(t, int(consts.NotProcessed), status)
}

func mustJSON(t *testing.T, v *value.Value) string {
	t.Helper()
	raw, err := v.MarshalJSON()
	require.NoError(t, err)
	return string(raw)
}
