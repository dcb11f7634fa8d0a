package processors

import (
	"context"
	"errors"
	"testing"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/events"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/testinfra/memstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	objects map[string]string
}

func (f *fakeStorage) PutSnapshot(_ context.Context, key string, html string) (string, error) {
	f.objects[key] = html
	return "s3://bucket/" + key, nil
}

func seedRendered(t *testing.T, store *memstore.Store, html string) uint64 {
	t.Helper()
	ctx := context.Background()
	template := entity.Template{Name: "Classic", HTMLLayout: "<p/>"}
	require.NoError(t, store.Repos().Templates.InsertTemplate(ctx, &template))
	builder := entity.Builder{UserID: uuid.New(), TemplateID: template.ID}
	require.NoError(t, store.Repos().Builders.InsertBuilder(ctx, &builder))
	if html != "" {
		require.NoError(t, store.Repos().Builders.UpdateRenderedHTML(ctx, builder.ID, html, consts.RenderSourceTemplate))
	}
	return builder.ID
}

func TestArchiveSnapshotUploadsRenderedHTML(t *testing.T) {
	store := memstore.New()
	storage := &fakeStorage{objects: map[string]string{}}
	builderID := seedRendered(t, store, "<h1>Sarah & Ahmad</h1>")

	err := NewArchiveSnapshot(store, storage).Handle(context.Background(), events.BuilderRendered{BuilderID: builderID})
	require.NoError(t, err)
	require.Equal(t, "<h1>Sarah & Ahmad</h1>", storage.objects[SnapshotKey(builderID)])
}

func TestArchiveSnapshotSkips(t *testing.T) {
	store := memstore.New()
	storage := &fakeStorage{objects: map[string]string{}}
	builderID := seedRendered(t, store, "")

	require.NoError(t, NewArchiveSnapshot(store, storage).Handle(context.Background(), events.BuilderRendered{BuilderID: builderID}))
	require.Empty(t, storage.objects)

	require.NoError(t, NewArchiveSnapshot(store, nil).Handle(context.Background(), events.BuilderRendered{BuilderID: builderID}))
}

func TestArchiveSnapshotErrors(t *testing.T) {
	store := memstore.New()
	archive := NewArchiveSnapshot(store, &fakeStorage{objects: map[string]string{}})

	var notFound errs.NotFoundError
	err := archive.Handle(context.Background(), events.BuilderRendered{BuilderID: 77})
	require.True(t, errors.As(err, &notFound))

	require.Error(t, archive.Handle(context.Background(), events.TemplateDeleted{TemplateID: 1}))
}
