package processors

import (
	"context"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/events"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	shared "github.com/dhank77/undangan.love/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// ArchiveSnapshot copies a freshly rendered invitation page to object storage
// so it can be served without the database.
type ArchiveSnapshot struct {
	store   interfaces.Store
	storage interfaces.SnapshotStorage
}

var _ shared.EventHandler = (*ArchiveSnapshot)(nil)

// NewArchiveSnapshot accepts a nil storage; every event is then skipped.
func NewArchiveSnapshot(store interfaces.Store, storage interfaces.SnapshotStorage) *ArchiveSnapshot {
	return &ArchiveSnapshot{store: store, storage: storage}
}

func SnapshotKey(builderID uint64) string {
	return fmt.Sprintf("builders/%d/index.html", builderID)
}

func (c *ArchiveSnapshot) Handle(ctx context.Context, event shared.Event) error {
	rendered, ok := event.(events.BuilderRendered)
	if !ok {
		return fmt.Errorf("unexpected event %s", event.GetType())
	}
	log := logrus.WithField("builderID", rendered.BuilderID)
	if c.storage == nil {
		log.Debug("snapshot storage is not configured, skipping")
		return nil
	}

	builder, err := c.store.Repos().Builders.GetBuilderByID(ctx, rendered.BuilderID)
	if err != nil {
		return fmt.Errorf("err loading builder %d, %w", rendered.BuilderID, err)
	}
	if builder.RenderedHTML == nil {
		log.Warn("builder has no rendered html, nothing to archive")
		return nil
	}

	location, err := c.storage.PutSnapshot(ctx, SnapshotKey(builder.ID), *builder.RenderedHTML)
	if err != nil {
		return fmt.Errorf("err archiving snapshot of builder %d, %w", builder.ID, err)
	}
	log.WithField("location", location).Info("archived rendered snapshot")
	return nil
}
