package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dhank77/undangan.love/internal/application"
	"github.com/dhank77/undangan.love/internal/application/events"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/infra/config"
	"github.com/dhank77/undangan.love/internal/infra/db"
	"github.com/dhank77/undangan.love/internal/infra/metrics"
	dbs "github.com/dhank77/undangan.love/pkg/db"
	"github.com/sirupsen/logrus"
)

const claimQuery = `SELECT id, event, status, payload, created_at FROM undangan.outbox
	WHERE status = $1 ORDER BY id LIMIT $2 FOR UPDATE SKIP LOCKED`

// OutboxPoller relays committed outbox rows to the broker and runs the
// processors registered for them.
type OutboxPoller struct {
	uowFactory *dbs.UOWFactory
	publisher  interfaces.Publisher
	processors *application.Processors
	metrics    *metrics.Metrics
	cfg        *config.OutboxConfig
	log        *logrus.Entry
	stop       chan struct{}
	done       chan struct{}
	started    atomic.Bool
	stopOnce   sync.Once
}

func NewOutboxPoller(
	uowFactory *dbs.UOWFactory,
	publisher interfaces.Publisher,
	processors *application.Processors,
	m *metrics.Metrics,
	cfg *config.OutboxConfig,
) *OutboxPoller {
	return &OutboxPoller{
		uowFactory: uowFactory,
		publisher:  publisher,
		processors: processors,
		metrics:    m,
		cfg:        cfg,
		log:        logrus.WithField("component", "outbox"),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start blocks until Stop is called. Stop waits for the batch in flight, so
// claimed rows always leave the processing status.
func (o *OutboxPoller) Start() {
	o.started.Store(true)
	defer close(o.done)
	select {
	case <-o.stop:
		return
	default:
	}
	o.log.WithField("interval", o.cfg.Interval).Info("starting outbox poller")

	ticker := time.NewTicker(o.cfg.Interval)
	defer ticker.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		select {
		case <-ticker.C:
			if _, err := o.PollOnce(ctx); err != nil {
				o.log.WithError(err).Error("error in poller")
			}
		case <-o.stop:
			o.log.Info("cancelling current execution")
			return
		}
	}
}

// Stop is safe to call more than once and before Start.
func (o *OutboxPoller) Stop() {
	o.stopOnce.Do(func() {
		o.log.Info("stopping poller")
		close(o.stop)
	})
	if o.started.Load() {
		<-o.done
	}
}

// PollOnce claims one batch, handles it and returns how many rows it claimed.
func (o *OutboxPoller) PollOnce(ctx context.Context) (int, error) {
	batch, err := o.claim(ctx)
	if err != nil {
		return 0, err
	}
	if len(batch) == 0 {
		o.log.Debug("no events to process")
		return 0, nil
	}

	var wg sync.WaitGroup
	for _, event := range batch {
		wg.Add(1)
		go func(ev db.Outbox) {
			defer wg.Done()
			if err := o.handleEvent(ctx, ev); err != nil {
				o.log.WithError(err).WithField("id", ev.ID).Error("handler error")
			}
		}(event)
	}
	wg.Wait()

	o.log.WithField("count", len(batch)).Debug("finished poller batch")
	return len(batch), nil
}

func (o *OutboxPoller) claim(ctx context.Context) (batch []db.Outbox, err error) {
	uow := o.uowFactory.GetUoW()
	tx, err := uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	rows, err := tx.Query(ctx, claimQuery, consts.NotProcessed, o.cfg.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("err selecting events, %v", err)
	}
	var ids []int64
	for rows.Next() {
		var event db.Outbox
		if err = rows.Scan(&event.ID, &event.Event, &event.Status, &event.Payload, &event.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("err scanning event, %v", err)
		}
		ids = append(ids, int64(event.ID))
		batch = append(batch, event)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("err reading result sets, %v", err)
	}
	if len(batch) == 0 {
		return nil, nil
	}

	_, err = tx.Exec(ctx, "UPDATE undangan.outbox SET status = $1 WHERE id = ANY($2)", consts.Processing, ids)
	if err != nil {
		return nil, fmt.Errorf("err setting events status to processing, %v", err)
	}
	return batch, nil
}

func (o *OutboxPoller) handleEvent(ctx context.Context, outbox db.Outbox) error {
	log := o.log.WithFields(logrus.Fields{"event": outbox.Event, "id": outbox.ID})
	log.Info("handling event")

	status := consts.Processed
	err := o.publisher.Publish(ctx, outbox.Event, EventKey(outbox), outbox.Payload)
	if err != nil {
		o.metrics.OutboxPublishFailureTotal.WithLabelValues(outbox.Event).Inc()
		status = consts.InError
	} else {
		err = o.process(ctx, outbox)
		if err != nil {
			status = consts.InError
		}
	}
	if err != nil {
		log.WithError(err).Error("error in handler")
	}

	if _, errUpdate := o.uowFactory.Pool.Exec(ctx, "UPDATE undangan.outbox SET status = $1 WHERE id = $2", status, outbox.ID); errUpdate != nil {
		return fmt.Errorf("err setting event status, %v", errUpdate)
	}
	o.metrics.OutboxEventsTotal.WithLabelValues(outbox.Event, statusLabel(status)).Inc()

	log.WithField("status", statusLabel(status)).Info("processed event")
	return nil
}

func (o *OutboxPoller) process(ctx context.Context, outbox db.Outbox) error {
	switch outbox.Event {
	case events.BuilderRendered{}.GetType():
		event, err := db.MapOutboxModelToBuilderRendered(outbox)
		if err != nil {
			return err
		}
		return o.processors.ArchiveSnapshot.Handle(ctx, event)
	}
	return nil
}

// EventKey picks the id of the entity an event is about so the broker keeps
// per entity order. Events without one are keyed by their outbox id.
func EventKey(outbox db.Outbox) string {
	var ids struct {
		BuilderID  uint64 `json:"builderID"`
		EditorID   uint64 `json:"editorID"`
		TemplateID uint64 `json:"templateID"`
	}
	if err := json.Unmarshal(outbox.Payload, &ids); err == nil {
		switch {
		case ids.BuilderID != 0:
			return "builder:" + strconv.FormatUint(ids.BuilderID, 10)
		case ids.EditorID != 0:
			return "editor:" + strconv.FormatUint(ids.EditorID, 10)
		case ids.TemplateID != 0:
			return "template:" + strconv.FormatUint(ids.TemplateID, 10)
		}
	}
	return "outbox:" + strconv.FormatUint(outbox.ID, 10)
}

func statusLabel(status consts.OutboxStatus) string {
	switch status {
	case consts.NotProcessed:
		return "not_processed"
	case consts.Processed:
		return "processed"
	case consts.Processing:
		return "processing"
	case consts.InError:
		return "in_error"
	}
	return "unknown"
}
