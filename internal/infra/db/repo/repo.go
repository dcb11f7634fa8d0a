package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/infra/db"
	dbs "github.com/dhank77/undangan.love/pkg/db"
	shared "github.com/dhank77/undangan.love/pkg/interfaces"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Store hands out Postgres repositories, either on the pool or bound to a
// unit of work.
type Store struct {
	factory *dbs.UOWFactory
}

var _ interfaces.Store = (*Store)(nil)

func NewStore(factory *dbs.UOWFactory) *Store {
	return &Store{factory: factory}
}

func (s *Store) Repos() interfaces.Repos {
	return reposOn(s.factory.Pool)
}

func (s *Store) InTx(ctx context.Context, fn func(repos interfaces.Repos) error) (err error) {
	uow := s.factory.GetUoW()
	tx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	err = fn(reposOn(tx))
	return err
}

func reposOn(conn dbs.DBTX) interfaces.Repos {
	return interfaces.Repos{
		Templates: NewTemplateRepo(conn),
		Builders:  NewBuilderRepo(conn),
		Editors:   NewEditorRepo(conn),
		Publishes: NewPublishRepo(conn),
		RSVPs:     NewRSVPRepo(conn),
		Events:    NewEventRepo(conn),
	}
}

type EventRepo struct {
	conn dbs.DBTX
}

var _ interfaces.EventRepo = (*EventRepo)(nil)

func NewEventRepo(conn dbs.DBTX) *EventRepo {
	return &EventRepo{conn: conn}
}

func (e *EventRepo) InsertEvent(ctx context.Context, event shared.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("err marshalling event payload, %v", err)
	}
	outbox := db.Outbox{
		Event:     event.GetType(),
		Status:    int(consts.NotProcessed),
		Payload:   json.RawMessage(payload),
		CreatedAt: time.Now(),
	}
	_, err = e.conn.Exec(ctx, "INSERT INTO undangan.outbox (event, status, payload, created_at) VALUES ($1,$2,$3,$4)",
		outbox.Event, outbox.Status, outbox.Payload, outbox.CreatedAt)
	if err != nil {
		return fmt.Errorf("err inserting a new event, %v", err)
	}

	return nil
}

// notFound turns pgx.ErrNoRows into errs.NotFoundError and wraps anything else.
func notFound(err error, entityName string, id any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFoundError{Entity: entityName, ID: id}
	}
	return fmt.Errorf("err querying %s %v, %w", entityName, id, err)
}

func affectedOrNotFound(tag pgconn.CommandTag, entityName string, id any) error {
	if tag.RowsAffected() == 0 {
		return errs.NotFoundError{Entity: entityName, ID: id}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func collect[M any, E any](rows pgx.Rows, scan func(pgx.Row) (M, error), mapper func(M) (E, error)) ([]E, error) {
	defer rows.Close()
	out := make([]E, 0)
	for rows.Next() {
		model, err := scan(rows)
		if err != nil {
			return nil, err
		}
		e, err := mapper(model)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
