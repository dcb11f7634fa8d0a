package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/infra/db"
	dbs "github.com/dhank77/undangan.love/pkg/db"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RSVPRepo struct {
	conn dbs.DBTX
}

var _ interfaces.RSVPRepo = (*RSVPRepo)(nil)

func NewRSVPRepo(conn dbs.DBTX) *RSVPRepo {
	return &RSVPRepo{conn: conn}
}

func scanRSVP(row pgx.Row) (db.RSVP, error) {
	var m db.RSVP
	err := row.Scan(&m.ID, &m.UserID, &m.GuestName, &m.PhoneNumber, &m.Attending, &m.Message, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *RSVPRepo) InsertRSVP(ctx context.Context, rsvp *entity.RSVP) error {
	now := time.Now()
	err := r.conn.QueryRow(ctx,
		`INSERT INTO undangan.rsvps(user_id, guest_name, phone_number, attending, message, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id, created_at, updated_at`,
		rsvp.UserID, rsvp.GuestName, rsvp.PhoneNumber, string(rsvp.Attending), rsvp.Message, now,
	).Scan(&rsvp.ID, &rsvp.CreatedAt, &rsvp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("err inserting rsvp, %v", err)
	}
	return nil
}

func (r *RSVPRepo) ListRSVPsByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]entity.RSVP, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT id, user_id, guest_name, phone_number, attending, message, created_at, updated_at
			FROM undangan.rsvps WHERE user_id = $1 ORDER BY id DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("err listing rsvps, %v", err)
	}
	return collect(rows, scanRSVP, func(m db.RSVP) (entity.RSVP, error) {
		return db.MapRSVPModelToEntity(m), nil
	})
}

func (r *RSVPRepo) DeleteRSVP(ctx context.Context, id uint64) error {
	tag, err := r.conn.Exec(ctx, "DELETE FROM undangan.rsvps WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("err deleting rsvp %d, %v", id, err)
	}
	return affectedOrNotFound(tag, "rsvp", id)
}
