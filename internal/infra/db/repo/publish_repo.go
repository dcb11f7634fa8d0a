package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/infra/db"
	dbs "github.com/dhank77/undangan.love/pkg/db"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const publishColumns = "id, user_id, builder_id, subdomain, custom_domain, published_at, status, created_at, updated_at"

type PublishRepo struct {
	conn dbs.DBTX
}

var _ interfaces.PublishRepo = (*PublishRepo)(nil)

func NewPublishRepo(conn dbs.DBTX) *PublishRepo {
	return &PublishRepo{conn: conn}
}

func scanPublish(row pgx.Row) (db.Publish, error) {
	var m db.Publish
	err := row.Scan(&m.ID, &m.UserID, &m.BuilderID, &m.Subdomain, &m.CustomDomain, &m.PublishedAt, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func mapPublish(m db.Publish) (entity.Publish, error) {
	return db.MapPublishModelToEntity(m), nil
}

func (r *PublishRepo) InsertPublish(ctx context.Context, publish *entity.Publish) error {
	now := time.Now()
	err := r.conn.QueryRow(ctx,
		`INSERT INTO undangan.publishes(user_id, builder_id, subdomain, custom_domain, published_at, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id, created_at, updated_at`,
		publish.UserID, publish.BuilderID, publish.Subdomain, publish.CustomDomain, publish.PublishedAt, string(publish.Status), now,
	).Scan(&publish.ID, &publish.CreatedAt, &publish.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.NewValidationError("subdomain", "has already been taken")
		}
		if isForeignKeyViolation(err) {
			return errs.NewValidationError("builder_id", "selected builder does not exist")
		}
		return fmt.Errorf("err inserting publish, %v", err)
	}
	return nil
}

func (r *PublishRepo) GetPublishByID(ctx context.Context, id uint64) (*entity.Publish, error) {
	m, err := scanPublish(r.conn.QueryRow(ctx, "SELECT "+publishColumns+" FROM undangan.publishes WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "publish", id)
	}
	p := db.MapPublishModelToEntity(m)
	return &p, nil
}

func (r *PublishRepo) ListPublishesByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Publish, error) {
	rows, err := r.conn.Query(ctx, "SELECT "+publishColumns+" FROM undangan.publishes WHERE user_id = $1 ORDER BY id DESC LIMIT $2", userID, limit)
	if err != nil {
		return nil, fmt.Errorf("err listing publishes, %v", err)
	}
	return collect(rows, scanPublish, mapPublish)
}

func (r *PublishRepo) SubdomainTaken(ctx context.Context, subdomain string) (bool, error) {
	var taken bool
	err := r.conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM undangan.publishes WHERE subdomain = $1)", subdomain).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("err checking subdomain, %v", err)
	}
	return taken, nil
}
