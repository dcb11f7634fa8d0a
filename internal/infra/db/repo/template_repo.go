package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/infra/db"
	dbs "github.com/dhank77/undangan.love/pkg/db"
	"github.com/jackc/pgx/v5"
)

const templateColumns = "id, name, thumbnail_url, html_layout, config_json, is_premium, created_at, updated_at"

type TemplateRepo struct {
	conn dbs.DBTX
}

var _ interfaces.TemplateRepo = (*TemplateRepo)(nil)

func NewTemplateRepo(conn dbs.DBTX) *TemplateRepo {
	return &TemplateRepo{conn: conn}
}

func scanTemplate(row pgx.Row) (db.Template, error) {
	var m db.Template
	err := row.Scan(&m.ID, &m.Name, &m.ThumbnailURL, &m.HTMLLayout, &m.ConfigJSON, &m.IsPremium, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *TemplateRepo) ListTemplates(ctx context.Context, filter consts.TemplateFilter, limit int) ([]entity.Template, error) {
	query := "SELECT " + templateColumns + " FROM undangan.templates"
	args := []any{limit}
	switch filter {
	case consts.TemplatesFree:
		query += " WHERE is_premium = FALSE"
	case consts.TemplatesPremium:
		query += " WHERE is_premium = TRUE"
	}
	query += " ORDER BY id DESC LIMIT $1"

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("err listing templates, %v", err)
	}
	return collect(rows, scanTemplate, db.MapTemplateModelToEntity)
}

func (r *TemplateRepo) GetTemplateByID(ctx context.Context, id uint64) (*entity.Template, error) {
	m, err := scanTemplate(r.conn.QueryRow(ctx, "SELECT "+templateColumns+" FROM undangan.templates WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "template", id)
	}
	t, err := db.MapTemplateModelToEntity(m)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepo) InsertTemplate(ctx context.Context, template *entity.Template) error {
	config, err := db.DocumentToRaw(template.ConfigJSON)
	if err != nil {
		return err
	}
	now := time.Now()
	err = r.conn.QueryRow(ctx,
		`INSERT INTO undangan.templates(name, thumbnail_url, html_layout, config_json, is_premium, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id, created_at, updated_at`,
		template.Name, template.ThumbnailURL, template.HTMLLayout, config, template.IsPremium, now,
	).Scan(&template.ID, &template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		return fmt.Errorf("err inserting template, %v", err)
	}
	return nil
}

func (r *TemplateRepo) UpdateTemplate(ctx context.Context, id uint64, patch entity.TemplatePatch) (*entity.Template, error) {
	config, err := db.DocumentToRaw(patch.ConfigJSON)
	if err != nil {
		return nil, err
	}
	m, err := scanTemplate(r.conn.QueryRow(ctx,
		`UPDATE undangan.templates SET
			name = COALESCE($1, name),
			thumbnail_url = COALESCE($2, thumbnail_url),
			html_layout = COALESCE($3, html_layout),
			config_json = COALESCE($4, config_json),
			is_premium = COALESCE($5, is_premium),
			updated_at = $6
		WHERE id = $7 RETURNING `+templateColumns,
		patch.Name, patch.ThumbnailURL, patch.HTMLLayout, config, patch.IsPremium, time.Now(), id,
	))
	if err != nil {
		return nil, notFound(err, "template", id)
	}
	t, err := db.MapTemplateModelToEntity(m)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepo) DeleteTemplate(ctx context.Context, id uint64) error {
	tag, err := r.conn.Exec(ctx, "DELETE FROM undangan.templates WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("err deleting template %d, %v", id, err)
	}
	return affectedOrNotFound(tag, "template", id)
}
