package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/infra/db"
	dbs "github.com/dhank77/undangan.love/pkg/db"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

const builderColumns = "b.id, b.user_id, b.template_id, b.name, b.custom_data_json, b.rendered_html, b.render_source, " +
	"b.layout_html, b.layout_css, b.created_at, b.updated_at"

const builderWithTemplate = "SELECT " + builderColumns + ", t.id, t.name, t.thumbnail_url, t.html_layout, t.config_json, " +
	"t.is_premium, t.created_at, t.updated_at FROM undangan.builders b JOIN undangan.templates t ON t.id = b.template_id"

type BuilderRepo struct {
	conn dbs.DBTX
}

var _ interfaces.BuilderRepo = (*BuilderRepo)(nil)

func NewBuilderRepo(conn dbs.DBTX) *BuilderRepo {
	return &BuilderRepo{conn: conn}
}

type builderRow struct {
	builder  db.Builder
	template db.Template
}

func builderDest(m *db.Builder) []any {
	return []any{&m.ID, &m.UserID, &m.TemplateID, &m.Name, &m.CustomDataJSON, &m.RenderedHTML, &m.RenderSource,
		&m.LayoutHTML, &m.LayoutCSS, &m.CreatedAt, &m.UpdatedAt}
}

func scanBuilderWithTemplate(row pgx.Row) (builderRow, error) {
	var r builderRow
	t := &r.template
	dest := append(builderDest(&r.builder),
		&t.ID, &t.Name, &t.ThumbnailURL, &t.HTMLLayout, &t.ConfigJSON, &t.IsPremium, &t.CreatedAt, &t.UpdatedAt)
	err := row.Scan(dest...)
	return r, err
}

func mapBuilderRow(r builderRow) (entity.Builder, error) {
	b, err := db.MapBuilderModelToEntity(r.builder)
	if err != nil {
		return entity.Builder{}, err
	}
	t, err := db.MapTemplateModelToEntity(r.template)
	if err != nil {
		return entity.Builder{}, err
	}
	b.Template = &t
	return b, nil
}

func (r *BuilderRepo) ListBuildersByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Builder, error) {
	rows, err := r.conn.Query(ctx, builderWithTemplate+" WHERE b.user_id = $1 ORDER BY b.updated_at DESC, b.id DESC LIMIT $2", userID, limit)
	if err != nil {
		return nil, fmt.Errorf("err listing builders, %v", err)
	}
	return collect(rows, scanBuilderWithTemplate, mapBuilderRow)
}

func (r *BuilderRepo) GetBuilderByID(ctx context.Context, id uint64) (*entity.Builder, error) {
	row, err := scanBuilderWithTemplate(r.conn.QueryRow(ctx, builderWithTemplate+" WHERE b.id = $1", id))
	if err != nil {
		return nil, notFound(err, "builder", id)
	}
	b, err := mapBuilderRow(row)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BuilderRepo) InsertBuilder(ctx context.Context, builder *entity.Builder) error {
	customData, err := db.DocumentToRaw(builder.CustomData)
	if err != nil {
		return err
	}
	var source *string
	if builder.RenderSource != nil {
		s := string(*builder.RenderSource)
		source = &s
	}
	now := time.Now()
	err = r.conn.QueryRow(ctx,
		`INSERT INTO undangan.builders(user_id, template_id, name, custom_data_json, rendered_html, render_source, layout_html, layout_css, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9) RETURNING id, created_at, updated_at`,
		builder.UserID, builder.TemplateID, builder.Name, customData, builder.RenderedHTML, source,
		builder.LayoutHTML, builder.LayoutCSS, now,
	).Scan(&builder.ID, &builder.CreatedAt, &builder.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errs.NotFoundError{Entity: "template", ID: builder.TemplateID}
		}
		return fmt.Errorf("err inserting builder, %v", err)
	}
	return nil
}

func (r *BuilderRepo) UpdateBuilder(ctx context.Context, id uint64, patch entity.BuilderPatch) (*entity.Builder, error) {
	customData, err := db.DocumentToRaw(patch.CustomData)
	if err != nil {
		return nil, err
	}
	// client supplied html counts as an editor write
	var source *string
	if patch.RenderedHTML != nil {
		s := string(consts.RenderSourceEditor)
		source = &s
	}
	tag, err := r.conn.Exec(ctx,
		`UPDATE undangan.builders SET
			template_id = COALESCE($1, template_id),
			name = COALESCE($2, name),
			custom_data_json = COALESCE($3, custom_data_json),
			rendered_html = COALESCE($4, rendered_html),
			render_source = COALESCE($5, render_source),
			updated_at = $6
		WHERE id = $7`,
		patch.TemplateID, patch.Name, customData, patch.RenderedHTML, source, time.Now(), id,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, errs.NewValidationError("template_id", "selected template does not exist")
		}
		return nil, fmt.Errorf("err updating builder %d, %v", id, err)
	}
	if err = affectedOrNotFound(tag, "builder", id); err != nil {
		return nil, err
	}
	return r.GetBuilderByID(ctx, id)
}

func (r *BuilderRepo) SaveLayout(ctx context.Context, id uint64, layout entity.Layout) (*entity.Builder, error) {
	customData, err := db.DocumentToRaw(&layout.CustomData)
	if err != nil {
		return nil, err
	}
	var source *string
	if layout.RenderedHTML != nil {
		s := string(consts.RenderSourceEditor)
		source = &s
	}
	tag, err := r.conn.Exec(ctx,
		`UPDATE undangan.builders SET
			custom_data_json = $1,
			layout_html = COALESCE($2, layout_html),
			layout_css = COALESCE($3, layout_css),
			rendered_html = COALESCE($4, rendered_html),
			render_source = COALESCE($5, render_source),
			updated_at = $6
		WHERE id = $7`,
		customData, layout.LayoutHTML, layout.LayoutCSS, layout.RenderedHTML, source, time.Now(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("err saving layout of builder %d, %v", id, err)
	}
	if err = affectedOrNotFound(tag, "builder", id); err != nil {
		return nil, err
	}
	return r.GetBuilderByID(ctx, id)
}

func (r *BuilderRepo) UpdateRenderedHTML(ctx context.Context, id uint64, html string, source consts.RenderSource) error {
	tag, err := r.conn.Exec(ctx,
		"UPDATE undangan.builders SET rendered_html = $1, render_source = $2, updated_at = $3 WHERE id = $4",
		html, string(source), time.Now(), id)
	if err != nil {
		return fmt.Errorf("err storing rendered html of builder %d, %v", id, err)
	}
	return affectedOrNotFound(tag, "builder", id)
}

func (r *BuilderRepo) DeleteBuilder(ctx context.Context, id uint64) error {
	tag, err := r.conn.Exec(ctx, "DELETE FROM undangan.builders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("err deleting builder %d, %v", id, err)
	}
	return affectedOrNotFound(tag, "builder", id)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
