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

const editorColumns = "id, user_id, name, content, html, css, is_template, thumbnail, published_at, created_at, updated_at"

type EditorRepo struct {
	conn dbs.DBTX
}

var _ interfaces.EditorRepo = (*EditorRepo)(nil)

func NewEditorRepo(conn dbs.DBTX) *EditorRepo {
	return &EditorRepo{conn: conn}
}

func scanEditor(row pgx.Row) (db.Editor, error) {
	var m db.Editor
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Content, &m.HTML, &m.CSS, &m.IsTemplate, &m.Thumbnail,
		&m.PublishedAt, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *EditorRepo) ListEditorsByOwner(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Editor, error) {
	rows, err := r.conn.Query(ctx,
		"SELECT "+editorColumns+" FROM undangan.editors WHERE user_id = $1 AND is_template = FALSE ORDER BY updated_at DESC, id DESC LIMIT $2",
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("err listing editors, %v", err)
	}
	return collect(rows, scanEditor, db.MapEditorModelToEntity)
}

func (r *EditorRepo) ListTemplatesByOwner(ctx context.Context, userID uuid.UUID) ([]entity.Editor, error) {
	rows, err := r.conn.Query(ctx,
		"SELECT "+editorColumns+" FROM undangan.editors WHERE user_id = $1 AND is_template = TRUE ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("err listing editor templates, %v", err)
	}
	return collect(rows, scanEditor, db.MapEditorModelToEntity)
}

func (r *EditorRepo) CountByOwner(ctx context.Context, userID uuid.UUID, isTemplate bool) (int, error) {
	var count int
	err := r.conn.QueryRow(ctx, "SELECT COUNT(*) FROM undangan.editors WHERE user_id = $1 AND is_template = $2", userID, isTemplate).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("err counting editors, %v", err)
	}
	return count, nil
}

func (r *EditorRepo) GetEditorByID(ctx context.Context, id uint64) (*entity.Editor, error) {
	m, err := scanEditor(r.conn.QueryRow(ctx, "SELECT "+editorColumns+" FROM undangan.editors WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "editor", id)
	}
	e, err := db.MapEditorModelToEntity(m)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EditorRepo) InsertEditor(ctx context.Context, editor *entity.Editor) error {
	content, err := db.DocumentToRaw(editor.Content)
	if err != nil {
		return err
	}
	now := time.Now()
	err = r.conn.QueryRow(ctx,
		`INSERT INTO undangan.editors(user_id, name, content, html, css, is_template, thumbnail, published_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9) RETURNING id, created_at, updated_at`,
		editor.UserID, editor.Name, content, editor.HTML, editor.CSS, editor.IsTemplate, editor.Thumbnail, editor.PublishedAt, now,
	).Scan(&editor.ID, &editor.CreatedAt, &editor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("err inserting editor, %v", err)
	}
	return nil
}

func (r *EditorRepo) UpdateEditor(ctx context.Context, id uint64, patch entity.EditorPatch) (*entity.Editor, error) {
	content, err := db.DocumentToRaw(patch.Content)
	if err != nil {
		return nil, err
	}
	m, err := scanEditor(r.conn.QueryRow(ctx,
		`UPDATE undangan.editors SET
			name = COALESCE($1, name),
			content = COALESCE($2, content),
			html = COALESCE($3, html),
			css = COALESCE($4, css),
			updated_at = $5
		WHERE id = $6 RETURNING `+editorColumns,
		patch.Name, content, patch.HTML, patch.CSS, time.Now(), id,
	))
	if err != nil {
		return nil, notFound(err, "editor", id)
	}
	e, err := db.MapEditorModelToEntity(m)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EditorRepo) DeleteEditor(ctx context.Context, id uint64) error {
	tag, err := r.conn.Exec(ctx, "DELETE FROM undangan.editors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("err deleting editor %d, %v", id, err)
	}
	return affectedOrNotFound(tag, "editor", id)
}
