package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nigeriagovhub/backend/internal/mapper"
	"github.com/nigeriagovhub/backend/internal/model"
)

// PgServiceRepository は ServiceRepository の PostgreSQL 実装
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceRepository は PgServiceRepository を生成する
func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

const serviceSelectCols = `id, slug, title, summary, icon_name, link, category, image_url, data_ai_hint, created_at, updated_at`

func scanServiceRecord(scan func(...any) error) (mapper.ServiceRecord, error) {
	var rec mapper.ServiceRecord
	err := scan(&rec.ID, &rec.Slug, &rec.Title, &rec.Summary, &rec.IconName,
		&rec.Link, &rec.Category, &rec.ImageURL, &rec.DataAiHint,
		&rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

// List はサービス一覧をタイトル昇順で返す
func (r *PgServiceRepository) List(ctx context.Context) ([]*model.ServiceItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+serviceSelectCols+` FROM service ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*model.ServiceItem
	for rows.Next() {
		rec, err := scanServiceRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		services = append(services, mapper.ServiceFromRecord(rec))
	}
	return services, rows.Err()
}

// GetByID は ID でサービスを取得する
func (r *PgServiceRepository) GetByID(ctx context.Context, id string) (*model.ServiceItem, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+serviceSelectCols+` FROM service WHERE id = $1`, id)
	rec, err := scanServiceRecord(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapper.ServiceFromRecord(rec), nil
}

// GetBySlug はスラッグでサービスを取得する
func (r *PgServiceRepository) GetBySlug(ctx context.Context, slug string) (*model.ServiceItem, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+serviceSelectCols+` FROM service WHERE slug = $1`, slug)
	rec, err := scanServiceRecord(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapper.ServiceFromRecord(rec), nil
}

// Create はサービスを作成する。スラッグ重複は ErrConflict。
func (r *PgServiceRepository) Create(ctx context.Context, input model.ServiceItemInput) (*model.ServiceItem, error) {
	id := uuid.NewString()
	now := time.Now()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO service (id, slug, title, summary, icon_name, link, category, image_url, data_ai_hint, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		id, input.Slug, input.Title, input.Summary, input.IconName, input.Link,
		input.Category, input.ImageURL, input.DataAiHint, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update はサービスを部分更新する。
// nullable フィールドへの空文字列指定は null としてクリアする。
func (r *PgServiceRepository) Update(ctx context.Context, id string, patch model.ServiceItemPatch) (*model.ServiceItem, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Summary != nil {
		add("summary", *patch.Summary)
	}
	if patch.IconName.Set {
		add("icon_name", emptyToNull(patch.IconName.Ptr()))
	}
	if patch.Link.Set {
		add("link", emptyToNull(patch.Link.Ptr()))
	}
	if patch.Category.Set {
		add("category", emptyToNull(patch.Category.Ptr()))
	}
	if patch.ImageURL.Set {
		add("image_url", emptyToNull(patch.ImageURL.Ptr()))
	}
	if patch.DataAiHint.Set {
		add("data_ai_hint", emptyToNull(patch.DataAiHint.Ptr()))
	}

	ct, err := r.pool.Exec(ctx, "UPDATE service SET "+joinSets(sets)+" WHERE id = $1", args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete はサービスを削除する
func (r *PgServiceRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM service WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
