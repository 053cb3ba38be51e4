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

// PgVideoRepository は VideoRepository の PostgreSQL 実装
type PgVideoRepository struct {
	pool *pgxpool.Pool
}

// NewPgVideoRepository は PgVideoRepository を生成する
func NewPgVideoRepository(pool *pgxpool.Pool) *PgVideoRepository {
	return &PgVideoRepository{pool: pool}
}

const videoSelectCols = `id, title, url, thumbnail_url, data_ai_hint, description, created_at, updated_at`

func scanVideoRecord(scan func(...any) error) (mapper.VideoRecord, error) {
	var rec mapper.VideoRecord
	err := scan(&rec.ID, &rec.Title, &rec.URL, &rec.ThumbnailURL,
		&rec.DataAiHint, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

// List は動画一覧を作成の新しい順で返す
func (r *PgVideoRepository) List(ctx context.Context) ([]*model.Video, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+videoSelectCols+` FROM video ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []*model.Video
	for rows.Next() {
		rec, err := scanVideoRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		videos = append(videos, mapper.VideoFromRecord(rec))
	}
	return videos, rows.Err()
}

// GetByID は ID で動画を取得する
func (r *PgVideoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+videoSelectCols+` FROM video WHERE id = $1`, id)
	rec, err := scanVideoRecord(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapper.VideoFromRecord(rec), nil
}

// Create は動画を作成する
func (r *PgVideoRepository) Create(ctx context.Context, input model.VideoInput) (*model.Video, error) {
	id := uuid.NewString()
	now := time.Now()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO video (id, title, url, thumbnail_url, data_ai_hint, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, input.Title, input.URL, input.ThumbnailURL, input.DataAiHint, input.Description, now, now,
	)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update は動画を部分更新する。
// nullable フィールドへの空文字列指定は null としてクリアする。
func (r *PgVideoRepository) Update(ctx context.Context, id string, patch model.VideoPatch) (*model.Video, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.URL != nil {
		add("url", *patch.URL)
	}
	if patch.ThumbnailURL.Set {
		add("thumbnail_url", emptyToNull(patch.ThumbnailURL.Ptr()))
	}
	if patch.DataAiHint.Set {
		add("data_ai_hint", emptyToNull(patch.DataAiHint.Ptr()))
	}
	if patch.Description.Set {
		add("description", emptyToNull(patch.Description.Ptr()))
	}

	ct, err := r.pool.Exec(ctx, "UPDATE video SET "+joinSets(sets)+" WHERE id = $1", args...)
	if err != nil {
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete は動画を削除する
func (r *PgVideoRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM video WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
