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

// PgProjectRepository は ProjectRepository の PostgreSQL 実装
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository は PgProjectRepository を生成する
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

const projectSelectCols = `id, title, subtitle, ministry_id, state_id, status, start_date,
	expected_end_date, actual_end_date, description, images, videos, impact_stats,
	budget, expenditure, last_updated_at, created_at`

func scanProjectRecord(scan func(...any) error) (mapper.ProjectRecord, error) {
	var rec mapper.ProjectRecord
	err := scan(
		&rec.ID, &rec.Title, &rec.Subtitle, &rec.MinistryID, &rec.StateID,
		&rec.Status, &rec.StartDate, &rec.ExpectedEndDate, &rec.ActualEndDate,
		&rec.Description, &rec.Images, &rec.Videos, &rec.ImpactStats,
		&rec.Budget, &rec.Expenditure, &rec.LastUpdatedAt, &rec.CreatedAt,
	)
	return rec, err
}

// tagsForProjects は複数プロジェクトのタグ名をまとめて取得する。
// 順序は projecttag の参照順（それ以上の保証はしない）。
func (r *PgProjectRepository) tagsForProjects(ctx context.Context, projectIDs []string) (map[string][]string, error) {
	tags := make(map[string][]string, len(projectIDs))
	if len(projectIDs) == 0 {
		return tags, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT pt.project_id, t.name
		 FROM projecttag pt
		 INNER JOIN tag t ON t.id = pt.tag_id
		 WHERE pt.project_id = ANY($1)`,
		projectIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var projectID, name string
		if err := rows.Scan(&projectID, &name); err != nil {
			return nil, err
		}
		tags[projectID] = append(tags[projectID], name)
	}
	return tags, rows.Err()
}

// List はプロジェクト一覧（タグ付き）を最終更新日時の降順で取得する
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectSelectCols+` FROM project ORDER BY last_updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []mapper.ProjectRecord
	for rows.Next() {
		rec, err := scanProjectRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID
	}
	tags, err := r.tagsForProjects(ctx, ids)
	if err != nil {
		return nil, err
	}

	projects := make([]*model.Project, 0, len(recs))
	for _, rec := range recs {
		p, err := mapper.Project(rec, tags[rec.ID], nil)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// GetByID は ID でプロジェクトを取得する（タグ・フィードバック込み）。
// 対象が存在しない場合は ErrNotFound を返す。
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+projectSelectCols+` FROM project WHERE id = $1`, id)
	rec, err := scanProjectRecord(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	tags, err := r.tagsForProjects(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	feedback, err := r.feedbackForProject(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapper.Project(rec, tags[id], feedback)
}

func (r *PgProjectRepository) feedbackForProject(ctx context.Context, projectID string) ([]*model.Feedback, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, project_id, user_id, user_name, comment, rating, sentiment_summary, created_at
		 FROM feedback WHERE project_id = $1 ORDER BY created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Feedback
	for rows.Next() {
		var rec mapper.FeedbackRecord
		if err := rows.Scan(&rec.ID, &rec.ProjectID, &rec.UserID, &rec.UserName,
			&rec.Comment, &rec.Rating, &rec.SentimentSummary, &rec.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, mapper.FeedbackFromRecord(rec))
	}
	return list, rows.Err()
}

// attachTags はタグ名集合をプロジェクトへ関連付ける（connect-or-create）。
// tag.name の一意制約が同時作成の調停点であり、ON CONFLICT DO NOTHING で
// 衝突を決定的に吸収する。
func attachTags(ctx context.Context, tx pgx.Tx, projectID string, names []string) error {
	for _, name := range names {
		if _, err := tx.Exec(ctx,
			`INSERT INTO tag (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			uuid.NewString(), name); err != nil {
			return err
		}
		var tagID string
		if err := tx.QueryRow(ctx, `SELECT id FROM tag WHERE name = $1`, name).Scan(&tagID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO projecttag (project_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			projectID, tagID); err != nil {
			return err
		}
	}
	return nil
}

// Create はプロジェクトを作成する。ID は UUID を新規採番し、
// created_at / last_updated_at を現在時刻で打刻する。
func (r *PgProjectRepository) Create(ctx context.Context, input model.ProjectInput) (*model.Project, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := uuid.NewString()
	now := time.Now()
	_, err = tx.Exec(ctx,
		`INSERT INTO project (id, title, subtitle, ministry_id, state_id, status, start_date,
			expected_end_date, description, images, videos, impact_stats, budget, expenditure,
			last_updated_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, '', '', '', $10, $11, $12, $13)`,
		id, input.Title, input.Subtitle, input.MinistryID, input.StateID,
		string(input.Status), input.StartDate, input.ExpectedEndDate, input.Description,
		input.Budget, input.Expenditure, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if len(input.Tags) > 0 {
		if err := attachTags(ctx, tx, id, input.Tags); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update はプロジェクトを部分更新する。指定フィールドのみ適用し、
// last_updated_at は常に現在時刻へ更新する。
// Tags が指定された場合はタグ関連付け全体を置換する（削除して再作成）。
func (r *PgProjectRepository) Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sets := []string{"last_updated_at = NOW()"}
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Subtitle != nil {
		add("subtitle", *patch.Subtitle)
	}
	if patch.MinistryID.Set {
		add("ministry_id", patch.MinistryID.Ptr())
	}
	if patch.StateID.Set {
		add("state_id", patch.StateID.Ptr())
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.ExpectedEndDate.Set {
		add("expected_end_date", patch.ExpectedEndDate.Ptr())
	}
	if patch.ActualEndDate.Set {
		add("actual_end_date", patch.ActualEndDate.Ptr())
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Budget.Set {
		add("budget", patch.Budget.Ptr())
	}
	if patch.Expenditure.Set {
		add("expenditure", patch.Expenditure.Ptr())
	}
	if patch.Images.Set {
		add("images", encodeJSONArrayColumn(patch.Images.Ptr()))
	}
	if patch.Videos.Set {
		add("videos", encodeJSONArrayColumn(patch.Videos.Ptr()))
	}
	if patch.ImpactStats.Set {
		add("impact_stats", encodeJSONArrayColumn(patch.ImpactStats.Ptr()))
	}

	query := "UPDATE project SET " + joinSets(sets) + " WHERE id = $1"
	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	if patch.Tags != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM projecttag WHERE project_id = $1`, id); err != nil {
			return nil, err
		}
		if err := attachTags(ctx, tx, id, *patch.Tags); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete はプロジェクトと依存行を削除する。ストアは自動カスケードしないため、
// タグ関連・フィードバック・ブックマークを明示的に先へ削除する（単一トランザクション）。
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, q := range []string{
		`DELETE FROM projecttag WHERE project_id = $1`,
		`DELETE FROM feedback WHERE project_id = $1`,
		`DELETE FROM bookmarkedproject WHERE project_id = $1`,
	} {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}

	ct, err := tx.Exec(ctx, `DELETE FROM project WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
