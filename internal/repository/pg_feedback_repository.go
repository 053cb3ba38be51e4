package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nigeriagovhub/backend/internal/mapper"
	"github.com/nigeriagovhub/backend/internal/model"
)

// PgFeedbackRepository は FeedbackRepository の PostgreSQL 実装
type PgFeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewPgFeedbackRepository は PgFeedbackRepository を生成する
func NewPgFeedbackRepository(pool *pgxpool.Pool) *PgFeedbackRepository {
	return &PgFeedbackRepository{pool: pool}
}

const feedbackSelectCols = `id, project_id, user_id, user_name, comment, rating, sentiment_summary, created_at`

func scanFeedbackRecord(scan func(...any) error) (mapper.FeedbackRecord, error) {
	var rec mapper.FeedbackRecord
	err := scan(&rec.ID, &rec.ProjectID, &rec.UserID, &rec.UserName,
		&rec.Comment, &rec.Rating, &rec.SentimentSummary, &rec.CreatedAt)
	return rec, err
}

// Add はプロジェクトへフィードバックを追加する。作成後の更新はない。
func (r *PgFeedbackRepository) Add(ctx context.Context, projectID string, input model.FeedbackInput) (*model.Feedback, error) {
	rec := mapper.FeedbackRecord{
		ID:               uuid.NewString(),
		ProjectID:        projectID,
		UserID:           input.UserID,
		UserName:         input.UserName,
		Comment:          input.Comment,
		Rating:           input.Rating,
		SentimentSummary: input.SentimentSummary,
		CreatedAt:        time.Now(),
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO feedback (id, project_id, user_id, user_name, comment, rating, sentiment_summary, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.ProjectID, rec.UserID, rec.UserName, rec.Comment,
		rec.Rating, rec.SentimentSummary, rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return mapper.FeedbackFromRecord(rec), nil
}

// ListByProject はプロジェクトのフィードバック一覧を新しい順で返す
func (r *PgFeedbackRepository) ListByProject(ctx context.Context, projectID string) ([]*model.Feedback, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+feedbackSelectCols+` FROM feedback WHERE project_id = $1 ORDER BY created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFeedback(rows)
}

func collectFeedback(rows pgx.Rows) ([]*model.Feedback, error) {
	var list []*model.Feedback
	for rows.Next() {
		rec, err := scanFeedbackRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, mapper.FeedbackFromRecord(rec))
	}
	return list, rows.Err()
}

// ListAllWithProjectTitles は全フィードバックをプロジェクトタイトル付きで返す（管理画面用）。
// プロジェクトが見つからない場合のタイトルは "Unknown Project"。
func (r *PgFeedbackRepository) ListAllWithProjectTitles(ctx context.Context) ([]*model.FeedbackWithProject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT f.id, f.project_id, f.user_id, f.user_name, f.comment, f.rating, f.sentiment_summary, f.created_at,
			COALESCE(p.title, 'Unknown Project')
		 FROM feedback f
		 LEFT JOIN project p ON p.id = f.project_id
		 ORDER BY f.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFeedbackWithProject(rows)
}

// ListByUserWithProjectTitles はユーザーが投稿したフィードバックをプロジェクトタイトル付きで返す
func (r *PgFeedbackRepository) ListByUserWithProjectTitles(ctx context.Context, userID string) ([]*model.FeedbackWithProject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT f.id, f.project_id, f.user_id, f.user_name, f.comment, f.rating, f.sentiment_summary, f.created_at,
			COALESCE(p.title, 'Unknown Project')
		 FROM feedback f
		 LEFT JOIN project p ON p.id = f.project_id
		 WHERE f.user_id = $1
		 ORDER BY f.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFeedbackWithProject(rows)
}

func collectFeedbackWithProject(rows pgx.Rows) ([]*model.FeedbackWithProject, error) {
	var list []*model.FeedbackWithProject
	for rows.Next() {
		var rec mapper.FeedbackRecord
		var title string
		if err := rows.Scan(&rec.ID, &rec.ProjectID, &rec.UserID, &rec.UserName,
			&rec.Comment, &rec.Rating, &rec.SentimentSummary, &rec.CreatedAt, &title); err != nil {
			return nil, err
		}
		list = append(list, &model.FeedbackWithProject{
			Feedback:     *mapper.FeedbackFromRecord(rec),
			ProjectTitle: title,
		})
	}
	return list, rows.Err()
}

// StatsByUser はユーザーのフィードバック件数と rating 非 null 分の平均を返す。
// 該当 rating がない場合の平均は 0。
func (r *PgFeedbackRepository) StatsByUser(ctx context.Context, userID string) (int, float64, error) {
	var count int
	var avg float64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(rating) FILTER (WHERE rating IS NOT NULL), 0)
		 FROM feedback WHERE user_id = $1`,
		userID,
	).Scan(&count, &avg)
	if err != nil {
		return 0, 0, err
	}
	return count, avg, nil
}
