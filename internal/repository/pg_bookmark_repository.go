package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nigeriagovhub/backend/internal/mapper"
	"github.com/nigeriagovhub/backend/internal/model"
)

// PgBookmarkRepository は BookmarkRepository の PostgreSQL 実装。
// (user, entity) の複合一意制約により、同一エンティティへのブックマークは
// ユーザーごとに最大 1 件となる。
type PgBookmarkRepository struct {
	pool *pgxpool.Pool
}

// NewPgBookmarkRepository は PgBookmarkRepository を生成する
func NewPgBookmarkRepository(pool *pgxpool.Pool) *PgBookmarkRepository {
	return &PgBookmarkRepository{pool: pool}
}

// AddProject はプロジェクトをブックマークする。重複は ErrConflict。
func (r *PgBookmarkRepository) AddProject(ctx context.Context, userID, projectID string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO bookmarkedproject (id, user_id, project_id, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), userID, projectID, time.Now(),
	)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

// RemoveProject はプロジェクトのブックマークを解除する。存在しない場合は ErrNotFound。
func (r *PgBookmarkRepository) RemoveProject(ctx context.Context, userID, projectID string) error {
	ct, err := r.pool.Exec(ctx,
		`DELETE FROM bookmarkedproject WHERE user_id = $1 AND project_id = $2`,
		userID, projectID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddNews はニュース記事をブックマークする。重複は ErrConflict。
func (r *PgBookmarkRepository) AddNews(ctx context.Context, userID, articleID string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO bookmarkednewsarticle (id, user_id, news_article_id, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), userID, articleID, time.Now(),
	)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

// RemoveNews はニュース記事のブックマークを解除する。存在しない場合は ErrNotFound。
func (r *PgBookmarkRepository) RemoveNews(ctx context.Context, userID, articleID string) error {
	ct, err := r.pool.Exec(ctx,
		`DELETE FROM bookmarkednewsarticle WHERE user_id = $1 AND news_article_id = $2`,
		userID, articleID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// IsNewsBookmarked はブックマーク済みかどうかを返す
func (r *PgBookmarkRepository) IsNewsBookmarked(ctx context.Context, userID, articleID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookmarkednewsarticle WHERE user_id = $1 AND news_article_id = $2)`,
		userID, articleID,
	).Scan(&exists)
	return exists, err
}

// ListBookmarkedProjects はユーザーがブックマークしたプロジェクト一覧を返す
func (r *PgBookmarkRepository) ListBookmarkedProjects(ctx context.Context, userID string) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.title, p.subtitle, p.ministry_id, p.state_id, p.status, p.start_date,
			p.expected_end_date, p.actual_end_date, p.description, p.images, p.videos, p.impact_stats,
			p.budget, p.expenditure, p.last_updated_at, p.created_at
		 FROM project p
		 INNER JOIN bookmarkedproject b ON b.project_id = p.id
		 WHERE b.user_id = $1
		 ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		rec, err := scanProjectRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		p, err := mapper.Project(rec, nil, nil)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListBookmarkedNews はユーザーがブックマークしたニュース記事一覧を返す
func (r *PgBookmarkRepository) ListBookmarkedNews(ctx context.Context, userID string) ([]*model.NewsArticle, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT n.id, n.slug, n.title, n.summary, n.image_url, n.data_ai_hint, n.category,
			n.published_date, n.content, n.created_at, n.updated_at
		 FROM newsarticle n
		 INNER JOIN bookmarkednewsarticle b ON b.news_article_id = n.id
		 WHERE b.user_id = $1
		 ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*model.NewsArticle
	for rows.Next() {
		rec, err := scanNewsRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, mapper.NewsFromRecord(rec))
	}
	return articles, rows.Err()
}

// CountProjectsByUser はユーザーのプロジェクトブックマーク件数を返す
func (r *PgBookmarkRepository) CountProjectsByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookmarkedproject WHERE user_id = $1`, userID,
	).Scan(&count)
	return count, err
}

// CountNewsByUser はユーザーのニュースブックマーク件数を返す
func (r *PgBookmarkRepository) CountNewsByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookmarkednewsarticle WHERE user_id = $1`, userID,
	).Scan(&count)
	return count, err
}
