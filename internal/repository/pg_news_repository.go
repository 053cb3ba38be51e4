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

// PgNewsRepository は NewsRepository の PostgreSQL 実装
type PgNewsRepository struct {
	pool *pgxpool.Pool
}

// NewPgNewsRepository は PgNewsRepository を生成する
func NewPgNewsRepository(pool *pgxpool.Pool) *PgNewsRepository {
	return &PgNewsRepository{pool: pool}
}

const newsSelectCols = `id, slug, title, summary, image_url, data_ai_hint, category, published_date, content, created_at, updated_at`

func scanNewsRecord(scan func(...any) error) (mapper.NewsArticleRecord, error) {
	var rec mapper.NewsArticleRecord
	err := scan(&rec.ID, &rec.Slug, &rec.Title, &rec.Summary, &rec.ImageURL,
		&rec.DataAiHint, &rec.Category, &rec.PublishedDate, &rec.Content,
		&rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

// List はニュース記事一覧を公開日の降順で返す（コメント・いいねは含まない）
func (r *PgNewsRepository) List(ctx context.Context) ([]*model.NewsArticle, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+newsSelectCols+` FROM newsarticle ORDER BY published_date DESC`)
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

// GetBySlug はスラッグで記事を取得する。コメント（投稿者プロフィール付き・新しい順）、
// いいね数、viewerID のいいね状態を含む。
func (r *PgNewsRepository) GetBySlug(ctx context.Context, slug string, viewerID *string) (*model.NewsArticle, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+newsSelectCols+` FROM newsarticle WHERE slug = $1`, slug)
	rec, err := scanNewsRecord(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	article := mapper.NewsFromRecord(rec)

	comments, err := r.commentsForArticle(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	article.Comments = comments

	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM newslike WHERE news_article_id = $1`, rec.ID,
	).Scan(&article.LikeCount); err != nil {
		return nil, err
	}

	if viewerID != nil {
		var liked bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM newslike WHERE user_id = $1 AND news_article_id = $2)`,
			*viewerID, rec.ID,
		).Scan(&liked); err != nil {
			return nil, err
		}
		article.IsLikedByUser = liked
	}

	return article, nil
}

func (r *PgNewsRepository) commentsForArticle(ctx context.Context, articleID string) ([]model.NewsComment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.content, c.created_at, u.id, u.name, u.image
		 FROM newscomment c
		 INNER JOIN users u ON u.id = c.user_id
		 WHERE c.news_article_id = $1
		 ORDER BY c.created_at DESC`,
		articleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []model.NewsComment{}
	for rows.Next() {
		var c model.NewsComment
		if err := rows.Scan(&c.ID, &c.Content, &c.CreatedAt,
			&c.User.ID, &c.User.Name, &c.User.Image); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// GetByID は ID で記事を取得する（コメント・いいねは含まない）
func (r *PgNewsRepository) GetByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+newsSelectCols+` FROM newsarticle WHERE id = $1`, id)
	rec, err := scanNewsRecord(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapper.NewsFromRecord(rec), nil
}

// Create はニュース記事を作成する。スラッグ重複は ErrConflict。
func (r *PgNewsRepository) Create(ctx context.Context, input model.NewsArticleInput) (*model.NewsArticle, error) {
	id := uuid.NewString()
	now := time.Now()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO newsarticle (id, slug, title, summary, image_url, data_ai_hint, category,
			published_date, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		id, input.Slug, input.Title, input.Summary, input.ImageURL, input.DataAiHint,
		input.Category, input.PublishedDate, input.Content, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update はニュース記事を部分更新する。
// ImageURL / DataAiHint への空文字列指定は null としてクリアする。
func (r *PgNewsRepository) Update(ctx context.Context, id string, patch model.NewsArticlePatch) (*model.NewsArticle, error) {
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
	if patch.ImageURL.Set {
		add("image_url", emptyToNull(patch.ImageURL.Ptr()))
	}
	if patch.DataAiHint.Set {
		add("data_ai_hint", emptyToNull(patch.DataAiHint.Ptr()))
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.PublishedDate != nil {
		add("published_date", *patch.PublishedDate)
	}
	if patch.Content.Set {
		add("content", patch.Content.Ptr())
	}

	ct, err := r.pool.Exec(ctx, "UPDATE newsarticle SET "+joinSets(sets)+" WHERE id = $1", args...)
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

// Delete は記事と依存行（コメント・いいね・ブックマーク）を
// 単一トランザクションで削除する
func (r *PgNewsRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, q := range []string{
		`DELETE FROM newscomment WHERE news_article_id = $1`,
		`DELETE FROM newslike WHERE news_article_id = $1`,
		`DELETE FROM bookmarkednewsarticle WHERE news_article_id = $1`,
	} {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}

	ct, err := tx.Exec(ctx, `DELETE FROM newsarticle WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

// AddComment は記事へコメントを追加し、投稿者プロフィール付きで返す
func (r *PgNewsRepository) AddComment(ctx context.Context, articleID, userID, content string) (*model.NewsComment, error) {
	id := uuid.NewString()
	now := time.Now()
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO newscomment (id, news_article_id, user_id, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, articleID, userID, content, now, now,
	); err != nil {
		return nil, err
	}

	c := model.NewsComment{ID: id, Content: content, CreatedAt: now}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, image FROM users WHERE id = $1`, userID,
	).Scan(&c.User.ID, &c.User.Name, &c.User.Image)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ToggleLike はいいねをトグルする。既存行があれば削除して false、
// なければ作成して true を返す。(user, article) の一意制約が重複の調停点。
func (r *PgNewsRepository) ToggleLike(ctx context.Context, articleID, userID string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var existingID string
	err = tx.QueryRow(ctx,
		`SELECT id FROM newslike WHERE user_id = $1 AND news_article_id = $2`,
		userID, articleID,
	).Scan(&existingID)

	switch {
	case err == nil:
		if _, err := tx.Exec(ctx, `DELETE FROM newslike WHERE id = $1`, existingID); err != nil {
			return false, err
		}
		return false, tx.Commit(ctx)
	case errors.Is(err, pgx.ErrNoRows):
		_, err := tx.Exec(ctx,
			`INSERT INTO newslike (id, user_id, news_article_id, created_at) VALUES ($1, $2, $3, $4)`,
			uuid.NewString(), userID, articleID, time.Now())
		if err != nil {
			// 同時トグルで先を越された場合は「既にいいね済み」として扱う
			if isUniqueViolation(err) {
				return true, nil
			}
			return false, err
		}
		return true, tx.Commit(ctx)
	default:
		return false, err
	}
}

// emptyToNull は空文字列・null 指定を NULL へ正規化する
func emptyToNull(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
