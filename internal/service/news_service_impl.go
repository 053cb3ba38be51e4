package service

import (
	"context"
	"log/slog"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
	"github.com/nigeriagovhub/backend/internal/sanitize"
)

// NewsServiceImpl は NewsService の実装
type NewsServiceImpl struct {
	newsRepo repository.NewsRepository
}

// NewNewsService は NewsServiceImpl を生成する（DI: NewsRepository を注入）
func NewNewsService(newsRepo repository.NewsRepository) NewsService {
	return &NewsServiceImpl{newsRepo: newsRepo}
}

// List はニュース記事一覧を返す（ストア障害時は空一覧へ縮退）
func (s *NewsServiceImpl) List(ctx context.Context) ([]*model.NewsArticle, error) {
	articles, err := s.newsRepo.List(ctx)
	if err != nil {
		slog.Error("list news failed, degrading to empty", "error", err)
		return []*model.NewsArticle{}, nil
	}
	return articles, nil
}

// GetBySlug はスラッグで記事を取得する（コメント・いいね込み）
func (s *NewsServiceImpl) GetBySlug(ctx context.Context, slug string, viewerID *string) (*model.NewsArticle, error) {
	return s.newsRepo.GetBySlug(ctx, slug, viewerID)
}

// GetByID は ID で記事を取得する
func (s *NewsServiceImpl) GetByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	return s.newsRepo.GetByID(ctx, id)
}

// Create はニュース記事を作成する。本文は保存前に無害化する。
func (s *NewsServiceImpl) Create(ctx context.Context, input model.NewsArticleInput) (*model.NewsArticle, error) {
	if input.Content != nil {
		clean := sanitize.RichText(*input.Content)
		input.Content = &clean
	}
	return s.newsRepo.Create(ctx, input)
}

// Update はニュース記事を部分更新する
func (s *NewsServiceImpl) Update(ctx context.Context, id string, patch model.NewsArticlePatch) (*model.NewsArticle, error) {
	if patch.Content.Set && patch.Content.Valid {
		patch.Content.Value = sanitize.RichText(patch.Content.Value)
	}
	return s.newsRepo.Update(ctx, id, patch)
}

// Delete は記事を削除する（コメント・いいね・ブックマークのカスケード削除はリポジトリの責務）
func (s *NewsServiceImpl) Delete(ctx context.Context, id string) error {
	return s.newsRepo.Delete(ctx, id)
}

// AddComment は記事へコメントを追加する。本文は保存前に無害化する。
func (s *NewsServiceImpl) AddComment(ctx context.Context, articleID, userID, content string) (*model.NewsComment, error) {
	return s.newsRepo.AddComment(ctx, articleID, userID, sanitize.RichText(content))
}

// ToggleLike はいいねをトグルし、トグル後の状態を返す
func (s *NewsServiceImpl) ToggleLike(ctx context.Context, articleID, userID string) (bool, error) {
	return s.newsRepo.ToggleLike(ctx, articleID, userID)
}
