package service

import (
	"context"

	"github.com/nigeriagovhub/backend/internal/model"
)

// NewsService はニュース記事に関するビジネスロジックのインターフェース
type NewsService interface {
	List(ctx context.Context) ([]*model.NewsArticle, error)
	GetBySlug(ctx context.Context, slug string, viewerID *string) (*model.NewsArticle, error)
	GetByID(ctx context.Context, id string) (*model.NewsArticle, error)
	Create(ctx context.Context, input model.NewsArticleInput) (*model.NewsArticle, error)
	Update(ctx context.Context, id string, patch model.NewsArticlePatch) (*model.NewsArticle, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, articleID, userID, content string) (*model.NewsComment, error)
	ToggleLike(ctx context.Context, articleID, userID string) (bool, error)
}
