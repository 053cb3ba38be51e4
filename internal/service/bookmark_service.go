package service

import (
	"context"

	"github.com/nigeriagovhub/backend/internal/model"
)

// BookmarkService はブックマークに関するビジネスロジックのインターフェース
type BookmarkService interface {
	AddProject(ctx context.Context, userID, projectID string) error
	RemoveProject(ctx context.Context, userID, projectID string) error
	AddNews(ctx context.Context, userID, articleID string) error
	RemoveNews(ctx context.Context, userID, articleID string) error
	IsNewsBookmarked(ctx context.Context, userID, articleID string) (bool, error)
	ListProjects(ctx context.Context, userID string) ([]*model.Project, error)
	ListNews(ctx context.Context, userID string) ([]*model.NewsArticle, error)
}
