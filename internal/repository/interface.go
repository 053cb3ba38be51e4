package repository

import (
	"context"
	"time"

	"github.com/nigeriagovhub/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ProjectRepository はプロジェクト永続化のインターフェース
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, input model.ProjectInput) (*model.Project, error)
	Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

// FeedbackRepository はフィードバック永続化のインターフェース
type FeedbackRepository interface {
	Add(ctx context.Context, projectID string, input model.FeedbackInput) (*model.Feedback, error)
	ListByProject(ctx context.Context, projectID string) ([]*model.Feedback, error)
	ListAllWithProjectTitles(ctx context.Context) ([]*model.FeedbackWithProject, error)
	ListByUserWithProjectTitles(ctx context.Context, userID string) ([]*model.FeedbackWithProject, error)
	StatsByUser(ctx context.Context, userID string) (count int, avgRating float64, err error)
}

// CreateUserParams はユーザー作成パラメータ
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	Role         model.UserRole
}

// UserRepository はユーザー永続化のインターフェース
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindFullByEmail(ctx context.Context, email string) (*model.FullUser, error)
	List(ctx context.Context) ([]*model.User, error)
	Create(ctx context.Context, params CreateUserParams) (*model.User, error)
	UpdateName(ctx context.Context, id, name string) (*model.User, error)
	SetEmailVerified(ctx context.Context, email string, verifiedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// NewsRepository はニュース記事永続化のインターフェース
type NewsRepository interface {
	List(ctx context.Context) ([]*model.NewsArticle, error)
	GetBySlug(ctx context.Context, slug string, viewerID *string) (*model.NewsArticle, error)
	GetByID(ctx context.Context, id string) (*model.NewsArticle, error)
	Create(ctx context.Context, input model.NewsArticleInput) (*model.NewsArticle, error)
	Update(ctx context.Context, id string, patch model.NewsArticlePatch) (*model.NewsArticle, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, articleID, userID, content string) (*model.NewsComment, error)
	ToggleLike(ctx context.Context, articleID, userID string) (liked bool, err error)
}

// ServiceRepository は行政サービス永続化のインターフェース
type ServiceRepository interface {
	List(ctx context.Context) ([]*model.ServiceItem, error)
	GetByID(ctx context.Context, id string) (*model.ServiceItem, error)
	GetBySlug(ctx context.Context, slug string) (*model.ServiceItem, error)
	Create(ctx context.Context, input model.ServiceItemInput) (*model.ServiceItem, error)
	Update(ctx context.Context, id string, patch model.ServiceItemPatch) (*model.ServiceItem, error)
	Delete(ctx context.Context, id string) error
}

// VideoRepository は動画永続化のインターフェース
type VideoRepository interface {
	List(ctx context.Context) ([]*model.Video, error)
	GetByID(ctx context.Context, id string) (*model.Video, error)
	Create(ctx context.Context, input model.VideoInput) (*model.Video, error)
	Update(ctx context.Context, id string, patch model.VideoPatch) (*model.Video, error)
	Delete(ctx context.Context, id string) error
}

// SiteSettingsRepository はサイト設定シングルトンのインターフェース
type SiteSettingsRepository interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Upsert(ctx context.Context, patch model.SiteSettingsPatch) (*model.SiteSettings, error)
}

// BookmarkRepository はブックマーク（プロジェクト・ニュース）のインターフェース。
// 重複追加は ErrConflict、存在しないものの削除は ErrNotFound を返す。
type BookmarkRepository interface {
	AddProject(ctx context.Context, userID, projectID string) error
	RemoveProject(ctx context.Context, userID, projectID string) error
	AddNews(ctx context.Context, userID, articleID string) error
	RemoveNews(ctx context.Context, userID, articleID string) error
	IsNewsBookmarked(ctx context.Context, userID, articleID string) (bool, error)
	ListBookmarkedProjects(ctx context.Context, userID string) ([]*model.Project, error)
	ListBookmarkedNews(ctx context.Context, userID string) ([]*model.NewsArticle, error)
	CountProjectsByUser(ctx context.Context, userID string) (int, error)
	CountNewsByUser(ctx context.Context, userID string) (int, error)
}

// VerificationTokenRepository はメール確認トークン永続化のインターフェース
type VerificationTokenRepository interface {
	FindByToken(ctx context.Context, token string) (*model.VerificationToken, error)
	FindByEmail(ctx context.Context, email string) (*model.VerificationToken, error)
	Create(ctx context.Context, email, token string, expires time.Time) (*model.VerificationToken, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email string) error
}
