package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// BookmarkServiceImpl は BookmarkService の実装
type BookmarkServiceImpl struct {
	bookmarkRepo repository.BookmarkRepository
}

// NewBookmarkService は BookmarkServiceImpl を生成する（DI: BookmarkRepository を注入）
func NewBookmarkService(bookmarkRepo repository.BookmarkRepository) BookmarkService {
	return &BookmarkServiceImpl{bookmarkRepo: bookmarkRepo}
}

// AddProject はプロジェクトをブックマークする。登録済みなら何もしない
func (s *BookmarkServiceImpl) AddProject(ctx context.Context, userID, projectID string) error {
	err := s.bookmarkRepo.AddProject(ctx, userID, projectID)
	if errors.Is(err, repository.ErrConflict) {
		return nil
	}
	return err
}

// RemoveProject はプロジェクトのブックマークを解除する
func (s *BookmarkServiceImpl) RemoveProject(ctx context.Context, userID, projectID string) error {
	return s.bookmarkRepo.RemoveProject(ctx, userID, projectID)
}

// AddNews はニュース記事をブックマークする。登録済みなら何もしない
func (s *BookmarkServiceImpl) AddNews(ctx context.Context, userID, articleID string) error {
	err := s.bookmarkRepo.AddNews(ctx, userID, articleID)
	if errors.Is(err, repository.ErrConflict) {
		return nil
	}
	return err
}

// RemoveNews はニュース記事のブックマークを解除する
func (s *BookmarkServiceImpl) RemoveNews(ctx context.Context, userID, articleID string) error {
	return s.bookmarkRepo.RemoveNews(ctx, userID, articleID)
}

// IsNewsBookmarked はニュース記事がブックマーク済みかを返す
func (s *BookmarkServiceImpl) IsNewsBookmarked(ctx context.Context, userID, articleID string) (bool, error) {
	return s.bookmarkRepo.IsNewsBookmarked(ctx, userID, articleID)
}

// ListProjects はブックマーク済みプロジェクト一覧を返す（ストア障害時は空一覧へ縮退）
func (s *BookmarkServiceImpl) ListProjects(ctx context.Context, userID string) ([]*model.Project, error) {
	projects, err := s.bookmarkRepo.ListBookmarkedProjects(ctx, userID)
	if err != nil {
		if !degradable(err) {
			return nil, err
		}
		slog.Error("list bookmarked projects failed, degrading to empty", "user_id", userID, "error", err)
		return []*model.Project{}, nil
	}
	return projects, nil
}

// ListNews はブックマーク済みニュース一覧を返す（ストア障害時は空一覧へ縮退）
func (s *BookmarkServiceImpl) ListNews(ctx context.Context, userID string) ([]*model.NewsArticle, error) {
	articles, err := s.bookmarkRepo.ListBookmarkedNews(ctx, userID)
	if err != nil {
		slog.Error("list bookmarked news failed, degrading to empty", "user_id", userID, "error", err)
		return []*model.NewsArticle{}, nil
	}
	return articles, nil
}
