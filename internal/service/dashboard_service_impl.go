package service

import (
	"context"
	"log/slog"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// DashboardServiceImpl は DashboardService の実装
type DashboardServiceImpl struct {
	feedbackRepo repository.FeedbackRepository
	bookmarkRepo repository.BookmarkRepository
}

// NewDashboardService は DashboardServiceImpl を生成する（DI: 各リポジトリを注入）
func NewDashboardService(feedbackRepo repository.FeedbackRepository, bookmarkRepo repository.BookmarkRepository) DashboardService {
	return &DashboardServiceImpl{feedbackRepo: feedbackRepo, bookmarkRepo: bookmarkRepo}
}

// StatsForUser はユーザーの活動統計を集計して返す。
// 個別の集計に失敗してもゼロ値で継続し、部分的な統計を返す
func (s *DashboardServiceImpl) StatsForUser(ctx context.Context, userID string) (*model.UserDashboardStats, error) {
	stats := &model.UserDashboardStats{}

	count, avg, err := s.feedbackRepo.StatsByUser(ctx, userID)
	if err != nil {
		slog.Error("aggregate feedback stats failed", "user_id", userID, "error", err)
	} else {
		stats.FeedbackSubmitted = count
		stats.AverageRating = avg
	}

	projects, err := s.bookmarkRepo.CountProjectsByUser(ctx, userID)
	if err != nil {
		slog.Error("count bookmarked projects failed", "user_id", userID, "error", err)
	} else {
		stats.BookmarkedProjects = projects
	}

	news, err := s.bookmarkRepo.CountNewsByUser(ctx, userID)
	if err != nil {
		slog.Error("count bookmarked news failed", "user_id", userID, "error", err)
	} else {
		stats.BookmarkedNews = news
	}

	return stats, nil
}
