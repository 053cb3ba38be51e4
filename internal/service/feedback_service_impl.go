package service

import (
	"context"
	"log/slog"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
	"github.com/nigeriagovhub/backend/internal/sanitize"
)

// FeedbackServiceImpl は FeedbackService の実装
type FeedbackServiceImpl struct {
	feedbackRepo repository.FeedbackRepository
}

// NewFeedbackService は FeedbackServiceImpl を生成する（DI: FeedbackRepository を注入）
func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &FeedbackServiceImpl{feedbackRepo: feedbackRepo}
}

// Submit はプロジェクトへフィードバックを投稿する。コメントは保存前に無害化する。
func (s *FeedbackServiceImpl) Submit(ctx context.Context, projectID string, input model.FeedbackInput) (*model.Feedback, error) {
	input.Comment = sanitize.RichText(input.Comment)
	return s.feedbackRepo.Add(ctx, projectID, input)
}

// ListAll は全フィードバックをプロジェクトタイトル付きで返す（ストア障害時は空一覧）
func (s *FeedbackServiceImpl) ListAll(ctx context.Context) ([]*model.FeedbackWithProject, error) {
	list, err := s.feedbackRepo.ListAllWithProjectTitles(ctx)
	if err != nil {
		slog.Error("list feedback failed, degrading to empty", "error", err)
		return []*model.FeedbackWithProject{}, nil
	}
	return list, nil
}

// ListByUser はユーザーのフィードバック一覧を返す（ストア障害時は空一覧）
func (s *FeedbackServiceImpl) ListByUser(ctx context.Context, userID string) ([]*model.FeedbackWithProject, error) {
	list, err := s.feedbackRepo.ListByUserWithProjectTitles(ctx, userID)
	if err != nil {
		slog.Error("list user feedback failed, degrading to empty", "error", err, "user_id", userID)
		return []*model.FeedbackWithProject{}, nil
	}
	return list, nil
}
