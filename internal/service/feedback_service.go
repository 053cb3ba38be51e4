package service

import (
	"context"

	"github.com/nigeriagovhub/backend/internal/model"
)

// FeedbackService はフィードバックに関するビジネスロジックのインターフェース
type FeedbackService interface {
	Submit(ctx context.Context, projectID string, input model.FeedbackInput) (*model.Feedback, error)
	ListAll(ctx context.Context) ([]*model.FeedbackWithProject, error)
	ListByUser(ctx context.Context, userID string) ([]*model.FeedbackWithProject, error)
}
