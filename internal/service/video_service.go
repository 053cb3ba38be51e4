package service

import (
	"context"

	"github.com/nigeriagovhub/backend/internal/model"
)

// VideoService は動画に関するビジネスロジックのインターフェース
type VideoService interface {
	List(ctx context.Context) ([]*model.Video, error)
	GetByID(ctx context.Context, id string) (*model.Video, error)
	Create(ctx context.Context, input model.VideoInput) (*model.Video, error)
	Update(ctx context.Context, id string, patch model.VideoPatch) (*model.Video, error)
	Delete(ctx context.Context, id string) error
}
