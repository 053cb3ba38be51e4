package service

import (
	"context"
	"log/slog"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// VideoServiceImpl は VideoService の実装
type VideoServiceImpl struct {
	videoRepo repository.VideoRepository
}

// NewVideoService は VideoServiceImpl を生成する（DI: VideoRepository を注入）
func NewVideoService(videoRepo repository.VideoRepository) VideoService {
	return &VideoServiceImpl{videoRepo: videoRepo}
}

// List は動画一覧を返す（ストア障害時は空一覧へ縮退）
func (s *VideoServiceImpl) List(ctx context.Context) ([]*model.Video, error) {
	videos, err := s.videoRepo.List(ctx)
	if err != nil {
		slog.Error("list videos failed, degrading to empty", "error", err)
		return []*model.Video{}, nil
	}
	return videos, nil
}

// GetByID は ID で動画を取得する
func (s *VideoServiceImpl) GetByID(ctx context.Context, id string) (*model.Video, error) {
	return s.videoRepo.GetByID(ctx, id)
}

// Create は動画を作成する
func (s *VideoServiceImpl) Create(ctx context.Context, input model.VideoInput) (*model.Video, error) {
	return s.videoRepo.Create(ctx, input)
}

// Update は動画を部分更新する
func (s *VideoServiceImpl) Update(ctx context.Context, id string, patch model.VideoPatch) (*model.Video, error) {
	return s.videoRepo.Update(ctx, id, patch)
}

// Delete は動画を削除する
func (s *VideoServiceImpl) Delete(ctx context.Context, id string) error {
	return s.videoRepo.Delete(ctx, id)
}
