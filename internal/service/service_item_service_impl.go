package service

import (
	"context"
	"log/slog"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// ServiceItemServiceImpl は ServiceItemService の実装
type ServiceItemServiceImpl struct {
	serviceRepo repository.ServiceRepository
}

// NewServiceItemService は ServiceItemServiceImpl を生成する（DI: ServiceRepository を注入）
func NewServiceItemService(serviceRepo repository.ServiceRepository) ServiceItemService {
	return &ServiceItemServiceImpl{serviceRepo: serviceRepo}
}

// List はサービス一覧を返す（ストア障害時は空一覧へ縮退）
func (s *ServiceItemServiceImpl) List(ctx context.Context) ([]*model.ServiceItem, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		slog.Error("list services failed, degrading to empty", "error", err)
		return []*model.ServiceItem{}, nil
	}
	return services, nil
}

// GetByID は ID でサービスを取得する
func (s *ServiceItemServiceImpl) GetByID(ctx context.Context, id string) (*model.ServiceItem, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

// GetBySlug はスラッグでサービスを取得する
func (s *ServiceItemServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.ServiceItem, error) {
	return s.serviceRepo.GetBySlug(ctx, slug)
}

// Create はサービスを作成する
func (s *ServiceItemServiceImpl) Create(ctx context.Context, input model.ServiceItemInput) (*model.ServiceItem, error) {
	return s.serviceRepo.Create(ctx, input)
}

// Update はサービスを部分更新する
func (s *ServiceItemServiceImpl) Update(ctx context.Context, id string, patch model.ServiceItemPatch) (*model.ServiceItem, error) {
	return s.serviceRepo.Update(ctx, id, patch)
}

// Delete はサービスを削除する
func (s *ServiceItemServiceImpl) Delete(ctx context.Context, id string) error {
	return s.serviceRepo.Delete(ctx, id)
}
