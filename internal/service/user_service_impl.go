package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nigeriagovhub/backend/internal/mapper"
	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// UserServiceImpl は UserService の実装
type UserServiceImpl struct {
	userRepo repository.UserRepository
}

// NewUserService は UserServiceImpl を生成する（DI: UserRepository を注入）
func NewUserService(userRepo repository.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetByID は ID でユーザーを取得する
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// List はユーザー一覧を返す（ストア障害時は空一覧へ縮退）
func (s *UserServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		slog.Error("list users failed, degrading to empty", "error", err)
		return []*model.User{}, nil
	}
	return users, nil
}

// UpdateName は表示名を更新する
func (s *UserServiceImpl) UpdateName(ctx context.Context, id, name string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &mapper.ValidationError{Entity: "user", ID: id, Field: "name"}
	}
	return s.userRepo.UpdateName(ctx, id, name)
}

// Delete はユーザーと関連データを削除する
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
