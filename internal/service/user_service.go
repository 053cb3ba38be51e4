package service

import (
	"context"

	"github.com/nigeriagovhub/backend/internal/model"
)

// UserService はユーザー管理に関するビジネスロジックのインターフェース
type UserService interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	UpdateName(ctx context.Context, id, name string) (*model.User, error)
	Delete(ctx context.Context, id string) error
}
