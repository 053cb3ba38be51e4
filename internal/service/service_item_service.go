package service

import (
	"context"

	"github.com/nigeriagovhub/backend/internal/model"
)

// ServiceItemService は行政サービスに関するビジネスロジックのインターフェース
type ServiceItemService interface {
	List(ctx context.Context) ([]*model.ServiceItem, error)
	GetByID(ctx context.Context, id string) (*model.ServiceItem, error)
	GetBySlug(ctx context.Context, slug string) (*model.ServiceItem, error)
	Create(ctx context.Context, input model.ServiceItemInput) (*model.ServiceItem, error)
	Update(ctx context.Context, id string, patch model.ServiceItemPatch) (*model.ServiceItem, error)
	Delete(ctx context.Context, id string) error
}
