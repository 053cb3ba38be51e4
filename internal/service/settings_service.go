package service

import (
	"context"

	"github.com/nigeriagovhub/backend/internal/model"
)

// SettingsService はサイト設定に関するビジネスロジックのインターフェース
type SettingsService interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, patch model.SiteSettingsPatch) (*model.SiteSettings, error)
}
