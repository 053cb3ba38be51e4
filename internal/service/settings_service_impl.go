package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// SettingsServiceImpl は SettingsService の実装
type SettingsServiceImpl struct {
	settingsRepo repository.SiteSettingsRepository
}

// NewSettingsService は SettingsServiceImpl を生成する（DI: SiteSettingsRepository を注入）
func NewSettingsService(settingsRepo repository.SiteSettingsRepository) SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// Get はサイト設定を取得する。未登録または取得失敗時は既定値を返す
func (s *SettingsServiceImpl) Get(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Error("get site settings failed, falling back to defaults", "error", err)
		}
		return model.DefaultSiteSettings(time.Now()), nil
	}
	return settings, nil
}

// Update はサイト設定を部分更新する（未登録なら既定値と合成して作成）
func (s *SettingsServiceImpl) Update(ctx context.Context, patch model.SiteSettingsPatch) (*model.SiteSettings, error) {
	return s.settingsRepo.Upsert(ctx, patch)
}
