package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockSiteSettingsRepository — SiteSettingsRepository のモック
// ---------------------------------------------------------------------------

type mockSiteSettingsRepository struct {
	getFunc    func(ctx context.Context) (*model.SiteSettings, error)
	upsertFunc func(ctx context.Context, patch model.SiteSettingsPatch) (*model.SiteSettings, error)
}

func (m *mockSiteSettingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return nil, repository.ErrNotFound
}

func (m *mockSiteSettingsRepository) Upsert(ctx context.Context, patch model.SiteSettingsPatch) (*model.SiteSettings, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, patch)
	}
	return &model.SiteSettings{ID: model.SiteSettingsID}, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestSettingsService_Get_MissingRowFallsBackToDefaults(t *testing.T) {
	svc := NewSettingsService(&mockSiteSettingsRepository{})

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.ID != model.SiteSettingsID {
		t.Errorf("expected id %q, got %q", model.SiteSettingsID, settings.ID)
	}
	if settings.SiteName == nil || *settings.SiteName == "" {
		t.Error("defaults must carry a site name")
	}
	if settings.MaintenanceMode {
		t.Error("defaults must not enable maintenance mode")
	}
}

func TestSettingsService_Get_StoreErrorFallsBackToDefaults(t *testing.T) {
	repo := &mockSiteSettingsRepository{
		getFunc: func(ctx context.Context) (*model.SiteSettings, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewSettingsService(repo)

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.ID != model.SiteSettingsID {
		t.Errorf("expected default settings, got %+v", settings)
	}
}

func TestSettingsService_Get_ReturnsStoredSettings(t *testing.T) {
	name := "My Portal"
	repo := &mockSiteSettingsRepository{
		getFunc: func(ctx context.Context) (*model.SiteSettings, error) {
			return &model.SiteSettings{ID: model.SiteSettingsID, SiteName: &name, MaintenanceMode: true}, nil
		},
	}
	svc := NewSettingsService(repo)

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.SiteName == nil || *settings.SiteName != "My Portal" {
		t.Errorf("unexpected site name: %+v", settings.SiteName)
	}
	if !settings.MaintenanceMode {
		t.Error("expected maintenance mode on")
	}
}

func TestSettingsService_Update_PassesPatchThrough(t *testing.T) {
	var gotPatch model.SiteSettingsPatch
	repo := &mockSiteSettingsRepository{
		upsertFunc: func(ctx context.Context, patch model.SiteSettingsPatch) (*model.SiteSettings, error) {
			gotPatch = patch
			return &model.SiteSettings{ID: model.SiteSettingsID, SiteName: patch.SiteName}, nil
		},
	}
	svc := NewSettingsService(repo)

	name := "Renamed"
	settings, err := svc.Update(context.Background(), model.SiteSettingsPatch{SiteName: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPatch.SiteName == nil || *gotPatch.SiteName != "Renamed" {
		t.Errorf("patch not passed through: %+v", gotPatch)
	}
	if settings.SiteName == nil || *settings.SiteName != "Renamed" {
		t.Errorf("unexpected result: %+v", settings)
	}
}
