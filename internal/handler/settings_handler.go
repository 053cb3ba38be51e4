package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/service"
)

// SettingsHandler はサイト設定の HTTP ハンドラ
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler は SettingsHandler を生成する
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get は GET /api/settings を処理する。設定行が無くても既定値を返す
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		slog.Error("get settings failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(settings)
}

// Update は PUT /api/admin/settings を処理する（管理者のみ）
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.SiteSettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	settings, err := h.settingsService.Update(r.Context(), patch)
	if err != nil {
		slog.Error("update settings failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(settings)
}
