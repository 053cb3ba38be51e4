package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nigeriagovhub/backend/internal/catalog"
)

// CatalogHandler は参照カタログ（省庁・州）の HTTP ハンドラ
type CatalogHandler struct{}

// NewCatalogHandler は CatalogHandler を生成する
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Ministries は GET /api/ministries を処理する
func (h *CatalogHandler) Ministries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(catalog.Ministries())
}

// States は GET /api/states を処理する
func (h *CatalogHandler) States(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(catalog.States())
}
