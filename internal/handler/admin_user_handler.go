package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
	"github.com/nigeriagovhub/backend/internal/service"
	"github.com/nigeriagovhub/backend/pkg/auth"
)

// AdminUserHandler は管理者向けユーザー管理の HTTP ハンドラ
type AdminUserHandler struct {
	userService service.UserService
}

// NewAdminUserHandler は AdminUserHandler を生成する
func NewAdminUserHandler(userService service.UserService) *AdminUserHandler {
	return &AdminUserHandler{userService: userService}
}

// List は GET /api/admin/users を処理する（管理者のみ）
func (h *AdminUserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}

	if users == nil {
		users = []*model.User{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(users)
}

// Delete は DELETE /api/admin/users/{id} を処理する（管理者のみ）。
// 自分自身の削除は拒否する。関連データは同一トランザクションで整理される
func (h *AdminUserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := r.PathValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	if adminID, ok := auth.UserIDFromContext(r.Context()); ok && adminID == id {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "cannot_delete_self"})
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		slog.Error("delete user failed", "error", err, "user_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
