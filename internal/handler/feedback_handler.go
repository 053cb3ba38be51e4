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

// FeedbackHandler はフィードバックの HTTP ハンドラ
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler は FeedbackHandler を生成する
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// Submit は POST /api/projects/{id}/feedback を処理する。
// ログイン済みであれば投稿者ユーザーを紐付けるが、匿名でも投稿できる
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	var input model.FeedbackInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if input.UserName == "" || input.Comment == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "user_name_and_comment_required"})
		return
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_rating"})
		return
	}

	if userID, ok := auth.UserIDFromContext(r.Context()); ok {
		input.UserID = &userID
	}

	feedback, err := h.feedbackService.Submit(r.Context(), projectID, input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "project_not_found"})
			return
		}
		slog.Error("submit feedback failed", "error", err, "project_id", projectID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(feedback)
}

// AdminList は GET /api/admin/feedback を処理する（管理者のみ）
func (h *FeedbackHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	items, err := h.feedbackService.ListAll(r.Context())
	if err != nil {
		slog.Error("list all feedback failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}

	if items == nil {
		items = []*model.FeedbackWithProject{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}

// MyFeedback は GET /api/me/feedback を処理する（認証必須）
func (h *FeedbackHandler) MyFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	items, err := h.feedbackService.ListByUser(r.Context(), userID)
	if err != nil {
		slog.Error("list user feedback failed", "error", err, "user_id", userID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}

	if items == nil {
		items = []*model.FeedbackWithProject{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}
