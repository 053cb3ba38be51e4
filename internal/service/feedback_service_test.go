package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockFeedbackRepository — FeedbackRepository のモック
// ---------------------------------------------------------------------------

type mockFeedbackRepository struct {
	addFunc                         func(ctx context.Context, projectID string, input model.FeedbackInput) (*model.Feedback, error)
	listByProjectFunc               func(ctx context.Context, projectID string) ([]*model.Feedback, error)
	listAllWithProjectTitlesFunc    func(ctx context.Context) ([]*model.FeedbackWithProject, error)
	listByUserWithProjectTitlesFunc func(ctx context.Context, userID string) ([]*model.FeedbackWithProject, error)
	statsByUserFunc                 func(ctx context.Context, userID string) (int, float64, error)
}

func (m *mockFeedbackRepository) Add(ctx context.Context, projectID string, input model.FeedbackInput) (*model.Feedback, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, projectID, input)
	}
	return &model.Feedback{ID: "f1", ProjectID: projectID, UserName: input.UserName, Comment: input.Comment}, nil
}

func (m *mockFeedbackRepository) ListByProject(ctx context.Context, projectID string) ([]*model.Feedback, error) {
	if m.listByProjectFunc != nil {
		return m.listByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) ListAllWithProjectTitles(ctx context.Context) ([]*model.FeedbackWithProject, error) {
	if m.listAllWithProjectTitlesFunc != nil {
		return m.listAllWithProjectTitlesFunc(ctx)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) ListByUserWithProjectTitles(ctx context.Context, userID string) ([]*model.FeedbackWithProject, error) {
	if m.listByUserWithProjectTitlesFunc != nil {
		return m.listByUserWithProjectTitlesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) StatsByUser(ctx context.Context, userID string) (int, float64, error) {
	if m.statsByUserFunc != nil {
		return m.statsByUserFunc(ctx, userID)
	}
	return 0, 0, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestFeedbackService_Submit_SanitizesComment(t *testing.T) {
	var stored model.FeedbackInput
	repo := &mockFeedbackRepository{
		addFunc: func(ctx context.Context, projectID string, input model.FeedbackInput) (*model.Feedback, error) {
			stored = input
			return &model.Feedback{ID: "f1", ProjectID: projectID}, nil
		},
	}
	svc := NewFeedbackService(repo)

	_, err := svc.Submit(context.Background(), "p1", model.FeedbackInput{
		UserName: "Ada",
		Comment:  `great <script>alert(1)</script> work`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stored.Comment, "<script") {
		t.Errorf("comment must be sanitized before storage, got %q", stored.Comment)
	}
	if !strings.Contains(stored.Comment, "great") || !strings.Contains(stored.Comment, "work") {
		t.Errorf("sanitization must keep harmless text, got %q", stored.Comment)
	}
}

func TestFeedbackService_Submit_UnknownProjectPropagates(t *testing.T) {
	repo := &mockFeedbackRepository{
		addFunc: func(ctx context.Context, projectID string, input model.FeedbackInput) (*model.Feedback, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewFeedbackService(repo)

	_, err := svc.Submit(context.Background(), "missing", model.FeedbackInput{UserName: "Ada", Comment: "hi"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFeedbackService_ListAll_DegradesToEmptyOnStoreError(t *testing.T) {
	repo := &mockFeedbackRepository{
		listAllWithProjectTitlesFunc: func(ctx context.Context) ([]*model.FeedbackWithProject, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewFeedbackService(repo)

	list, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty slice, got %v", list)
	}
}

func TestFeedbackService_ListByUser_ReturnsUserFeedback(t *testing.T) {
	repo := &mockFeedbackRepository{
		listByUserWithProjectTitlesFunc: func(ctx context.Context, userID string) ([]*model.FeedbackWithProject, error) {
			if userID != "u1" {
				t.Errorf("expected user u1, got %q", userID)
			}
			return []*model.FeedbackWithProject{
				{Feedback: model.Feedback{ID: "f1"}, ProjectTitle: "Lagos Rail"},
			}, nil
		},
	}
	svc := NewFeedbackService(repo)

	list, err := svc.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ProjectTitle != "Lagos Rail" {
		t.Errorf("unexpected result: %v", list)
	}
}
