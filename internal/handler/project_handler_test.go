package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
	"github.com/nigeriagovhub/backend/pkg/auth"
)

// ---------------------------------------------------------------------------
// mockProjectService / mockBookmarkService — 各サービスのモック
// ---------------------------------------------------------------------------

type mockProjectService struct {
	listFunc    func(ctx context.Context) ([]*model.Project, error)
	getByIDFunc func(ctx context.Context, id string) (*model.Project, error)
	createFunc  func(ctx context.Context, input model.ProjectInput) (*model.Project, error)
	updateFunc  func(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error)
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockProjectService) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) Create(ctx context.Context, input model.ProjectInput) (*model.Project, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return &model.Project{ID: "p1", Title: input.Title}, nil
}

func (m *mockProjectService) Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return &model.Project{ID: id}, nil
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockBookmarkService struct {
	addProjectFunc       func(ctx context.Context, userID, projectID string) error
	removeProjectFunc    func(ctx context.Context, userID, projectID string) error
	addNewsFunc          func(ctx context.Context, userID, articleID string) error
	removeNewsFunc       func(ctx context.Context, userID, articleID string) error
	isNewsBookmarkedFunc func(ctx context.Context, userID, articleID string) (bool, error)
	listProjectsFunc     func(ctx context.Context, userID string) ([]*model.Project, error)
	listNewsFunc         func(ctx context.Context, userID string) ([]*model.NewsArticle, error)
}

func (m *mockBookmarkService) AddProject(ctx context.Context, userID, projectID string) error {
	if m.addProjectFunc != nil {
		return m.addProjectFunc(ctx, userID, projectID)
	}
	return nil
}

func (m *mockBookmarkService) RemoveProject(ctx context.Context, userID, projectID string) error {
	if m.removeProjectFunc != nil {
		return m.removeProjectFunc(ctx, userID, projectID)
	}
	return nil
}

func (m *mockBookmarkService) AddNews(ctx context.Context, userID, articleID string) error {
	if m.addNewsFunc != nil {
		return m.addNewsFunc(ctx, userID, articleID)
	}
	return nil
}

func (m *mockBookmarkService) RemoveNews(ctx context.Context, userID, articleID string) error {
	if m.removeNewsFunc != nil {
		return m.removeNewsFunc(ctx, userID, articleID)
	}
	return nil
}

func (m *mockBookmarkService) IsNewsBookmarked(ctx context.Context, userID, articleID string) (bool, error) {
	if m.isNewsBookmarkedFunc != nil {
		return m.isNewsBookmarkedFunc(ctx, userID, articleID)
	}
	return false, nil
}

func (m *mockBookmarkService) ListProjects(ctx context.Context, userID string) ([]*model.Project, error) {
	if m.listProjectsFunc != nil {
		return m.listProjectsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockBookmarkService) ListNews(ctx context.Context, userID string) ([]*model.NewsArticle, error) {
	if m.listNewsFunc != nil {
		return m.listNewsFunc(ctx, userID)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestProjectHandler_List_NilBecomesEmptyArray(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, &mockBookmarkService{})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestProjectHandler_Get_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, &mockBookmarkService{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestProjectHandler_Create_MissingTitle(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, &mockBookmarkService{})

	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		strings.NewReader(`{"start_date":"2024-01-10T00:00:00Z"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if got := decodeErrorBody(t, rec); got != "title_required" {
		t.Errorf("unexpected error: %q", got)
	}
}

func TestProjectHandler_Create_MissingStartDate(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, &mockBookmarkService{})

	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		strings.NewReader(`{"title":"Lagos Rail"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if got := decodeErrorBody(t, rec); got != "start_date_required" {
		t.Errorf("unexpected error: %q", got)
	}
}

func TestProjectHandler_Create_Success(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, &mockBookmarkService{})

	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		strings.NewReader(`{"title":"Lagos Rail","start_date":"2024-01-10T00:00:00Z"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var project model.Project
	if err := json.NewDecoder(rec.Body).Decode(&project); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if project.Title != "Lagos Rail" {
		t.Errorf("unexpected project: %+v", project)
	}
}

func TestProjectHandler_Update_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{
		updateFunc: func(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
			return nil, repository.ErrNotFound
		},
	}, &mockBookmarkService{})

	req := httptest.NewRequest(http.MethodPut, "/api/projects/missing", strings.NewReader(`{}`))
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestProjectHandler_Bookmark_RequiresIdentity(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, &mockBookmarkService{})

	req := httptest.NewRequest(http.MethodPost, "/api/projects/p1/bookmark", nil)
	req.SetPathValue("id", "p1")
	rec := httptest.NewRecorder()
	h.Bookmark(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestProjectHandler_Bookmark_Success(t *testing.T) {
	var gotUser, gotProject string
	h := NewProjectHandler(&mockProjectService{}, &mockBookmarkService{
		addProjectFunc: func(ctx context.Context, userID, projectID string) error {
			gotUser, gotProject = userID, projectID
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/projects/p1/bookmark", nil)
	req.SetPathValue("id", "p1")
	req = req.WithContext(auth.WithIdentity(req.Context(), "u1", "user"))
	rec := httptest.NewRecorder()
	h.Bookmark(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotUser != "u1" || gotProject != "p1" {
		t.Errorf("unexpected call: user=%q project=%q", gotUser, gotProject)
	}
}

func TestProjectHandler_Unbookmark_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, &mockBookmarkService{
		removeProjectFunc: func(ctx context.Context, userID, projectID string) error {
			return repository.ErrNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/p1/bookmark", nil)
	req.SetPathValue("id", "p1")
	req = req.WithContext(auth.WithIdentity(req.Context(), "u1", "user"))
	rec := httptest.NewRecorder()
	h.Unbookmark(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
