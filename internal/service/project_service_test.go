package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nigeriagovhub/backend/internal/mapper"
	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockProjectRepository — ProjectRepository のモック
// ---------------------------------------------------------------------------

type mockProjectRepository struct {
	listFunc    func(ctx context.Context) ([]*model.Project, error)
	getByIDFunc func(ctx context.Context, id string) (*model.Project, error)
	createFunc  func(ctx context.Context, input model.ProjectInput) (*model.Project, error)
	updateFunc  func(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error)
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectRepository) Create(ctx context.Context, input model.ProjectInput) (*model.Project, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return &model.Project{ID: "p1", Title: input.Title}, nil
}

func (m *mockProjectRepository) Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return &model.Project{ID: id}, nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestProjectService_List_DegradesToEmptyOnStoreError(t *testing.T) {
	repo := &mockProjectRepository{
		listFunc: func(ctx context.Context) ([]*model.Project, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewProjectService(repo)

	projects, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if projects == nil || len(projects) != 0 {
		t.Errorf("expected empty slice, got %v", projects)
	}
}

// 行レベルの検証エラーは縮退させず、そのまま上へ返す
func TestProjectService_List_ValidationErrorPropagates(t *testing.T) {
	repo := &mockProjectRepository{
		listFunc: func(ctx context.Context) ([]*model.Project, error) {
			return nil, &mapper.ValidationError{Entity: "project", ID: "p1", Field: "start_date"}
		},
	}
	svc := NewProjectService(repo)

	_, err := svc.List(context.Background())
	var ve *mapper.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestProjectService_GetByID_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &mockProjectRepository{
		getByIDFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return nil, boom
		},
	}
	svc := NewProjectService(repo)

	if _, err := svc.GetByID(context.Background(), "p1"); !errors.Is(err, boom) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestProjectService_Create_SanitizesDescription(t *testing.T) {
	var stored model.ProjectInput
	repo := &mockProjectRepository{
		createFunc: func(ctx context.Context, input model.ProjectInput) (*model.Project, error) {
			stored = input
			return &model.Project{ID: "p1", Title: input.Title}, nil
		},
	}
	svc := NewProjectService(repo)

	_, err := svc.Create(context.Background(), model.ProjectInput{
		Title:       "Lagos Rail",
		Description: `<p>phase one</p><script>alert(1)</script>`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stored.Description, "<script") {
		t.Errorf("description must be sanitized, got %q", stored.Description)
	}
	if !strings.Contains(stored.Description, "phase one") {
		t.Errorf("sanitization must keep safe markup, got %q", stored.Description)
	}
}

func TestProjectService_Update_SanitizesPatchedDescription(t *testing.T) {
	var stored model.ProjectPatch
	repo := &mockProjectRepository{
		updateFunc: func(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
			stored = patch
			return &model.Project{ID: id}, nil
		},
	}
	svc := NewProjectService(repo)

	desc := `ok <iframe src="x"></iframe>`
	_, err := svc.Update(context.Background(), "p1", model.ProjectPatch{Description: &desc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Description == nil {
		t.Fatal("expected description in patch")
	}
	if strings.Contains(*stored.Description, "<iframe") {
		t.Errorf("description must be sanitized, got %q", *stored.Description)
	}
}

// 動画リストのパッチは加工せずそのままリポジトリへ渡す
func TestProjectService_Update_PassesVideosPatchThrough(t *testing.T) {
	var stored model.ProjectPatch
	repo := &mockProjectRepository{
		updateFunc: func(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
			stored = patch
			return &model.Project{ID: id}, nil
		},
	}
	svc := NewProjectService(repo)

	videos := []model.Video{{ID: "v1", Title: "Commissioning", URL: "https://example.com/v1"}}
	_, err := svc.Update(context.Background(), "p1", model.ProjectPatch{
		Videos: model.Some(videos),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.Videos.Set {
		t.Fatal("expected videos patch to reach the repository")
	}
	got := stored.Videos.Ptr()
	if got == nil || len(*got) != 1 || (*got)[0].ID != "v1" {
		t.Errorf("unexpected videos patch: %+v", got)
	}
}

func TestProjectService_Update_NotFoundPropagates(t *testing.T) {
	repo := &mockProjectRepository{
		updateFunc: func(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewProjectService(repo)

	if _, err := svc.Update(context.Background(), "missing", model.ProjectPatch{}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
