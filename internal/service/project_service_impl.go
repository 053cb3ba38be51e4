package service

import (
	"context"
	"log/slog"

	"github.com/nigeriagovhub/backend/internal/model"
	"github.com/nigeriagovhub/backend/internal/repository"
	"github.com/nigeriagovhub/backend/internal/sanitize"
)

// ProjectServiceImpl は ProjectService の実装
type ProjectServiceImpl struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService は ProjectServiceImpl を生成する（DI: ProjectRepository を注入）
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

// List はプロジェクト一覧を返す。ストア障害時は空一覧へ縮退する
// （一覧ページはクラッシュではなく「0 件」として劣化させる）。
func (s *ProjectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		if !degradable(err) {
			return nil, err
		}
		slog.Error("list projects failed, degrading to empty", "error", err)
		return []*model.Project{}, nil
	}
	return projects, nil
}

// GetByID は ID でプロジェクトを取得する。ストア障害はそのまま伝播する
// （詳細ページは not found とストア障害を区別する必要がある）。
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// Create はプロジェクトを作成する。説明文は保存前に無害化する。
func (s *ProjectServiceImpl) Create(ctx context.Context, input model.ProjectInput) (*model.Project, error) {
	input.Description = sanitize.RichText(input.Description)
	return s.projectRepo.Create(ctx, input)
}

// Update はプロジェクトを部分更新する
func (s *ProjectServiceImpl) Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
	if patch.Description != nil {
		clean := sanitize.RichText(*patch.Description)
		patch.Description = &clean
	}
	return s.projectRepo.Update(ctx, id, patch)
}

// Delete はプロジェクトを削除する（依存行のカスケード削除はリポジトリの責務）
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}
