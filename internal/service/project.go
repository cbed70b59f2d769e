package service

import (
	"context"

	"github.com/ArturCreativeLab/studio-api/internal/core"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
)

// ProjectServiceOptions groups dependencies for ProjectService.
type ProjectServiceOptions struct {
	Projects core.ProjectRepository
}

// ProjectService orchestrates portfolio project CRUD.
type ProjectService struct {
	projects core.ProjectRepository
}

// NewProjectService constructs a new ProjectService.
func NewProjectService(opts ProjectServiceOptions) *ProjectService {
	return &ProjectService{projects: opts.Projects}
}

// Create creates a project.
func (s *ProjectService) Create(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error) {
	return s.projects.Create(ctx, req)
}

// GetByID retrieves a project by ID.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]*model.Project, error) {
	return s.projects.List(ctx)
}

// Delete deletes a project. Returns false when no row matched.
func (s *ProjectService) Delete(ctx context.Context, id string) (bool, error) {
	return s.projects.Delete(ctx, id)
}
