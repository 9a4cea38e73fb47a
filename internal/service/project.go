package service

import (
	"context"
	"fmt"

	"project-manager-backend/internal/domain"
	"project-manager-backend/internal/repository"
)

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) ExistProject(ctx context.Context, projectID int32) (bool, error) {
	return s.projectRepo.Exists(ctx, projectID)
}

func (s *projectService) GetProjectName(ctx context.Context, projectID int32) (string, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("failed to get project: %w", err)
	}
	return project.Name, nil
}

func (s *projectService) CreateProject(ctx context.Context, project *domain.Project) error {
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}
