package service

import (
	"context"
	"fmt"

	"project-manager-backend/internal/domain"
	"project-manager-backend/internal/repository"
)

type projectUserService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectUserService(projectRepo repository.ProjectRepository) ProjectUserService {
	return &projectUserService{projectRepo: projectRepo}
}

func (s *projectUserService) IsUserInProject(ctx context.Context, userID string, projectID int32) (bool, error) {
	return s.projectRepo.IsUserInProject(ctx, userID, projectID)
}

func (s *projectUserService) GetAdminID(ctx context.Context, projectID int32) (string, error) {
	return s.projectRepo.GetAdminID(ctx, projectID)
}

func (s *projectUserService) AddUserToProject(ctx context.Context, projectID int32, userID string) error {
	pu := &domain.ProjectUser{
		ProjectID: projectID,
		UserID:    userID,
		Role:      domain.ProjectUserRoleMember,
	}
	if err := s.projectRepo.AddUserToProject(ctx, pu); err != nil {
		return fmt.Errorf("failed to add user to project: %w", err)
	}
	return nil
}
