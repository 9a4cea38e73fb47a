package repository

import (
	"context"

	"project-manager-backend/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int32) (*domain.Project, error)
	Exists(ctx context.Context, id int32) (bool, error)

	// Project membership
	AddUserToProject(ctx context.Context, pu *domain.ProjectUser) error
	IsUserInProject(ctx context.Context, userID string, projectID int32) (bool, error)
	GetAdminID(ctx context.Context, projectID int32) (string, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type JoinRequestRepository interface {
	// Get returns nil without error when no request exists for the key.
	Get(ctx context.Context, projectID int32, userID string) (*domain.JoinProjectRequest, error)
	Create(ctx context.Context, req *domain.JoinProjectRequest) error
	UpdateStatus(ctx context.Context, req *domain.JoinProjectRequest) error
	ListByProject(ctx context.Context, projectID int32) ([]domain.JoinProjectRequest, error)
	DeletePendingBefore(ctx context.Context, cutoff string) (int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	UpdateState(ctx context.Context, id int32, state domain.NotificationState) error
	List(ctx context.Context, recipientID string, limit, offset int32) ([]domain.Notification, int32, error)
	GetByID(ctx context.Context, id int32) (*domain.Notification, error)
	DeleteReadBefore(ctx context.Context, cutoff string) (int64, error)
}
