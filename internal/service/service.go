package service

import (
	"context"

	"project-manager-backend/internal/domain"
)

type ProjectService interface {
	ExistProject(ctx context.Context, projectID int32) (bool, error)
	GetProjectName(ctx context.Context, projectID int32) (string, error)
	CreateProject(ctx context.Context, project *domain.Project) error
}

type ProjectUserService interface {
	IsUserInProject(ctx context.Context, userID string, projectID int32) (bool, error)
	GetAdminID(ctx context.Context, projectID int32) (string, error)
	AddUserToProject(ctx context.Context, projectID int32, userID string) error
}

type UserService interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
}

type JoinProjectService interface {
	// SubmitJoinRequest returns false when the project does not exist and
	// true otherwise, including idempotent resubmission of an already
	// recorded request.
	SubmitJoinRequest(ctx context.Context, projectID int32, userID string) (bool, error)
	AcceptJoinRequest(ctx context.Context, projectID int32, userID string) error
	ListJoinRequests(ctx context.Context, projectID int32) ([]domain.JoinProjectRequest, error)
}

type NotificationService interface {
	Create(ctx context.Context, note *domain.Notification) error
	GetNotifications(ctx context.Context, recipientID string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, recipientID string, notificationID int32) error
}

// EventPublisher is the bus surface the workflow needs: hand an event to
// whatever handlers were registered at startup.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.NotificationSendingEvent) error
}
