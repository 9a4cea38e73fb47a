package events

import (
	"context"
	"errors"
	"fmt"

	"project-manager-backend/internal/domain"
	"project-manager-backend/internal/logger"
	"project-manager-backend/internal/service"
	"project-manager-backend/internal/states"
)

// ErrUnknownEventType means an event variant reached the handler without a
// matching branch. That is a programming error, not a runtime condition: a
// new notification type was introduced and this handler was not taught it.
var ErrUnknownEventType = errors.New("unknown notification event type")

// NotificationEventHandler turns a NotificationSendingEvent into a persisted
// notification. It resolves whichever endpoint the event left open, renders
// the message, creates the record, and then advances it through the states
// manager exactly once, in that order.
type NotificationEventHandler struct {
	statesManager  states.NotificationStatesManager
	noteSvc        service.NotificationService
	projectUserSvc service.ProjectUserService
	userSvc        service.UserService
	projectSvc     service.ProjectService
}

func NewNotificationEventHandler(
	statesManager states.NotificationStatesManager,
	noteSvc service.NotificationService,
	projectUserSvc service.ProjectUserService,
	userSvc service.UserService,
	projectSvc service.ProjectService,
) *NotificationEventHandler {
	return &NotificationEventHandler{
		statesManager:  statesManager,
		noteSvc:        noteSvc,
		projectUserSvc: projectUserSvc,
		userSvc:        userSvc,
		projectSvc:     projectSvc,
	}
}

func (h *NotificationEventHandler) Handle(ctx context.Context, event domain.NotificationSendingEvent) error {
	logger.EnterMethod("NotificationEventHandler.Handle", "eventID", event.ID, "type", event.Type, "projectID", event.ProjectID)

	exists, err := h.projectSvc.ExistProject(ctx, event.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to check project existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("project %d does not exist", event.ProjectID)
	}

	note, err := h.buildNotification(ctx, event)
	if err != nil {
		logger.ExitMethodWithError("NotificationEventHandler.Handle", err, "eventID", event.ID)
		return err
	}

	if err := h.noteSvc.Create(ctx, note); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	if _, err := h.statesManager.ChangeNotificationState(ctx, note, nil); err != nil {
		return fmt.Errorf("failed to change notification state: %w", err)
	}

	logger.ExitMethod("NotificationEventHandler.Handle", "eventID", event.ID, "notificationID", note.ID)
	return nil
}

func (h *NotificationEventHandler) buildNotification(ctx context.Context, event domain.NotificationSendingEvent) (*domain.Notification, error) {
	switch event.Type {
	case domain.NotificationTypeJoinProject:
		adminID, err := h.projectUserSvc.GetAdminID(ctx, event.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to get project admin: %w", err)
		}
		projectName, err := h.projectSvc.GetProjectName(ctx, event.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to get project name: %w", err)
		}
		return &domain.Notification{
			RecipientID: adminID,
			ProjectID:   event.ProjectID,
			Title:       "New join request",
			Message:     fmt.Sprintf("User %s requests to join project %q.", event.SenderID, projectName),
			Type:        event.Type,
			State:       domain.NotificationStateCreated,
		}, nil

	case domain.NotificationTypeAcceptJoin:
		user, err := h.userSvc.FindByID(ctx, event.RecipientID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve recipient: %w", err)
		}
		projectName, err := h.projectSvc.GetProjectName(ctx, event.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to get project name: %w", err)
		}
		return &domain.Notification{
			RecipientID: user.ID,
			ProjectID:   event.ProjectID,
			Title:       "Join request accepted",
			Message:     fmt.Sprintf("%s, your request to join project %q has been accepted.", user.Name, projectName),
			Type:        event.Type,
			State:       domain.NotificationStateCreated,
		}, nil

	default:
		return nil, ErrUnknownEventType
	}
}
