package service

import (
	"context"
	"errors"
	"fmt"

	"project-manager-backend/internal/domain"
	"project-manager-backend/internal/repository"
	"project-manager-backend/internal/states"
)

var ErrNotificationAccessDenied = errors.New("notification does not belong to user")

type notificationService struct {
	noteRepo      repository.NotificationRepository
	statesManager states.NotificationStatesManager
}

func NewNotificationService(noteRepo repository.NotificationRepository, statesManager states.NotificationStatesManager) NotificationService {
	return &notificationService{noteRepo: noteRepo, statesManager: statesManager}
}

func (s *notificationService) Create(ctx context.Context, note *domain.Notification) error {
	return s.noteRepo.Create(ctx, note)
}

func (s *notificationService) GetNotifications(ctx context.Context, recipientID string, page, pageSize int32) ([]domain.Notification, int32, error) {
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, recipientID, pageSize, offset)
}

// MarkAsRead drives the notification to the read state through the states
// manager rather than flipping the column directly.
func (s *notificationService) MarkAsRead(ctx context.Context, recipientID string, notificationID int32) error {
	note, err := s.noteRepo.GetByID(ctx, notificationID)
	if err != nil {
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if note.RecipientID != recipientID {
		return ErrNotificationAccessDenied
	}

	target := domain.NotificationStateRead
	changed, err := s.statesManager.ChangeNotificationState(ctx, note, &target)
	if err != nil {
		return fmt.Errorf("failed to change notification state: %w", err)
	}
	if !changed {
		// Already read; nothing to do.
		return nil
	}
	return nil
}
