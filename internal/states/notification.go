package states

import (
	"context"

	"project-manager-backend/internal/domain"
	"project-manager-backend/internal/logger"
	"project-manager-backend/internal/repository"
)

// NotificationStatesManager owns every notification state change. Callers
// never write Notification.State themselves; they ask the manager to advance
// to an explicit target, or pass nil to take the next step in the lifecycle.
type NotificationStatesManager interface {
	ChangeNotificationState(ctx context.Context, note *domain.Notification, target *domain.NotificationState) (bool, error)
}

// stateRank orders the lifecycle CREATED -> SENT -> READ. Transitions only
// move forward; READ is terminal.
var stateRank = map[domain.NotificationState]int{
	domain.NotificationStateCreated: 0,
	domain.NotificationStateSent:    1,
	domain.NotificationStateRead:    2,
}

type notificationStatesManager struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationStatesManager(noteRepo repository.NotificationRepository) NotificationStatesManager {
	return &notificationStatesManager{noteRepo: noteRepo}
}

// ChangeNotificationState advances note to target, or to the next lifecycle
// state when target is nil. The new state is persisted before the in-memory
// copy is updated. Returns false without error when the requested transition
// is not a forward move.
func (m *notificationStatesManager) ChangeNotificationState(ctx context.Context, note *domain.Notification, target *domain.NotificationState) (bool, error) {
	next, ok := m.resolveTarget(note.State, target)
	if !ok {
		logger.Warn("Rejected notification state transition",
			"notificationID", note.ID, "from", note.State)
		return false, nil
	}

	if err := m.noteRepo.UpdateState(ctx, note.ID, next); err != nil {
		return false, err
	}

	logger.Debug("Notification state changed", "notificationID", note.ID, "from", note.State, "to", next)
	note.State = next
	return true, nil
}

func (m *notificationStatesManager) resolveTarget(current domain.NotificationState, target *domain.NotificationState) (domain.NotificationState, bool) {
	currentRank, ok := stateRank[current]
	if !ok {
		return "", false
	}

	if target == nil {
		next, ok := nextState(current)
		return next, ok
	}

	targetRank, ok := stateRank[*target]
	if !ok || targetRank <= currentRank {
		return "", false
	}
	return *target, true
}

func nextState(current domain.NotificationState) (domain.NotificationState, bool) {
	switch current {
	case domain.NotificationStateCreated:
		return domain.NotificationStateSent, true
	case domain.NotificationStateSent:
		return domain.NotificationStateRead, true
	default:
		return "", false
	}
}
