package domain

import "github.com/google/uuid"

// NotificationSendingEvent is the domain event that asks the notification
// pipeline to build and persist a notification. Exactly one of SenderID and
// RecipientID is set, depending on the constructor: JoinProject events know
// who asked to join, AcceptJoin events know who gets the answer. The missing
// endpoint is resolved later by the event handler. Events are transient; they
// exist only on the bus and are never stored.
type NotificationSendingEvent struct {
	ID          string
	SenderID    string
	RecipientID string
	ProjectID   int32
	Type        NotificationType
}

func NewEventWithSender(senderID string, projectID int32, t NotificationType) NotificationSendingEvent {
	return NotificationSendingEvent{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		ProjectID: projectID,
		Type:      t,
	}
}

func NewEventWithRecipient(recipientID string, projectID int32, t NotificationType) NotificationSendingEvent {
	return NotificationSendingEvent{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		ProjectID:   projectID,
		Type:        t,
	}
}
