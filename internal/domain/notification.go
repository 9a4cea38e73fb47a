package domain

type NotificationType string

const (
	NotificationTypeJoinProject NotificationType = "JOIN_PROJECT"
	NotificationTypeAcceptJoin  NotificationType = "ACCEPT_JOIN"
)

type NotificationState string

const (
	NotificationStateCreated NotificationState = "CREATED"
	NotificationStateSent    NotificationState = "SENT"
	NotificationStateRead    NotificationState = "READ"
)

// Notification is a persisted message addressed to a single user, derived
// from a domain event. State moves only through the states manager, never by
// writing the field directly.
type Notification struct {
	ID          int32             `json:"id"`
	RecipientID string            `json:"recipient_id"`
	ProjectID   int32             `json:"project_id"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	Type        NotificationType  `json:"type"`
	State       NotificationState `json:"state"`
	CreatedOn   string            `json:"created_on"`
}
