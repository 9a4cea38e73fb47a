package domain

type JoinProjectRequestStatus string

const (
	JoinProjectRequestStatusPending  JoinProjectRequestStatus = "PENDING"
	JoinProjectRequestStatusAccepted JoinProjectRequestStatus = "ACCEPTED"
)

// JoinProjectRequest records a user's attempt to become a member of a
// project. The natural key is (ProjectID, UserID); the join_requests table
// enforces it with a unique constraint, which is what makes concurrent
// submissions for the same key safe.
type JoinProjectRequest struct {
	ProjectID int32                    `json:"project_id"`
	UserID    string                   `json:"user_id"`
	Status    JoinProjectRequestStatus `json:"status"`
	CreatedOn string                   `json:"created_on"`
}

func NewJoinProjectRequest(projectID int32, userID string, status JoinProjectRequestStatus) *JoinProjectRequest {
	return &JoinProjectRequest{
		ProjectID: projectID,
		UserID:    userID,
		Status:    status,
	}
}
