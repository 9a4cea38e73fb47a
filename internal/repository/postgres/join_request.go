package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"project-manager-backend/internal/domain"
	"project-manager-backend/internal/repository"
)

type joinRequestRepository struct {
	db *sql.DB
}

// NewJoinRequestRepository returns the join_requests adapter. The table
// carries UNIQUE (project_id, user_id); callers rely on that constraint to
// serialize concurrent submissions for the same key.
func NewJoinRequestRepository(db *sql.DB) repository.JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) Get(ctx context.Context, projectID int32, userID string) (*domain.JoinProjectRequest, error) {
	req := &domain.JoinProjectRequest{}
	var createdOn time.Time
	query := `SELECT project_id, user_id, status, created_on FROM join_requests
	          WHERE project_id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, projectID, userID).Scan(&req.ProjectID, &req.UserID, &req.Status, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	req.CreatedOn = createdOn.Format("2006-01-02")
	return req, nil
}

func (r *joinRequestRepository) Create(ctx context.Context, req *domain.JoinProjectRequest) error {
	query := `INSERT INTO join_requests (project_id, user_id, status, created_on)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, req.ProjectID, req.UserID, req.Status, time.Now())
	return err
}

func (r *joinRequestRepository) UpdateStatus(ctx context.Context, req *domain.JoinProjectRequest) error {
	query := `UPDATE join_requests SET status = $1 WHERE project_id = $2 AND user_id = $3`
	result, err := r.db.ExecContext(ctx, query, req.Status, req.ProjectID, req.UserID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("join request not found")
	}
	return nil
}

func (r *joinRequestRepository) ListByProject(ctx context.Context, projectID int32) ([]domain.JoinProjectRequest, error) {
	query := `SELECT project_id, user_id, status, created_on FROM join_requests WHERE project_id = $1`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.JoinProjectRequest
	for rows.Next() {
		var req domain.JoinProjectRequest
		var createdOn time.Time
		if err := rows.Scan(&req.ProjectID, &req.UserID, &req.Status, &createdOn); err != nil {
			return nil, err
		}
		req.CreatedOn = createdOn.Format("2006-01-02")
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *joinRequestRepository) DeletePendingBefore(ctx context.Context, cutoff string) (int64, error) {
	query := `DELETE FROM join_requests WHERE status = $1 AND created_on < $2`
	result, err := r.db.ExecContext(ctx, query, domain.JoinProjectRequestStatusPending, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
