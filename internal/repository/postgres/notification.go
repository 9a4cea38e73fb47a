package postgres

import (
	"context"
	"database/sql"
	"time"

	"project-manager-backend/internal/domain"
	"project-manager-backend/internal/logger"
	"project-manager-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	logger.EnterMethod("notificationRepository.Create", "recipientID", n.RecipientID, "projectID", n.ProjectID, "type", n.Type)

	query := `INSERT INTO notifications (recipient_id, project_id, title, message, type, state, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	logger.DatabaseCall("INSERT", "notifications", "recipientID", n.RecipientID, "projectID", n.ProjectID)

	err := r.db.QueryRowContext(ctx, query, n.RecipientID, n.ProjectID, n.Title, n.Message, n.Type, n.State, time.Now()).Scan(&n.ID)
	logger.DatabaseResult("INSERT", 1, err, "notificationID", n.ID)

	if err != nil {
		logger.ExitMethodWithError("notificationRepository.Create", err, "recipientID", n.RecipientID)
	} else {
		logger.ExitMethod("notificationRepository.Create", "notificationID", n.ID)
	}
	return err
}

func (r *notificationRepository) UpdateState(ctx context.Context, id int32, state domain.NotificationState) error {
	query := `UPDATE notifications SET state = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, state, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *notificationRepository) List(ctx context.Context, recipientID string, limit, offset int32) ([]domain.Notification, int32, error) {
	query := `SELECT id, recipient_id, project_id, title, message, type, state, created_on
	          FROM notifications WHERE recipient_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	countQuery := `SELECT count(*) FROM notifications WHERE recipient_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, recipientID).Scan(&count); err != nil {
		return nil, 0, err
	}

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var createdOn time.Time
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.ProjectID, &n.Title, &n.Message, &n.Type, &n.State, &createdOn); err != nil {
			return nil, 0, err
		}
		n.CreatedOn = createdOn.Format("2006-01-02")
		notes = append(notes, n)
	}
	return notes, count, rows.Err()
}

func (r *notificationRepository) GetByID(ctx context.Context, id int32) (*domain.Notification, error) {
	n := &domain.Notification{}
	var createdOn time.Time
	query := `SELECT id, recipient_id, project_id, title, message, type, state, created_on
	          FROM notifications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.RecipientID, &n.ProjectID, &n.Title, &n.Message, &n.Type, &n.State, &createdOn)
	if err != nil {
		return nil, err
	}
	n.CreatedOn = createdOn.Format("2006-01-02")
	return n, nil
}

func (r *notificationRepository) DeleteReadBefore(ctx context.Context, cutoff string) (int64, error) {
	query := `DELETE FROM notifications WHERE state = $1 AND created_on < $2`
	result, err := r.db.ExecContext(ctx, query, domain.NotificationStateRead, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
