package postgres

import (
	"context"
	"database/sql"
	"time"

	"project-manager-backend/internal/domain"
	"project-manager-backend/internal/repository"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `INSERT INTO projects (name, admin_id, created_on)
	          VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, project.Name, project.AdminID, time.Now()).Scan(&project.ID)
}

func (r *projectRepository) GetByID(ctx context.Context, id int32) (*domain.Project, error) {
	project := &domain.Project{}
	var createdOn time.Time
	query := `SELECT id, name, admin_id, created_on FROM projects WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&project.ID, &project.Name, &project.AdminID, &createdOn)
	if err != nil {
		return nil, err
	}
	project.CreatedOn = createdOn.Format("2006-01-02")
	return project, nil
}

func (r *projectRepository) Exists(ctx context.Context, id int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *projectRepository) AddUserToProject(ctx context.Context, pu *domain.ProjectUser) error {
	query := `INSERT INTO project_users (project_id, user_id, role, joined_on)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, pu.ProjectID, pu.UserID, pu.Role, time.Now())
	return err
}

func (r *projectRepository) IsUserInProject(ctx context.Context, userID string, projectID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM project_users WHERE user_id = $1 AND project_id = $2)`
	if err := r.db.QueryRowContext(ctx, query, userID, projectID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *projectRepository) GetAdminID(ctx context.Context, projectID int32) (string, error) {
	var adminID string
	query := `SELECT admin_id FROM projects WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(&adminID); err != nil {
		return "", err
	}
	return adminID, nil
}
