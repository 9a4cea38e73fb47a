package postgres

import (
	"context"
	"database/sql"
	"time"

	"project-manager-backend/internal/domain"
	"project-manager-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, email, created_on) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, time.Now())
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user := &domain.User{}
	var createdOn time.Time
	query := `SELECT id, name, email, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &createdOn)
	if err != nil {
		return nil, err
	}
	user.CreatedOn = createdOn.Format("2006-01-02")
	return user, nil
}
