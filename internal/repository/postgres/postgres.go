package postgres

import (
	"database/sql"

	"project-manager-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProjectRepository
	repository.UserRepository
	repository.JoinRequestRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		ProjectRepository:      NewProjectRepository(db),
		UserRepository:         NewUserRepository(db),
		JoinRequestRepository:  NewJoinRequestRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
