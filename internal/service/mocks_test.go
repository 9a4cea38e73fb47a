package service_test

import (
	"context"

	"project-manager-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) ExistProject(ctx context.Context, projectID int32) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}
func (m *MockProjectService) GetProjectName(ctx context.Context, projectID int32) (string, error) {
	args := m.Called(ctx, projectID)
	return args.String(0), args.Error(1)
}
func (m *MockProjectService) CreateProject(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

// MockProjectUserService
type MockProjectUserService struct {
	mock.Mock
}

func (m *MockProjectUserService) IsUserInProject(ctx context.Context, userID string, projectID int32) (bool, error) {
	args := m.Called(ctx, userID, projectID)
	return args.Bool(0), args.Error(1)
}
func (m *MockProjectUserService) GetAdminID(ctx context.Context, projectID int32) (string, error) {
	args := m.Called(ctx, projectID)
	return args.String(0), args.Error(1)
}
func (m *MockProjectUserService) AddUserToProject(ctx context.Context, projectID int32, userID string) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

// MockJoinRequestRepo
type MockJoinRequestRepo struct {
	mock.Mock
}

func (m *MockJoinRequestRepo) Get(ctx context.Context, projectID int32, userID string) (*domain.JoinProjectRequest, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinProjectRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) Create(ctx context.Context, req *domain.JoinProjectRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) UpdateStatus(ctx context.Context, req *domain.JoinProjectRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) ListByProject(ctx context.Context, projectID int32) ([]domain.JoinProjectRequest, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.JoinProjectRequest), args.Error(1)
}
func (m *MockJoinRequestRepo) DeletePendingBefore(ctx context.Context, cutoff string) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) UpdateState(ctx context.Context, id int32, state domain.NotificationState) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, recipientID string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, recipientID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) GetByID(ctx context.Context, id int32) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) DeleteReadBefore(ctx context.Context, cutoff string) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.NotificationSendingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockStatesManager
type MockStatesManager struct {
	mock.Mock
}

func (m *MockStatesManager) ChangeNotificationState(ctx context.Context, note *domain.Notification, target *domain.NotificationState) (bool, error) {
	args := m.Called(ctx, note, target)
	return args.Bool(0), args.Error(1)
}
