package service

import (
	"context"
	"errors"
	"fmt"

	"project-manager-backend/internal/domain"
	"project-manager-backend/internal/logger"
	"project-manager-backend/internal/repository"
)

var ErrJoinRequestNotFound = errors.New("join request not found")

type joinProjectService struct {
	projectSvc     ProjectService
	projectUserSvc ProjectUserService
	reqRepo        repository.JoinRequestRepository
	publisher      EventPublisher
}

func NewJoinProjectService(
	projectSvc ProjectService,
	projectUserSvc ProjectUserService,
	reqRepo repository.JoinRequestRepository,
	publisher EventPublisher,
) JoinProjectService {
	return &joinProjectService{
		projectSvc:     projectSvc,
		projectUserSvc: projectUserSvc,
		reqRepo:        reqRepo,
		publisher:      publisher,
	}
}

// SubmitJoinRequest decides what a join attempt means given current state.
// The check order is the contract: project existence first, then an existing
// request of either status (which suppresses everything else), then
// membership. Only a brand-new pending request publishes a JoinProject event;
// a member resubmitting gets an accepted request immediately and no event.
func (s *joinProjectService) SubmitJoinRequest(ctx context.Context, projectID int32, userID string) (bool, error) {
	logger.EnterMethod("joinProjectService.SubmitJoinRequest", "projectID", projectID, "userID", userID)

	exists, err := s.projectSvc.ExistProject(ctx, projectID)
	if err != nil {
		return false, fmt.Errorf("failed to check project existence: %w", err)
	}
	if !exists {
		logger.Info("Join request rejected, project does not exist", "projectID", projectID, "userID", userID)
		return false, nil
	}

	existing, err := s.reqRepo.Get(ctx, projectID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get join request: %w", err)
	}
	if existing != nil {
		logger.Debug("Join request already submitted", "projectID", projectID, "userID", userID, "status", existing.Status)
		return true, nil
	}

	isMember, err := s.projectUserSvc.IsUserInProject(ctx, userID, projectID)
	if err != nil {
		return false, fmt.Errorf("failed to check project membership: %w", err)
	}

	if isMember {
		// Already a member: record the request as accepted right away,
		// no pending state and no event.
		req := domain.NewJoinProjectRequest(projectID, userID, domain.JoinProjectRequestStatusAccepted)
		if err := s.reqRepo.Create(ctx, req); err != nil {
			return false, fmt.Errorf("failed to create join request: %w", err)
		}
		logger.Info("Join request auto-accepted", "projectID", projectID, "userID", userID)
		return true, nil
	}

	req := domain.NewJoinProjectRequest(projectID, userID, domain.JoinProjectRequestStatusPending)
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return false, fmt.Errorf("failed to create join request: %w", err)
	}

	event := domain.NewEventWithSender(userID, projectID, domain.NotificationTypeJoinProject)
	if err := s.publisher.Publish(ctx, event); err != nil {
		return false, fmt.Errorf("failed to publish join event: %w", err)
	}

	logger.ExitMethod("joinProjectService.SubmitJoinRequest", "projectID", projectID, "userID", userID)
	return true, nil
}

// AcceptJoinRequest turns a pending request into a membership and tells the
// requester about it through an AcceptJoin event.
func (s *joinProjectService) AcceptJoinRequest(ctx context.Context, projectID int32, userID string) error {
	req, err := s.reqRepo.Get(ctx, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to get join request: %w", err)
	}
	if req == nil {
		return ErrJoinRequestNotFound
	}
	if req.Status == domain.JoinProjectRequestStatusAccepted {
		return nil
	}

	if err := s.projectUserSvc.AddUserToProject(ctx, projectID, userID); err != nil {
		return err
	}

	req.Status = domain.JoinProjectRequestStatusAccepted
	if err := s.reqRepo.UpdateStatus(ctx, req); err != nil {
		return fmt.Errorf("failed to update join request status: %w", err)
	}

	event := domain.NewEventWithRecipient(userID, projectID, domain.NotificationTypeAcceptJoin)
	if err := s.publisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish accept event: %w", err)
	}

	logger.Info("Join request accepted", "projectID", projectID, "userID", userID)
	return nil
}

func (s *joinProjectService) ListJoinRequests(ctx context.Context, projectID int32) ([]domain.JoinProjectRequest, error) {
	return s.reqRepo.ListByProject(ctx, projectID)
}
