package jobs

import (
	"context"
	"time"

	"project-manager-backend/internal/logger"
)

// PurgeStaleJoinRequests removes pending join requests older than the
// configured retention window. A request that sat unanswered that long is
// treated as abandoned; the user can always submit again.
func (jr *JobRunner) PurgeStaleJoinRequests() {
	jr.runWithRecovery("PurgeStaleJoinRequests", func() {
		ctx := context.Background()

		cutoff := time.Now().AddDate(0, 0, -jr.config.Retention.JoinRequestDays).Format("2006-01-02")
		count, err := jr.store.JoinRequestRepository.DeletePendingBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge stale join requests", "cutoff", cutoff, "error", err)
			return
		}

		logger.Info("Stale join requests purged", "cutoff", cutoff, "count", count)
	})
}

// PurgeReadNotifications removes read notifications older than the configured
// retention window. Unread notifications are kept regardless of age.
func (jr *JobRunner) PurgeReadNotifications() {
	jr.runWithRecovery("PurgeReadNotifications", func() {
		ctx := context.Background()

		cutoff := time.Now().AddDate(0, 0, -jr.config.Retention.NotificationDays).Format("2006-01-02")
		count, err := jr.store.NotificationRepository.DeleteReadBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge read notifications", "cutoff", cutoff, "error", err)
			return
		}

		logger.Info("Read notifications purged", "cutoff", cutoff, "count", count)
	})
}
