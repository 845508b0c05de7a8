package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dispatchExpiryJob *DispatchExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expireHandler commands.ExpireStaleDispatchRequestsCommandHandler,
	confirmationTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchExpiryJob: NewDispatchExpiryJob(expireHandler, confirmationTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchExpiryJob.Stop()
}
