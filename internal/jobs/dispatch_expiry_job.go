package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"orderdesk/internal/core/application/usecases/commands"
)

// DispatchExpiryJob discards pending dispatch status changes that were not
// confirmed within the TTL. Runs every minute.
type DispatchExpiryJob struct {
	handler commands.ExpireStaleDispatchRequestsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchExpiryJob creates the expiry job. ttl is how long a pending
// change may wait for confirmation before it is discarded.
func NewDispatchExpiryJob(
	handler commands.ExpireStaleDispatchRequestsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *DispatchExpiryJob {
	return &DispatchExpiryJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_expiry_job"),
	}
}

// Start begins the expiry job to run once a minute.
func (j *DispatchExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireStaleDispatchRequestsCommand(j.ttl, time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch expiry job misconfigured", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Discarded stale dispatch change requests", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry job.
func (j *DispatchExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch expiry job stopped")
}
