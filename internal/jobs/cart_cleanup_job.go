package jobs

import (
	"context"
	"log/slog"
	"time"

	"littlelemon/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartCleanupJob periodically removes cart lines that were abandoned longer
// than the configured TTL ago. Runs at the top of every hour.
type CartCleanupJob struct {
	handler commands.PurgeStaleCartLinesCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartCleanupJob creates a new job for purging abandoned cart lines.
func NewCartCleanupJob(
	handler commands.PurgeStaleCartLinesCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *CartCleanupJob {
	return &CartCleanupJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "cart_cleanup_job"),
	}
}

// Start begins the cart cleanup job on an hourly schedule.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeStaleCartLinesCommand(time.Now().Add(-j.ttl))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job misconfigured", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged stale cart lines", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started (running hourly)")
	return nil
}

// Stop stops the cart cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}
