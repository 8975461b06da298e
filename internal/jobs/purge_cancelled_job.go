package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PurgeCancelledJob removes cancelled delivery records that have aged past
// the retention window. Runs on the configured cron schedule.
type PurgeCancelledJob struct {
	handler   commands.PurgeCancelledCommandHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPurgeCancelledJob creates a job that purges expired cancellations on
// the given cron schedule (standard 5-field expression).
func NewPurgeCancelledJob(
	handler commands.PurgeCancelledCommandHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *PurgeCancelledJob {
	return &PurgeCancelledJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "purge_cancelled_job"),
	}
}

// Start schedules the purge job.
func (j *PurgeCancelledJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeCancelledCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Purge job misconfigured", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Purge job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged cancelled deliveries", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Purge job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Stop stops the purge job.
func (j *PurgeCancelledJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Purge job stopped")
}
