package jobs

import (
	"context"
	"log/slog"

	"printshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RetentionJob periodically purges terminal orders and closed price requests
// older than the configured retention window.
type RetentionJob struct {
	handler    commands.PurgeStaleDataCommandHandler
	cron       *cron.Cron
	schedule   string
	maxAgeDays int
	logger     *slog.Logger
}

// NewRetentionJob creates a retention sweep running on the given cron
// schedule. maxAgeDays controls how long finished records are kept.
func NewRetentionJob(
	handler commands.PurgeStaleDataCommandHandler,
	schedule string,
	maxAgeDays int,
	logger *slog.Logger,
) *RetentionJob {
	return &RetentionJob{
		handler:    handler,
		cron:       cron.New(),
		schedule:   schedule,
		maxAgeDays: maxAgeDays,
		logger:     logger.With("component", "retention_job"),
	}
}

// Start schedules the retention sweep.
func (j *RetentionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeStaleDataCommand(j.maxAgeDays)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Retention job misconfigured", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Retention job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Retention job started",
		"schedule", j.schedule, "maxAgeDays", j.maxAgeDays)
	return nil
}

// Stop stops the retention sweep.
func (j *RetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Retention job stopped")
}
