package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
)

// ReapHandler runs one retention cycle.
type ReapHandler interface {
	Handle(ctx context.Context, cmd commands.ReapArchivedDeliveriesCommand) (int, error)
}

// ArchiveRetentionJob removes expired archived deliveries on a fixed interval.
type ArchiveRetentionJob struct {
	handler  ReapHandler
	periodic *periodic
	logger   *slog.Logger
}

// NewArchiveRetentionJob creates the retention job. interval must be at least one second.
func NewArchiveRetentionJob(handler ReapHandler, interval time.Duration, logger *slog.Logger) (*ArchiveRetentionJob, error) {
	j := &ArchiveRetentionJob{
		handler: handler,
		logger:  logger.With("component", "archive_retention_job"),
	}

	p, err := newPeriodic("Archive retention job", interval, j.RunOnce, j.logger)
	if err != nil {
		return nil, err
	}
	j.periodic = p
	return j, nil
}

// RunOnce performs a single retention pass.
func (j *ArchiveRetentionJob) RunOnce(ctx context.Context) {
	removed, err := j.handler.Handle(ctx, commands.NewReapArchivedDeliveriesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Archive retention job failed", "error", err)
	}
	if removed > 0 {
		j.logger.DebugContext(ctx, "Archived deliveries removed", "count", removed)
	}
}

func (j *ArchiveRetentionJob) Start() error {
	j.periodic.start()
	return nil
}

// Stop stops the schedule and waits for an in-progress pass.
func (j *ArchiveRetentionJob) Stop() {
	j.periodic.stop()
}
