package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
)

// SweepHandler runs one status sweep.
type SweepHandler interface {
	Handle(ctx context.Context, cmd commands.SweepDeliveriesCommand) (int, error)
}

// DeliverySweepJob archives finished deliveries on a fixed interval.
type DeliverySweepJob struct {
	handler  SweepHandler
	periodic *periodic
	logger   *slog.Logger
}

// NewDeliverySweepJob creates the sweep job. interval must be at least one second.
func NewDeliverySweepJob(handler SweepHandler, interval time.Duration, logger *slog.Logger) (*DeliverySweepJob, error) {
	j := &DeliverySweepJob{
		handler: handler,
		logger:  logger.With("component", "delivery_sweep_job"),
	}

	p, err := newPeriodic("Delivery sweep job", interval, j.RunOnce, j.logger)
	if err != nil {
		return nil, err
	}
	j.periodic = p
	return j, nil
}

// RunOnce performs a single sweep. An empty store is the idle case and is not logged.
func (j *DeliverySweepJob) RunOnce(ctx context.Context) {
	archived, err := j.handler.Handle(ctx, commands.NewSweepDeliveriesCommand())
	if err != nil && !errors.Is(err, commands.ErrNoDeliveriesFound) {
		j.logger.ErrorContext(ctx, "Delivery sweep job failed", "error", err)
	}
	if archived > 0 {
		j.logger.DebugContext(ctx, "Deliveries archived", "count", archived)
	}
}

func (j *DeliverySweepJob) Start() error {
	j.periodic.start()
	return nil
}

// Stop stops the schedule and waits for an in-progress sweep.
func (j *DeliverySweepJob) Stop() {
	j.periodic.stop()
}
