package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// ErrNoDeliveriesFound is returned by a sweep over an empty store. It is an expected
// idle condition, not a failure.
var ErrNoDeliveriesFound = errors.New("no deliveries found")

// SweepDeliveriesCommandHandler runs one cycle of the status sweeper.
//
// The scan is a snapshot; each Finished entry is then archived through the store's
// atomic Transition, so a record finished by a completion task after the snapshot is
// simply picked up on the next cycle and no write is lost or applied twice.
type SweepDeliveriesCommandHandler struct {
	store     ports.DeliveryStore
	publisher ports.EventPublisher
	clock     ports.Clock
	logger    *slog.Logger
}

func NewSweepDeliveriesCommandHandler(
	store ports.DeliveryStore,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger *slog.Logger,
) SweepDeliveriesCommandHandler {
	return SweepDeliveriesCommandHandler{
		store:     store,
		publisher: publisher,
		clock:     clock,
		logger:    logger.With("component", "status_sweeper"),
	}
}

// Handle archives every Finished record and returns how many were archived.
// Returns ErrNoDeliveriesFound when the store is empty.
func (h SweepDeliveriesCommandHandler) Handle(ctx context.Context, cmd SweepDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if h.store.Size(ctx) == 0 {
		return 0, ErrNoDeliveriesFound
	}

	var (
		archived int
		failures []error
	)
	for _, entry := range h.store.Scan(ctx) {
		if entry.Record.Status() != delivery.Finished {
			continue
		}

		rec, err := h.store.Transition(ctx, entry.TrackingID, delivery.Archived, h.clock.Now())
		if err != nil {
			failures = append(failures, err)
			continue
		}

		archived++
		h.publisher.Publish(ctx, delivery.NewOrderDeliveredEvent(entry.TrackingID, rec.Provider(), rec.UpdatedAt()))
		h.logger.InfoContext(ctx, "Order delivered",
			"tracking_id", entry.TrackingID.String(),
			"provider", rec.Provider().DisplayName(),
		)
	}

	return archived, errors.Join(failures...)
}
