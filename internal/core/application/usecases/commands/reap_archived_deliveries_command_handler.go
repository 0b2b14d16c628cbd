package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// DefaultRetentionWindow is how long an archived record is kept before removal.
const DefaultRetentionWindow = 60 * time.Second

// ReapArchivedDeliveriesCommandHandler runs one cycle of the retention reaper: every
// Archived record whose UpdatedAt is older than the retention window is deleted.
// Ongoing and Finished records are never touched.
type ReapArchivedDeliveriesCommandHandler struct {
	store     ports.DeliveryStore
	publisher ports.EventPublisher
	clock     ports.Clock
	retention time.Duration
	logger    *slog.Logger
}

func NewReapArchivedDeliveriesCommandHandler(
	store ports.DeliveryStore,
	publisher ports.EventPublisher,
	clock ports.Clock,
	retention time.Duration,
	logger *slog.Logger,
) (ReapArchivedDeliveriesCommandHandler, error) {
	if retention <= 0 {
		return ReapArchivedDeliveriesCommandHandler{}, errs.NewValueIsInvalidErrorWithCause(
			"retention window is invalid",
			fmt.Errorf("%s is not positive", retention),
		)
	}

	return ReapArchivedDeliveriesCommandHandler{
		store:     store,
		publisher: publisher,
		clock:     clock,
		retention: retention,
		logger:    logger.With("component", "retention_reaper"),
	}, nil
}

// Handle deletes expired archived records and returns how many were removed.
func (h ReapArchivedDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd ReapArchivedDeliveriesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.clock.Now()
	cutoff := now.Add(-h.retention)

	var (
		removed  int
		failures []error
	)
	for _, entry := range h.store.Scan(ctx) {
		if entry.Record.ValidateRemoval(cutoff) != nil {
			continue
		}

		rec, err := h.store.Delete(ctx, entry.TrackingID, cutoff)
		if err != nil {
			failures = append(failures, err)
			continue
		}

		removed++
		h.publisher.Publish(ctx, delivery.NewOrderRemovedEvent(entry.TrackingID, rec.Provider(), now))
		h.logger.InfoContext(ctx, "Removing archived order", "tracking_id", entry.TrackingID.String())
	}

	return removed, errors.Join(failures...)
}
