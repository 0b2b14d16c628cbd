// Package ports defines the contracts between the dispatch core and its adapters.
// These interfaces establish the boundary used for dependency inversion and let tests
// substitute deterministic doubles.
package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryStore is the shared table of delivery records keyed by tracking id.
//
// It is written concurrently by shipment completion tasks, the status sweeper and the
// retention reaper. Every method is atomic with respect to every other method:
// implementations must hold their lock for the whole read-then-write of a key and
// must never call out to user code while holding it.
type DeliveryStore interface {
	// Insert adds a new record. The record must be Ongoing and the tracking id unused.
	Insert(ctx context.Context, id kernel.UUID, rec delivery.Record) error

	// Transition moves the record at id one step forward to the target status,
	// stamping at as its new UpdatedAt, and returns the stored result.
	// Returns errs.ObjectNotFoundError for an unknown id and errs.ValueIsInvalidError
	// when the record is not in the status directly preceding target.
	Transition(ctx context.Context, id kernel.UUID, to delivery.Status, at time.Time) (delivery.Record, error)

	// Scan returns a consistent snapshot of every record. Mutating the returned
	// slice never affects the store.
	Scan(ctx context.Context) []delivery.Entry

	// Delete removes the record at id if it is Archived with UpdatedAt before cutoff
	// and returns the removed record.
	Delete(ctx context.Context, id kernel.UUID, cutoff time.Time) (delivery.Record, error)

	// Size returns the number of tracked records.
	Size(ctx context.Context) int
}
