package delivery

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record literal bypassed NewRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is the value kept in the delivery store under a tracking id.
//
// Record is immutable: transition methods return a new Record and leave the
// receiver untouched, so snapshots handed out by the store can never be torn by
// a concurrent writer.
type Record struct {
	provider  Provider
	status    Status
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates the Ongoing record a provider inserts when it picks up an order.
//
// Parameters:
//   - provider: the provider shipping the order (must be valid)
//   - at: the pickup time, becomes UpdatedAt
//
// Returns:
//   - Record in Ongoing status
//   - error if provider is invalid or at is the zero time
func NewRecord(provider Provider, at time.Time) (Record, error) {
	if err := provider.Validate(); err != nil {
		return Record{}, err
	}
	if at.IsZero() {
		return Record{}, errs.NewValueIsRequiredError("updatedAt")
	}
	return Record{
		provider:  provider,
		status:    Ongoing,
		updatedAt: at,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was built through NewRecord.
func (r Record) Validate() error {
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// Provider returns the provider shipping the order.
func (r Record) Provider() Provider {
	return r.provider
}

// Status returns the current lifecycle status.
func (r Record) Status() Status {
	return r.status
}

// UpdatedAt returns the time of the last transition.
func (r Record) UpdatedAt() time.Time {
	return r.updatedAt
}

// Finish returns a copy moved from Ongoing to Finished at the given time.
func (r Record) Finish(at time.Time) (Record, error) {
	return r.TransitionTo(Finished, at)
}

// Archive returns a copy moved from Finished to Archived at the given time.
func (r Record) Archive(at time.Time) (Record, error) {
	return r.TransitionTo(Archived, at)
}

// TransitionTo returns a copy in the target status with UpdatedAt refreshed.
// Only the single next step of the lifecycle is accepted.
func (r Record) TransitionTo(target Status, at time.Time) (Record, error) {
	if err := r.Validate(); err != nil {
		return Record{}, err
	}

	next, err := r.status.TransitionTo(target)
	if err != nil {
		return Record{}, err
	}

	r.status = next
	r.updatedAt = at
	return r, nil
}

// ValidateRemoval checks that the record may be deleted by the retention reaper:
// it must be Archived and its UpdatedAt strictly before cutoff.
func (r Record) ValidateRemoval(cutoff time.Time) error {
	if r.status != Archived {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to remove", r.status.String()),
		)
	}
	if !r.updatedAt.Before(cutoff) {
		return errs.NewValueIsInvalidErrorWithCause(
			"updatedAt is invalid",
			fmt.Errorf("record archived at %s is still within retention", r.updatedAt.Format(time.RFC3339Nano)),
		)
	}
	return nil
}

// Entry pairs a tracking id with its record, as returned by store scans.
type Entry struct {
	TrackingID kernel.UUID
	Record     Record
}
