package order

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrNameIsRequired        = errs.NewValueIsRequiredError("name")
	ErrDueAtIsRequired       = errs.NewValueIsRequiredError("dueAt")
)

// Order is a request to ship a named order once its due time has passed.
//
// Order follows these invariants:
//   - Name is not blank
//   - DueAt is set (a due time in the past means "ship on the next scheduler pass")
//   - Can only be created through NewOrder
//
// Orders are immutable; the scheduler consumes each one exactly once.
type Order struct {
	// name identifies the order in shipments and log lines
	name string

	// dueAt is the earliest time the order may be dispatched
	dueAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order due at dueAt.
//
// Parameters:
//   - name: order name, surrounding whitespace is trimmed
//   - dueAt: earliest dispatch time
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: joined validation errors otherwise
//
// Example:
//
//	o, err := order.NewOrder("pizza-1", time.Now().Add(2*time.Second))
//	if err != nil {
//	    return err
//	}
//	scheduler.AddOrder(o)
func NewOrder(name string, dueAt time.Time) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setName(name),
		o.setDueAt(dueAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Name returns the order name.
func (o *Order) Name() string {
	return o.name
}

// DueAt returns the earliest dispatch time.
func (o *Order) DueAt() time.Time {
	return o.dueAt
}

// IsDue reports whether the order may be dispatched at now.
func (o *Order) IsDue(now time.Time) bool {
	return !now.Before(o.dueAt)
}

// TimeUntilDue returns how long until the order becomes due, zero if it already is.
func (o *Order) TimeUntilDue(now time.Time) time.Duration {
	if o.IsDue(now) {
		return 0
	}
	return o.dueAt.Sub(now)
}

func (o *Order) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	o.name = name
	return nil
}

func (o *Order) setDueAt(dueAt time.Time) error {
	if dueAt.IsZero() {
		return ErrDueAtIsRequired
	}
	o.dueAt = dueAt
	return nil
}
