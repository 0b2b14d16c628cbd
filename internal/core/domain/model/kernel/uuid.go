package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a UUID that did not come from NewUUID or UUIDFromString.
// Validate returns it for the zero value.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID is an immutable identifier value object. Tracking ids handed out by delivery
// providers are UUIDs, and the delivery store is keyed by them.
//
// The zero value is invalid; build one with NewUUID or UUIDFromString.
// UUID is comparable and safe to share between goroutines.
//
// Example:
//
//	// A provider allocates the tracking id when it accepts a shipment
//	trackingID := kernel.NewUUID()
//	if err := shipment.AssignTrackingID(trackingID); err != nil {
//	    return err
//	}
//
//	// An operator looks the delivery up again by its printed form
//	parsed, err := kernel.UUIDFromString(trackingID.String())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(parsed.IsEqual(trackingID)) // true
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) UUID.
// Every call yields a fresh tracking id, so concurrent shipments never share one.
//
// Example:
//
//	trackingID := kernel.NewUUID()
//	logger.Info("Shipping order", "tracking_id", trackingID.String())
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID from text. Accepted forms:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "6ba7b8109dad11d180b400c04fd430c8"
//
// Returns an error for malformed input and ErrUUIDIsNotConstructed for the nil UUID,
// which is never a valid tracking id.
//
// Example:
//
//	trackingID, err := kernel.UUIDFromString(c.Param("trackingId"))
//	if err != nil {
//	    return fmt.Errorf("invalid tracking id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// This is the form written to logs, events and API responses.
//
// Example:
//
//	fmt.Printf("Order delivered: %s\n", trackingID.String())
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID.
// It is meant for adapters that serialise the id themselves, such as JSON DTOs.
//
// Example:
//
//	dto := Delivery{TrackingId: entry.TrackingID.Bytes()}
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same value.
//
// Example:
//
//	a := kernel.NewUUID()
//	b := a
//	fmt.Println(a.IsEqual(b))                // true
//	fmt.Println(a.IsEqual(kernel.NewUUID())) // false
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
//
// Example:
//
//	func (s *Shipment) AssignTrackingID(id kernel.UUID) error {
//	    if err := id.Validate(); err != nil {
//	        return err
//	    }
//	    ...
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
