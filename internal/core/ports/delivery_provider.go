package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// DeliveryProvider ships orders on behalf of one provider kind.
type DeliveryProvider interface {
	// Kind returns the provider this implementation ships for.
	Kind() delivery.Provider

	// Ship assigns a fresh tracking id to the shipment, inserts an Ongoing record for
	// it and schedules the asynchronous completion. It returns as soon as the
	// completion is scheduled; it never waits for the transit delay.
	Ship(ctx context.Context, shipment *delivery.Shipment) error
}
