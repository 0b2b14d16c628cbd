package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// ShipOrderCommandHandler selects a provider for the order and ships it.
//
// The handler returns as soon as the provider has inserted the Ongoing record;
// the transit delay and the Finished transition happen on the provider's own task.
//
// Example:
//
//	handler := NewShipOrderCommandHandler(services.NewProviderDispatcher(), registry)
//	cmd, _ := NewShipOrderCommand("pizza-1")
//	trackingID, err := handler.Handle(ctx, cmd)
type ShipOrderCommandHandler struct {
	selector ProviderSelector
	resolver ProviderResolver
}

func NewShipOrderCommandHandler(selector ProviderSelector, resolver ProviderResolver) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		selector: selector,
		resolver: resolver,
	}
}

// Handle ships the order and returns its tracking id.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	shipment, err := delivery.NewShipment(cmd.OrderName())
	if err != nil {
		return kernel.UUID{}, err
	}

	provider := h.resolver.Resolve(h.selector.SelectProvider())
	if err = provider.Ship(ctx, shipment); err != nil {
		return kernel.UUID{}, fmt.Errorf("ship %q with %s: %w", cmd.OrderName(), provider.Kind(), err)
	}

	return *shipment.TrackingID(), nil
}
