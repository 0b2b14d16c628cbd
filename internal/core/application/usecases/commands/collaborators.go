// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: every command is built through a
// validating constructor and executed by a handler that owns the side effects.
package commands

import (
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// Collaborator interfaces the handlers depend on. Implemented by the scheduler,
// the provider dispatcher and the provider registry.
type (
	// OrderQueue accepts orders for deferred dispatch. AddOrder never blocks.
	OrderQueue interface {
		AddOrder(o *order.Order) error
	}

	// ProviderSelector picks the provider for the next shipment.
	ProviderSelector interface {
		SelectProvider() delivery.Provider
	}

	// ProviderResolver maps a provider kind to the implementation that ships for it.
	ProviderResolver interface {
		Resolve(kind delivery.Provider) ports.DeliveryProvider
	}
)
