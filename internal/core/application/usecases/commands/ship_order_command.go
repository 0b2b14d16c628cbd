package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand hands a due order to a delivery provider.
type ShipOrderCommand struct {
	orderName string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship orderName.
func NewShipOrderCommand(orderName string) (ShipOrderCommand, error) {
	if orderName == "" {
		return ShipOrderCommand{}, ErrOrderNameIsRequired
	}
	return ShipOrderCommand{
		orderName: orderName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderName returns the name of the order to ship.
func (c ShipOrderCommand) OrderName() string {
	return c.orderName
}
