package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrReapArchivedDeliveriesCommandIsNotConstructed = errors.New(
	"ReapArchivedDeliveriesCommand must be created via NewReapArchivedDeliveriesCommand constructor",
)

// ReapArchivedDeliveriesCommand triggers one retention cycle.
type ReapArchivedDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

func NewReapArchivedDeliveriesCommand() ReapArchivedDeliveriesCommand {
	return ReapArchivedDeliveriesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReapArchivedDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrReapArchivedDeliveriesCommandIsNotConstructed)
}
