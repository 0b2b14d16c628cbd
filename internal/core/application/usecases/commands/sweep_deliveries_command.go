package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrSweepDeliveriesCommandIsNotConstructed = errors.New(
	"SweepDeliveriesCommand must be created via NewSweepDeliveriesCommand constructor",
)

// SweepDeliveriesCommand triggers one sweep cycle: every Finished record becomes Archived.
// This is a parameterless command run periodically by the delivery sweep job.
type SweepDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

func NewSweepDeliveriesCommand() SweepDeliveriesCommand {
	return SweepDeliveriesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SweepDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrSweepDeliveriesCommandIsNotConstructed)
}
