package commands

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrScheduleOrderCommandIsNotConstructed = errors.New(
		"ScheduleOrderCommand must be created via NewScheduleOrderCommand constructor",
	)
	ErrOrderNameIsRequired = errs.NewValueIsRequiredError("name")
)

// ScheduleOrderCommand requests that a named order be shipped once dueAt has passed.
//
// Example:
//
//	cmd, err := NewScheduleOrderCommand("pizza-1", time.Now().Add(2*time.Second))
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to schedule order: %w", err)
//	}
type ScheduleOrderCommand struct { //nolint:recvcheck //using for validation
	name  string
	dueAt time.Time

	guard guard.ConstructorGuard
}

// NewScheduleOrderCommand validates the order name and due time.
func NewScheduleOrderCommand(name string, dueAt time.Time) (ScheduleOrderCommand, error) {
	cmd := ScheduleOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setDueAt(dueAt),
	); err != nil {
		return ScheduleOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleOrderCommand) Validate() error {
	return c.guard.Validate(ErrScheduleOrderCommandIsNotConstructed)
}

// Name returns the order name.
func (c ScheduleOrderCommand) Name() string {
	return c.name
}

// DueAt returns the earliest dispatch time.
func (c ScheduleOrderCommand) DueAt() time.Time {
	return c.dueAt
}

func (c *ScheduleOrderCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrOrderNameIsRequired
	}
	c.name = name
	return nil
}

func (c *ScheduleOrderCommand) setDueAt(dueAt time.Time) error {
	if dueAt.IsZero() {
		return errs.NewValueIsRequiredError("dueAt")
	}
	c.dueAt = dueAt
	return nil
}
