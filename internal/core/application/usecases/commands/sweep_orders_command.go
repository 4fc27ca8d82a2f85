package commands

import (
	"errors"

	"foodbank/internal/pkg/guard"
)

var (
	ErrSweepOrdersCommandIsNotConstructed = errors.New(
		"SweepOrdersCommand must be created via NewSweepOrdersCommand constructor",
	)
)

// SweepOrdersCommand triggers the time-based lifecycle advancement over all
// active orders. It carries no parameters; the current time is the handler's
// concern.
type SweepOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepOrdersCommand creates a validated sweep command.
func NewSweepOrdersCommand() (SweepOrdersCommand, error) {
	return SweepOrdersCommand{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepOrdersCommandIsNotConstructed)
}
