package commands

import (
	"errors"

	"matching/internal/pkg/guard"
)

var ErrSweepExpiredCommandIsNotConstructed = errors.New(
	"SweepExpiredCommand must be created via NewSweepExpiredCommand constructor",
)

// SweepExpiredCommand triggers one pass of the expiry sweep. It carries no
// parameters: the deadlines live in the store, so a sweep after a restart
// picks up exactly where timers would have fired.
type SweepExpiredCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepExpiredCommand creates a command to run the expiry sweep.
func NewSweepExpiredCommand() (SweepExpiredCommand, error) {
	return SweepExpiredCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepExpiredCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpiredCommandIsNotConstructed)
}
