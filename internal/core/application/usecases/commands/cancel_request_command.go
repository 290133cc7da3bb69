package commands

import (
	"errors"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/pkg/guard"
)

var ErrCancelRequestCommandIsNotConstructed = errors.New(
	"CancelRequestCommand must be created via NewCancelRequestCommand constructor",
)

// CancelRequestCommand closes an open request at the customer's initiative.
// A request that was already matched cannot be cancelled through this path.
type CancelRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelRequestCommand creates a command to cancel a request.
func NewCancelRequestCommand(requestID kernel.UUID) (CancelRequestCommand, error) {
	cmd := CancelRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestID(requestID); err != nil {
		return CancelRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelRequestCommandIsNotConstructed)
}

// RequestID returns the cancelled request's identifier.
func (c CancelRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *CancelRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}
