package commands

import (
	"errors"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand picks one offer as the request's winner. Exactly one
// acceptance can ever succeed per request; concurrent attempts lose the
// conditional update race and surface as conflicts.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	offerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command to accept an offer on a request.
func NewAcceptOfferCommand(requestID, offerID kernel.UUID) (AcceptOfferCommand, error) {
	cmd := AcceptOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setOfferID(offerID),
	); err != nil {
		return AcceptOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// RequestID returns the target request's identifier.
func (c AcceptOfferCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OfferID returns the winning offer's identifier.
func (c AcceptOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c *AcceptOfferCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *AcceptOfferCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.offerID = id
	return nil
}
