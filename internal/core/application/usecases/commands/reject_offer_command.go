package commands

import (
	"errors"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/pkg/guard"
)

var ErrRejectOfferCommandIsNotConstructed = errors.New(
	"RejectOfferCommand must be created via NewRejectOfferCommand constructor",
)

// RejectOfferCommand declines a single pending offer on behalf of the
// customer. The request stays Open and other offers are untouched. The
// optional reason travels to the courier's notification but is not persisted
// on the offer.
type RejectOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectOfferCommand creates a command to reject an offer.
func NewRejectOfferCommand(offerID kernel.UUID, reason string) (RejectOfferCommand, error) {
	cmd := RejectOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOfferID(offerID); err != nil {
		return RejectOfferCommand{}, err
	}

	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOfferCommand) Validate() error {
	return c.guard.Validate(ErrRejectOfferCommandIsNotConstructed)
}

// OfferID returns the rejected offer's identifier.
func (c RejectOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// Reason returns the customer's optional rejection reason.
func (c RejectOfferCommand) Reason() string {
	return c.reason
}

func (c *RejectOfferCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.offerID = id
	return nil
}
