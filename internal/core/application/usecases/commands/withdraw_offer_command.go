package commands

import (
	"errors"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/pkg/errs"
	"matching/internal/pkg/guard"
)

var ErrWithdrawOfferCommandIsNotConstructed = errors.New(
	"WithdrawOfferCommand must be created via NewWithdrawOfferCommand constructor",
)

// WithdrawOfferCommand retracts a courier's own pending offer. Unlike
// rejection, the reason is mandatory and persisted on the offer.
type WithdrawOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewWithdrawOfferCommand creates a command to withdraw an offer with a reason.
func NewWithdrawOfferCommand(offerID kernel.UUID, reason string) (WithdrawOfferCommand, error) {
	cmd := WithdrawOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOfferID(offerID),
		cmd.setReason(reason),
	); err != nil {
		return WithdrawOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawOfferCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawOfferCommandIsNotConstructed)
}

// OfferID returns the withdrawn offer's identifier.
func (c WithdrawOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// Reason returns the courier's withdrawal reason.
func (c WithdrawOfferCommand) Reason() string {
	return c.reason
}

func (c *WithdrawOfferCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.offerID = id
	return nil
}

func (c *WithdrawOfferCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
