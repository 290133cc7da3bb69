package commands

import (
	"errors"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"
	"matching/internal/pkg/errs"
	"matching/internal/pkg/guard"
)

var ErrCounterOfferCommandIsNotConstructed = errors.New(
	"CounterOfferCommand must be created via NewCounterOfferCommand constructor",
)

// CounterOfferCommand answers an existing pending offer with revised terms.
// The request is resolved from the original offer, so the command carries
// only the chain link.
type CounterOfferCommand struct { //nolint:recvcheck //using for validation
	offerID         kernel.UUID
	originalOfferID kernel.UUID
	courierID       kernel.UUID
	terms           offer.Terms
	validUntil      time.Time

	guard guard.ConstructorGuard
}

// NewCounterOfferCommand creates a command to counter an existing offer.
func NewCounterOfferCommand(
	offerID kernel.UUID,
	originalOfferID kernel.UUID,
	courierID kernel.UUID,
	terms offer.Terms,
	validUntil time.Time,
) (CounterOfferCommand, error) {
	cmd := CounterOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(offerID, originalOfferID, courierID),
		cmd.setValidUntil(validUntil),
	); err != nil {
		return CounterOfferCommand{}, err
	}

	cmd.terms = terms
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CounterOfferCommand) Validate() error {
	return c.guard.Validate(ErrCounterOfferCommandIsNotConstructed)
}

// OfferID returns the new counter-offer's identifier.
func (c CounterOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// OriginalOfferID returns the identifier of the offer being countered.
func (c CounterOfferCommand) OriginalOfferID() kernel.UUID {
	return c.originalOfferID
}

// CourierID returns the countering party's identifier.
func (c CounterOfferCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Terms returns the revised price, estimates and payment terms.
func (c CounterOfferCommand) Terms() offer.Terms {
	return c.terms
}

// ValidUntil returns the counter-offer's validity deadline.
func (c CounterOfferCommand) ValidUntil() time.Time {
	return c.validUntil
}

func (c *CounterOfferCommand) setIDs(offerID, originalOfferID, courierID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}
	if err := originalOfferID.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	c.originalOfferID = originalOfferID
	c.courierID = courierID
	return nil
}

func (c *CounterOfferCommand) setValidUntil(validUntil time.Time) error {
	if validUntil.IsZero() {
		return errs.NewValueIsRequiredError("validUntil")
	}
	c.validUntil = validUntil
	return nil
}
