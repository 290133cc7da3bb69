package commands

import (
	"errors"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"
	"matching/internal/pkg/errs"
	"matching/internal/pkg/guard"
)

var ErrSubmitOfferCommandIsNotConstructed = errors.New(
	"SubmitOfferCommand must be created via NewSubmitOfferCommand constructor",
)

// SubmitOfferCommand places a courier's direct offer against an open request.
type SubmitOfferCommand struct { //nolint:recvcheck //using for validation
	offerID    kernel.UUID
	requestID  kernel.UUID
	courierID  kernel.UUID
	terms      offer.Terms
	validUntil time.Time

	guard guard.ConstructorGuard
}

// NewSubmitOfferCommand creates a command to submit a direct offer. The terms
// themselves are validated by the aggregate constructor; here only the
// identifiers and the deadline are checked.
func NewSubmitOfferCommand(
	offerID kernel.UUID,
	requestID kernel.UUID,
	courierID kernel.UUID,
	terms offer.Terms,
	validUntil time.Time,
) (SubmitOfferCommand, error) {
	cmd := SubmitOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(offerID, requestID, courierID),
		cmd.setValidUntil(validUntil),
	); err != nil {
		return SubmitOfferCommand{}, err
	}

	cmd.terms = terms
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOfferCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOfferCommandIsNotConstructed)
}

// OfferID returns the new offer's identifier.
func (c SubmitOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// RequestID returns the target request's identifier.
func (c SubmitOfferCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CourierID returns the submitting courier's identifier.
func (c SubmitOfferCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Terms returns the offered price, estimates and payment terms.
func (c SubmitOfferCommand) Terms() offer.Terms {
	return c.terms
}

// ValidUntil returns the offer's validity deadline.
func (c SubmitOfferCommand) ValidUntil() time.Time {
	return c.validUntil
}

func (c *SubmitOfferCommand) setIDs(offerID, requestID, courierID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}
	if err := requestID.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	c.requestID = requestID
	c.courierID = courierID
	return nil
}

func (c *SubmitOfferCommand) setValidUntil(validUntil time.Time) error {
	if validUntil.IsZero() {
		return errs.NewValueIsRequiredError("validUntil")
	}
	c.validUntil = validUntil
	return nil
}
