package offer

import (
	"errors"
	"fmt"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/pkg/errs"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer instance was not
	// created through NewOffer, NewCounterOffer, or RestoreOffer.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

	// ErrWithdrawReasonIsRequired is returned when a withdrawal carries no reason.
	ErrWithdrawReasonIsRequired = errors.New("withdraw reason is required")
)

// Offer is the aggregate root for one courier's proposal against a delivery
// request: a price, time estimates, transport method and payment terms, valid
// until a persisted deadline.
//
// Invariants:
//   - Must reference a valid request and courier
//   - Price must be a constructed (positive) Price
//   - Time estimates must be non-negative
//   - A counter-offer always references its original offer
//   - Status is monotonic: terminal states are absorbing
type Offer struct {
	id        kernel.UUID
	requestID kernel.UUID
	courierID kernel.UUID

	price              kernel.Price
	pickupEtaMinutes   int
	deliveryEtaMinutes int
	message            string
	transport          Transport
	canWaitForPayment  bool
	advancePayment     *kernel.Price

	isCounterOffer  bool
	originalOfferID *kernel.UUID

	createdAt  time.Time
	validUntil time.Time
	status     Status

	withdrawReason string
	acceptedAt     *time.Time
	rejectedAt     *time.Time
	withdrawnAt    *time.Time

	isConstructed bool
}

// Terms bundles the negotiable attributes of an offer. It keeps the
// constructors readable and is reused verbatim for counter-offers.
type Terms struct {
	Price              kernel.Price
	PickupEtaMinutes   int
	DeliveryEtaMinutes int
	Message            string
	Transport          Transport
	CanWaitForPayment  bool
	AdvancePayment     *kernel.Price
}

// NewOffer creates a Pending offer from a courier against a request.
func NewOffer(
	id kernel.UUID,
	requestID kernel.UUID,
	courierID kernel.UUID,
	terms Terms,
	createdAt time.Time,
	validUntil time.Time,
) (*Offer, error) {
	o := &Offer{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, requestID, courierID),
		o.setTerms(terms),
		o.setWindow(createdAt, validUntil),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewCounterOffer creates a Pending offer that answers an existing offer on
// the same request. The original offer's status is never touched here; it
// stays Pending until explicitly accepted, rejected, or superseded.
func NewCounterOffer(
	id kernel.UUID,
	requestID kernel.UUID,
	courierID kernel.UUID,
	originalOfferID kernel.UUID,
	terms Terms,
	createdAt time.Time,
	validUntil time.Time,
) (*Offer, error) {
	o, err := NewOffer(id, requestID, courierID, terms, createdAt, validUntil)
	if err != nil {
		return nil, err
	}

	if err = originalOfferID.Validate(); err != nil {
		return nil, err
	}

	o.isCounterOffer = true
	o.originalOfferID = &originalOfferID
	return o, nil
}

// RestoreOffer reconstructs an offer from persistence with explicit state.
// Used exclusively by repository adapters.
func RestoreOffer(
	id kernel.UUID,
	requestID kernel.UUID,
	courierID kernel.UUID,
	terms Terms,
	createdAt time.Time,
	validUntil time.Time,
	status Status,
	originalOfferID *kernel.UUID,
	withdrawReason string,
	acceptedAt, rejectedAt, withdrawnAt *time.Time,
) (*Offer, error) {
	o := &Offer{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, requestID, courierID),
		o.setTerms(terms),
		o.setWindow(createdAt, validUntil),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if originalOfferID != nil {
		if err := originalOfferID.Validate(); err != nil {
			return nil, err
		}
		o.isCounterOffer = true
		o.originalOfferID = originalOfferID
	}

	o.withdrawReason = withdrawReason
	o.acceptedAt = acceptedAt
	o.rejectedAt = rejectedAt
	o.withdrawnAt = withdrawnAt
	return o, nil
}

// Validate ensures the Offer was created through a constructor.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}

	return nil
}

// IsEqual compares two offers by identifier.
func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// RequestID returns the identifier of the request this offer targets.
func (o *Offer) RequestID() kernel.UUID {
	return o.requestID
}

// CourierID returns the identifier of the submitting courier.
func (o *Offer) CourierID() kernel.UUID {
	return o.courierID
}

// Price returns the proposed price.
func (o *Offer) Price() kernel.Price {
	return o.price
}

// PickupEtaMinutes returns the estimated minutes until pickup.
func (o *Offer) PickupEtaMinutes() int {
	return o.pickupEtaMinutes
}

// DeliveryEtaMinutes returns the estimated total delivery minutes.
func (o *Offer) DeliveryEtaMinutes() int {
	return o.deliveryEtaMinutes
}

// Message returns the courier's free-text note.
func (o *Offer) Message() string {
	return o.message
}

// TransportMethod returns the proposed transport method.
func (o *Offer) TransportMethod() Transport {
	return o.transport
}

// CanWaitForPayment reports whether the courier accepts deferred payment.
func (o *Offer) CanWaitForPayment() bool {
	return o.canWaitForPayment
}

// AdvancePayment returns the optional advance-payment amount, or nil.
func (o *Offer) AdvancePayment() *kernel.Price {
	return o.advancePayment
}

// IsCounterOffer reports whether this offer answers another offer.
func (o *Offer) IsCounterOffer() bool {
	return o.isCounterOffer
}

// OriginalOfferID returns the countered offer's id, or nil for direct offers.
func (o *Offer) OriginalOfferID() *kernel.UUID {
	return o.originalOfferID
}

// CreatedAt returns the submission time.
func (o *Offer) CreatedAt() time.Time {
	return o.createdAt
}

// ValidUntil returns the persisted validity deadline.
func (o *Offer) ValidUntil() time.Time {
	return o.validUntil
}

// Status returns the current lifecycle status.
func (o *Offer) Status() Status {
	return o.status
}

// WithdrawReason returns the courier's withdrawal reason, if any.
func (o *Offer) WithdrawReason() string {
	return o.withdrawReason
}

// AcceptedAt returns the acceptance timestamp, or nil.
func (o *Offer) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// RejectedAt returns the rejection timestamp, or nil.
func (o *Offer) RejectedAt() *time.Time {
	return o.rejectedAt
}

// WithdrawnAt returns the withdrawal timestamp, or nil.
func (o *Offer) WithdrawnAt() *time.Time {
	return o.withdrawnAt
}

// IsDeadlinePassed reports whether the validity deadline lies before now.
func (o *Offer) IsDeadlinePassed(now time.Time) bool {
	return now.After(o.validUntil)
}

// Accept marks the offer as the request's winner.
// Only a Pending offer can be accepted.
func (o *Offer) Accept(at time.Time) error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.acceptedAt = &at
	return nil
}

// Reject marks the offer as rejected.
func (o *Offer) Reject(at time.Time) error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.rejectedAt = &at
	return nil
}

// Expire marks the offer as expired past its validity deadline.
func (o *Offer) Expire() error {
	newStatus, err := o.status.Expire()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Withdraw marks the offer as withdrawn by its courier with a reason.
func (o *Offer) Withdraw(reason string, at time.Time) error {
	if reason == "" {
		return ErrWithdrawReasonIsRequired
	}

	newStatus, err := o.status.Withdraw()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.withdrawReason = reason
	o.withdrawnAt = &at
	return nil
}

func (o *Offer) setIDs(id, requestID, courierID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := requestID.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	o.id = id
	o.requestID = requestID
	o.courierID = courierID
	return nil
}

func (o *Offer) setTerms(terms Terms) error {
	if err := terms.Price.Validate(); err != nil {
		return err
	}
	if terms.PickupEtaMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pickupEtaMinutes",
			fmt.Errorf("%d is negative", terms.PickupEtaMinutes))
	}
	if terms.DeliveryEtaMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryEtaMinutes",
			fmt.Errorf("%d is negative", terms.DeliveryEtaMinutes))
	}
	if err := terms.Transport.Validate(); err != nil {
		return err
	}
	if terms.AdvancePayment != nil {
		if err := terms.AdvancePayment.Validate(); err != nil {
			return err
		}
	}

	o.price = terms.Price
	o.pickupEtaMinutes = terms.PickupEtaMinutes
	o.deliveryEtaMinutes = terms.DeliveryEtaMinutes
	o.message = terms.Message
	o.transport = terms.Transport
	o.canWaitForPayment = terms.CanWaitForPayment
	o.advancePayment = terms.AdvancePayment
	return nil
}

func (o *Offer) setWindow(createdAt, validUntil time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if !validUntil.After(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("validUntil",
			fmt.Errorf("deadline %s is not after creation time %s", validUntil, createdAt))
	}
	o.createdAt = createdAt
	o.validUntil = validUntil
	return nil
}

func (o *Offer) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
