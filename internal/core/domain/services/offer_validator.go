package services

import (
	"errors"
	"fmt"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"
	"matching/internal/core/domain/model/request"
)

// ErrValidation is the root of the validation error taxonomy. Every rejection
// reason wraps it so callers can classify with a single errors.Is check.
var ErrValidation = errors.New("offer validation failed")

// Rejection reasons, checked in order and short-circuiting on first failure.
var (
	ErrRequestNotOpen        = fmt.Errorf("%w: request is not open", ErrValidation)
	ErrRequestExpired        = fmt.Errorf("%w: request validity deadline has passed", ErrValidation)
	ErrInvalidAmount         = fmt.Errorf("%w: price or time estimate is invalid", ErrValidation)
	ErrInvalidCounterChain   = fmt.Errorf("%w: counter-offer chain is invalid", ErrValidation)
	ErrDuplicatePendingOffer = fmt.Errorf("%w: courier already holds a pending offer on this request", ErrValidation)
)

// DuplicatePolicy controls what happens when a courier submits a new offer
// while already holding a pending one on the same request.
type DuplicatePolicy int

const (
	// DuplicatePolicyReject rejects the new submission outright. This is the
	// default: the safer, auditable choice.
	DuplicatePolicyReject DuplicatePolicy = iota

	// DuplicatePolicySupersede lets the submission pipeline withdraw the
	// prior pending offer before storing the new one. The validator itself
	// still never mutates anything; it merely skips the duplicate check.
	DuplicatePolicySupersede
)

// DefaultMaxCounterDepth bounds counter-offer chains to a single hop:
// an offer may be countered, but the counter may not be countered again.
const DefaultMaxCounterDepth = 1

// OfferValidator is a stateless domain service that checks a candidate offer
// against its request and the request's existing offers. It is a pure
// function over its inputs: no clock reads, no store access, no side effects.
//
// Example:
//
//	validator := services.NewOfferValidator(services.DefaultMaxCounterDepth, services.DuplicatePolicyReject)
//	if err := validator.Validate(req, existingOffers, candidate, time.Now()); err != nil {
//	    switch {
//	    case errors.Is(err, services.ErrDuplicatePendingOffer):
//	        // surface as actionable form feedback
//	    case errors.Is(err, services.ErrValidation):
//	        // any other rejection reason
//	    }
//	}
type OfferValidator struct {
	maxCounterDepth int
	duplicatePolicy DuplicatePolicy
}

// NewOfferValidator creates a validator with the given counter-chain depth
// bound and duplicate-offer policy. A non-positive depth falls back to
// DefaultMaxCounterDepth.
func NewOfferValidator(maxCounterDepth int, duplicatePolicy DuplicatePolicy) OfferValidator {
	if maxCounterDepth <= 0 {
		maxCounterDepth = DefaultMaxCounterDepth
	}
	return OfferValidator{
		maxCounterDepth: maxCounterDepth,
		duplicatePolicy: duplicatePolicy,
	}
}

// DuplicatePolicy returns the configured duplicate-offer policy so the
// submission pipeline knows whether to withdraw a superseded offer.
func (v OfferValidator) DuplicatePolicy() DuplicatePolicy {
	return v.duplicatePolicy
}

// Validate checks the candidate offer in spec order, returning the first
// failing reason. existingOffers must be the full set of offers already
// stored for req, in any order. now is passed in by the caller to keep the
// validator pure and trivially unit-testable.
func (v OfferValidator) Validate(
	req *request.Request,
	existingOffers []*offer.Offer,
	candidate *offer.Offer,
	now time.Time,
) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if req.Status() != request.Open {
		return ErrRequestNotOpen
	}

	// Advisory fast feedback; the sweeper owns the authoritative transition.
	if req.IsDeadlinePassed(now) {
		return ErrRequestExpired
	}

	if err := v.validateAmounts(candidate); err != nil {
		return err
	}

	if candidate.IsCounterOffer() {
		if err := v.validateCounterChain(existingOffers, candidate); err != nil {
			return err
		}
	}

	if v.duplicatePolicy == DuplicatePolicyReject {
		if pendingOfferBy(existingOffers, candidate.CourierID()) != nil {
			return ErrDuplicatePendingOffer
		}
	}

	return nil
}

// PendingOfferBy returns the courier's pending offer among existingOffers,
// or nil. The submission pipeline uses it to withdraw a superseded offer
// under DuplicatePolicySupersede.
func (v OfferValidator) PendingOfferBy(existingOffers []*offer.Offer, courierID kernel.UUID) *offer.Offer {
	return pendingOfferBy(existingOffers, courierID)
}

func (v OfferValidator) validateAmounts(candidate *offer.Offer) error {
	if err := candidate.Price().Validate(); err != nil {
		return ErrInvalidAmount
	}
	if candidate.PickupEtaMinutes() < 0 || candidate.DeliveryEtaMinutes() < 0 {
		return ErrInvalidAmount
	}
	if advance := candidate.AdvancePayment(); advance != nil {
		if err := advance.Validate(); err != nil {
			return ErrInvalidAmount
		}
	}
	return nil
}

func (v OfferValidator) validateCounterChain(existingOffers []*offer.Offer, candidate *offer.Offer) error {
	originalID := candidate.OriginalOfferID()
	if originalID == nil {
		return ErrInvalidCounterChain
	}

	byID := make(map[kernel.UUID]*offer.Offer, len(existingOffers))
	for _, o := range existingOffers {
		byID[o.ID()] = o
	}

	original, ok := byID[*originalID]
	if !ok {
		return ErrInvalidCounterChain
	}
	if !original.RequestID().IsEqual(candidate.RequestID()) {
		return ErrInvalidCounterChain
	}
	if original.Status() != offer.Pending {
		return ErrInvalidCounterChain
	}

	// Depth of the candidate is one hop past the original's own chain.
	depth := 1
	for cursor := original; cursor.IsCounterOffer(); depth++ {
		if depth > v.maxCounterDepth {
			return ErrInvalidCounterChain
		}
		parentID := cursor.OriginalOfferID()
		if parentID == nil {
			return ErrInvalidCounterChain
		}
		parent, found := byID[*parentID]
		if !found {
			return ErrInvalidCounterChain
		}
		cursor = parent
	}
	if depth > v.maxCounterDepth {
		return ErrInvalidCounterChain
	}

	return nil
}

func pendingOfferBy(existingOffers []*offer.Offer, courierID kernel.UUID) *offer.Offer {
	for _, o := range existingOffers {
		if o.Status() == offer.Pending && o.CourierID().IsEqual(courierID) {
			return o
		}
	}
	return nil
}
