// Package queries contains the read operations of the negotiation engine.
// Query handlers bypass the domain aggregates and read projection-shaped rows
// straight from the database, per the CQRS split: writes go through commands
// and conditional updates, reads go through raw SQL.
package queries

import (
	"errors"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/pkg/guard"
)

var ErrGetRequestOffersQueryIsNotConstructed = errors.New(
	"GetRequestOffersQuery must be created via NewGetRequestOffersQuery constructor",
)

// GetRequestOffersQuery retrieves every offer submitted against one request,
// newest first, terminal offers included. Customers use it to review the
// whole negotiation, not just what is still actionable.
type GetRequestOffersQuery struct {
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRequestOffersQuery creates a query for a request's offers.
func NewGetRequestOffersQuery(requestID kernel.UUID) (GetRequestOffersQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetRequestOffersQuery{}, err
	}

	return GetRequestOffersQuery{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRequestOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestOffersQueryIsNotConstructed)
}

// RequestID returns the target request's identifier.
func (q GetRequestOffersQuery) RequestID() kernel.UUID {
	return q.requestID
}

// GetRequestOffersQueryResponse is the read model for one offer in a
// request's negotiation history.
type GetRequestOffersQueryResponse struct {
	ID                  kernel.UUID
	CourierID           kernel.UUID
	PriceCents          int64
	PickupEtaMinutes    int
	DeliveryEtaMinutes  int
	Message             string
	Transport           string
	CanWaitForPayment   bool
	AdvancePaymentCents *int64
	IsCounterOffer      bool
	OriginalOfferID     *kernel.UUID
	CreatedAt           time.Time
	ValidUntil          time.Time
	Status              string
	WithdrawReason      string
}
