package ports

import (
	"context"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for delivery offers.
//
// Every transition method is a conditional update guarded on the offer still
// being Pending; the boolean result reports whether the transition committed.
// This makes each transition idempotent under retries: a retry after a win
// simply finds the precondition gone and reports false.
type OfferRepository interface {
	// Add persists a new offer aggregate.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Get retrieves an offer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetAllByRequest retrieves every offer stored for a request, newest first.
	GetAllByRequest(ctx context.Context, requestID kernel.UUID) ([]*offer.Offer, error)

	// AcceptIfPending transitions Pending -> Accepted and stamps acceptedAt.
	AcceptIfPending(ctx context.Context, id kernel.UUID, at time.Time) (bool, error)

	// RejectIfPending transitions Pending -> Rejected and stamps rejectedAt.
	RejectIfPending(ctx context.Context, id kernel.UUID, at time.Time) (bool, error)

	// WithdrawIfPending transitions Pending -> Withdrawn with the courier's
	// reason and stamps withdrawnAt.
	WithdrawIfPending(ctx context.Context, id kernel.UUID, reason string, at time.Time) (bool, error)

	// ExpireIfPending transitions Pending -> Expired. A sweep racing a
	// customer's acceptance cannot expire an offer that just won.
	ExpireIfPending(ctx context.Context, id kernel.UUID) (bool, error)

	// RejectAllPendingByRequest force-rejects every pending offer on the
	// request except the given winner, returning the rejected offer ids.
	// Runs as one conditional bulk update inside the caller's transaction.
	RejectAllPendingByRequest(ctx context.Context, requestID, exceptOfferID kernel.UUID, at time.Time) ([]kernel.UUID, error)

	// GetAllExpiredPending returns pending offers whose validity deadline
	// lies before now. Used by the expiry sweeper.
	GetAllExpiredPending(ctx context.Context, now time.Time) ([]*offer.Offer, error)
}
