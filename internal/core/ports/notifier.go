package ports

import (
	"context"

	"matching/internal/core/domain/model/kernel"
)

// MatchingNotifier is the abstract boundary the core calls to publish
// committed state changes to the outside world (sockets, notification
// service). The core never blocks on it and a notifier failure never rolls
// back a transition: delivery is fire-and-forget, at-least-once.
//
// Implementations must return quickly; anything slow belongs behind the
// async adapter.
type MatchingNotifier interface {
	// NotifyMatched publishes a request's winning offer and the sibling
	// offers that were force-rejected in the same operation.
	NotifyMatched(ctx context.Context, requestID, winningOfferID kernel.UUID, rejectedOfferIDs []kernel.UUID)

	// NotifyOfferExpired publishes an offer's expiry by the sweeper.
	NotifyOfferExpired(ctx context.Context, offerID kernel.UUID)

	// NotifyRequestExpired publishes a request's expiry by the sweeper.
	NotifyRequestExpired(ctx context.Context, requestID kernel.UUID)

	// NotifyWithdrawn publishes a courier withdrawing an offer.
	NotifyWithdrawn(ctx context.Context, offerID kernel.UUID)
}
