// Package ports defines the boundaries between the negotiation core and its
// collaborators: persistence contracts built around conditional status
// updates, the unit-of-work transaction boundary, the outbound notification
// callback, and the courier stats recorder.
package ports

import (
	"context"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for delivery requests.
//
// All status writes go through conditional updates ("set status to X only if
// current status is Y"); the boolean result reports whether the precondition
// held at commit time. This per-row compare-and-swap is the engine's sole
// concurrency-control primitive.
type RequestRepository interface {
	// Add persists a new request aggregate.
	Add(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// UpdateStatusIf transitions the request from one status to another only
	// if it still holds the expected current status. Returns false when the
	// precondition no longer holds, which signals a lost race to the caller.
	UpdateStatusIf(ctx context.Context, id kernel.UUID, from, to request.Status) (bool, error)

	// GetExpiredOpenWithoutPendingOffers returns open requests whose validity
	// deadline lies before now and which have no remaining pending offers.
	// Used by the expiry sweeper.
	GetExpiredOpenWithoutPendingOffers(ctx context.Context, now time.Time) ([]*request.Request, error)
}
