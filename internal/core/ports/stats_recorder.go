package ports

import (
	"context"
	"time"

	"matching/internal/core/domain/model/kernel"
)

// StatsRecorder accumulates per-courier metrics on terminal offer
// transitions. It is never called on Pending creation and never mutates
// offer or request state.
type StatsRecorder interface {
	// RecordAccepted increments the courier's in-flight delivery counter and
	// records the elapsed time between offer creation and acceptance.
	// Completion of the delivery is a separate external event.
	RecordAccepted(ctx context.Context, courierID kernel.UUID, responseTime time.Duration) error

	// RecordTerminal records a response-time sample for a non-accepted
	// terminal transition (rejection, expiry, withdrawal).
	RecordTerminal(ctx context.Context, courierID kernel.UUID, responseTime time.Duration) error
}
