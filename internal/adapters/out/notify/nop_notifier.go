package notify

import (
	"context"

	"matching/internal/core/domain/model/kernel"
)

// NopNotifier discards every event. Useful in tests and tools that do not
// care about outbound notifications.
type NopNotifier struct{}

// NewNopNotifier creates a notifier that does nothing.
func NewNopNotifier() NopNotifier {
	return NopNotifier{}
}

func (NopNotifier) NotifyMatched(_ context.Context, _, _ kernel.UUID, _ []kernel.UUID) {}

func (NopNotifier) NotifyOfferExpired(_ context.Context, _ kernel.UUID) {}

func (NopNotifier) NotifyRequestExpired(_ context.Context, _ kernel.UUID) {}

func (NopNotifier) NotifyWithdrawn(_ context.Context, _ kernel.UUID) {}
