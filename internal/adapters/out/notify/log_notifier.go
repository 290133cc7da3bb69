// Package notify implements the outbound notification boundary. The core
// publishes committed state changes through ports.MatchingNotifier; this
// package provides a structured-log implementation, a fire-and-forget async
// wrapper with a bounded queue, and a no-op implementation for tests.
package notify

import (
	"context"
	"log/slog"

	"matching/internal/core/domain/model/kernel"
)

// LogNotifier publishes matching events as structured log records. It stands
// in for a push channel (sockets, a notification service): consumers tail the
// same fields a real transport would carry.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that writes events to the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "matching_notifier"),
	}
}

// NotifyMatched publishes a request's winning offer and force-rejected siblings.
func (n *LogNotifier) NotifyMatched(
	ctx context.Context,
	requestID, winningOfferID kernel.UUID,
	rejectedOfferIDs []kernel.UUID,
) {
	rejected := make([]string, 0, len(rejectedOfferIDs))
	for _, id := range rejectedOfferIDs {
		rejected = append(rejected, id.String())
	}

	n.logger.InfoContext(ctx, "request matched",
		slog.String("request_id", requestID.String()),
		slog.String("winning_offer_id", winningOfferID.String()),
		slog.Any("rejected_offer_ids", rejected),
	)
}

// NotifyOfferExpired publishes an offer's expiry by the sweeper.
func (n *LogNotifier) NotifyOfferExpired(ctx context.Context, offerID kernel.UUID) {
	n.logger.InfoContext(ctx, "offer expired",
		slog.String("offer_id", offerID.String()))
}

// NotifyRequestExpired publishes a request's expiry by the sweeper.
func (n *LogNotifier) NotifyRequestExpired(ctx context.Context, requestID kernel.UUID) {
	n.logger.InfoContext(ctx, "request expired",
		slog.String("request_id", requestID.String()))
}

// NotifyWithdrawn publishes a courier withdrawing an offer.
func (n *LogNotifier) NotifyWithdrawn(ctx context.Context, offerID kernel.UUID) {
	n.logger.InfoContext(ctx, "offer withdrawn",
		slog.String("offer_id", offerID.String()))
}
