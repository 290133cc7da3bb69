package notify

import (
	"context"
	"log/slog"
	"sync"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/ports"
)

// DefaultBufferSize is the queue depth used when the configured buffer is not
// positive.
const DefaultBufferSize = 256

// AsyncNotifier decouples the core from a slow downstream notifier. Events
// are queued on a bounded channel and delivered by a single worker goroutine;
// when the queue is full the event is dropped and logged rather than blocking
// the caller. A dropped notification is acceptable, a blocked acceptance
// transaction is not.
type AsyncNotifier struct {
	next   ports.MatchingNotifier
	logger *slog.Logger

	events chan func(context.Context)
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// NewAsyncNotifier creates an async wrapper around next with the given queue
// depth and starts its delivery worker.
func NewAsyncNotifier(next ports.MatchingNotifier, bufferSize int, logger *slog.Logger) *AsyncNotifier {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	n := &AsyncNotifier{
		next:   next,
		logger: logger.With("component", "async_notifier"),
		events: make(chan func(context.Context), bufferSize),
		done:   make(chan struct{}),
	}

	n.wg.Add(1)
	go n.deliver()

	return n
}

// Close stops accepting events, delivers what is already queued, and waits
// for the worker to drain.
func (n *AsyncNotifier) Close() {
	n.once.Do(func() {
		close(n.done)
		n.wg.Wait()
	})
}

// NotifyMatched queues a matched event for delivery.
func (n *AsyncNotifier) NotifyMatched(
	ctx context.Context,
	requestID, winningOfferID kernel.UUID,
	rejectedOfferIDs []kernel.UUID,
) {
	n.enqueue(ctx, "matched", func(ctx context.Context) {
		n.next.NotifyMatched(ctx, requestID, winningOfferID, rejectedOfferIDs)
	})
}

// NotifyOfferExpired queues an offer expiry event for delivery.
func (n *AsyncNotifier) NotifyOfferExpired(ctx context.Context, offerID kernel.UUID) {
	n.enqueue(ctx, "offer_expired", func(ctx context.Context) {
		n.next.NotifyOfferExpired(ctx, offerID)
	})
}

// NotifyRequestExpired queues a request expiry event for delivery.
func (n *AsyncNotifier) NotifyRequestExpired(ctx context.Context, requestID kernel.UUID) {
	n.enqueue(ctx, "request_expired", func(ctx context.Context) {
		n.next.NotifyRequestExpired(ctx, requestID)
	})
}

// NotifyWithdrawn queues a withdrawal event for delivery.
func (n *AsyncNotifier) NotifyWithdrawn(ctx context.Context, offerID kernel.UUID) {
	n.enqueue(ctx, "withdrawn", func(ctx context.Context) {
		n.next.NotifyWithdrawn(ctx, offerID)
	})
}

func (n *AsyncNotifier) enqueue(ctx context.Context, event string, fn func(context.Context)) {
	select {
	case n.events <- fn:
	default:
		n.logger.WarnContext(ctx, "notification queue full, event dropped",
			slog.String("event", event))
	}
}

func (n *AsyncNotifier) deliver() {
	defer n.wg.Done()

	for {
		select {
		case fn := <-n.events:
			fn(context.Background())
		case <-n.done:
			// Drain whatever was queued before Close.
			for {
				select {
				case fn := <-n.events:
					fn(context.Background())
				default:
					return
				}
			}
		}
	}
}
