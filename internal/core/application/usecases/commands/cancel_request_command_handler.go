package commands

import (
	"context"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"
	"matching/internal/core/domain/model/request"
	"matching/internal/core/ports"
)

// CancelRequestCommandHandler closes an open request and clears its
// negotiation in one transaction.
type CancelRequestCommandHandler struct {
	uowFactory UoWFactory
	stats      ports.StatsRecorder
}

// NewCancelRequestCommandHandler creates a handler for request cancellation.
func NewCancelRequestCommandHandler(
	uowFactory UoWFactory,
	stats ports.StatsRecorder,
) CancelRequestCommandHandler {
	return CancelRequestCommandHandler{
		uowFactory: uowFactory,
		stats:      stats,
	}
}

// Handle cancels the request via the Open -> Cancelled conditional update and
// force-rejects whatever pending offers it still carried. Losing the race to
// an acceptance reports the match as a conflict.
func (h CancelRequestCommandHandler) Handle(ctx context.Context, cmd CancelRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return wrapStore(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	req, err := uow.RequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return wrapStore(err)
	}

	offers, err := uow.OfferRepository().GetAllByRequest(ctx, cmd.RequestID())
	if err != nil {
		return wrapStore(err)
	}

	cancelled, err := uow.RequestRepository().UpdateStatusIf(
		ctx, cmd.RequestID(), request.Open, request.Cancelled,
	)
	if err != nil {
		return wrapStore(err)
	}
	if !cancelled {
		return requestConflict(req.Status())
	}

	// Zero except-id: there is no winner to spare on a cancellation.
	rejectedIDs, err := uow.OfferRepository().RejectAllPendingByRequest(
		ctx, cmd.RequestID(), kernel.UUID{}, now,
	)
	if err != nil {
		return wrapStore(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return wrapStore(err)
	}

	h.recordRejected(ctx, offers, rejectedIDs, now)

	return nil
}

func (h CancelRequestCommandHandler) recordRejected(
	ctx context.Context,
	offers []*offer.Offer,
	rejectedIDs []kernel.UUID,
	at time.Time,
) {
	rejected := make(map[kernel.UUID]struct{}, len(rejectedIDs))
	for _, id := range rejectedIDs {
		rejected[id] = struct{}{}
	}

	for _, o := range offers {
		if _, ok := rejected[o.ID()]; !ok {
			continue
		}
		_ = h.stats.RecordTerminal(ctx, o.CourierID(), at.Sub(o.CreatedAt()))
	}
}
