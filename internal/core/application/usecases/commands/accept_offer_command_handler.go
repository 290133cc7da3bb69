package commands

import (
	"context"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"
	"matching/internal/core/domain/model/request"
	"matching/internal/core/ports"
	"matching/internal/pkg/errs"
)

// AcceptOfferCommandHandler performs the atomic match: the request's
// Open -> Matched transition, the winner's Pending -> Accepted transition and
// the mass-rejection of sibling pending offers commit in one transaction.
// Both status transitions are conditional updates, so of any number of
// concurrent acceptances exactly one commits and the rest report conflicts.
type AcceptOfferCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.MatchingNotifier
	stats      ports.StatsRecorder
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
func NewAcceptOfferCommandHandler(
	uowFactory UoWFactory,
	notifier ports.MatchingNotifier,
	stats ports.StatsRecorder,
) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		stats:      stats,
	}
}

// Handle accepts the offer as the request's winner. On a lost race the
// returned error wraps ErrConflict with the status that beat us. Notification
// and stats recording run only after the transaction commits.
func (h AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) error {
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

	winner, err := uow.OfferRepository().Get(ctx, cmd.OfferID())
	if err != nil {
		return wrapStore(err)
	}
	if !winner.RequestID().IsEqual(cmd.RequestID()) {
		return errs.NewObjectNotFoundError("offerID", cmd.OfferID())
	}

	siblings, err := uow.OfferRepository().GetAllByRequest(ctx, cmd.RequestID())
	if err != nil {
		return wrapStore(err)
	}

	matched, err := uow.RequestRepository().UpdateStatusIf(
		ctx, cmd.RequestID(), request.Open, request.Matched,
	)
	if err != nil {
		return wrapStore(err)
	}
	if !matched {
		return requestConflict(req.Status())
	}

	accepted, err := uow.OfferRepository().AcceptIfPending(ctx, cmd.OfferID(), now)
	if err != nil {
		return wrapStore(err)
	}
	if !accepted {
		// Rollback undoes the request transition taken above.
		return ErrAlreadyTerminal
	}

	rejectedIDs, err := uow.OfferRepository().RejectAllPendingByRequest(
		ctx, cmd.RequestID(), cmd.OfferID(), now,
	)
	if err != nil {
		return wrapStore(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return wrapStore(err)
	}

	h.notifier.NotifyMatched(ctx, cmd.RequestID(), cmd.OfferID(), rejectedIDs)
	h.recordStats(ctx, winner, siblings, rejectedIDs, now)

	return nil
}

// requestConflict maps the request's pre-transaction status snapshot to a
// conflict reason. The snapshot can lag the row that won the race; when it
// still says Open, a competing match is the only transition a customer-facing
// acceptance can lose to.
func requestConflict(snapshot request.Status) error {
	switch snapshot {
	case request.Cancelled:
		return ErrAlreadyCancelled
	case request.Expired:
		return ErrAlreadyTerminal
	default:
		return ErrAlreadyMatched
	}
}

// recordStats is best-effort bookkeeping after the commit: the winner's
// acceptance and one terminal sample per force-rejected sibling.
func (h AcceptOfferCommandHandler) recordStats(
	ctx context.Context,
	winner *offer.Offer,
	siblings []*offer.Offer,
	rejectedIDs []kernel.UUID,
	at time.Time,
) {
	_ = h.stats.RecordAccepted(ctx, winner.CourierID(), at.Sub(winner.CreatedAt()))

	rejected := make(map[kernel.UUID]struct{}, len(rejectedIDs))
	for _, id := range rejectedIDs {
		rejected[id] = struct{}{}
	}

	for _, sibling := range siblings {
		if _, ok := rejected[sibling.ID()]; !ok {
			continue
		}
		_ = h.stats.RecordTerminal(ctx, sibling.CourierID(), at.Sub(sibling.CreatedAt()))
	}
}
