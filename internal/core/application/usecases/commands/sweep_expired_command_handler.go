package commands

import (
	"context"
	"log/slog"
	"time"

	"matching/internal/core/domain/model/request"
	"matching/internal/core/ports"
)

// SweepExpiredCommandHandler runs the periodic expiry pass: first pending
// offers past their deadline, then open requests past theirs that have no
// pending offers left.
//
// Every transition is its own conditional update outside any wrapping
// transaction, so one problematic row never blocks the rest of the sweep and
// a sweep racing a live acceptance simply loses that row.
type SweepExpiredCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.MatchingNotifier
	stats      ports.StatsRecorder
	logger     *slog.Logger
}

// NewSweepExpiredCommandHandler creates a handler for the expiry sweep.
func NewSweepExpiredCommandHandler(
	uowFactory UoWFactory,
	notifier ports.MatchingNotifier,
	stats ports.StatsRecorder,
	logger *slog.Logger,
) SweepExpiredCommandHandler {
	return SweepExpiredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		stats:      stats,
		logger:     logger,
	}
}

// Handle sweeps expired offers and requests. Per-row failures are logged and
// skipped; only a failure to list candidates aborts the pass.
func (h SweepExpiredCommandHandler) Handle(ctx context.Context, cmd SweepExpiredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	uow := h.uowFactory.Create()

	if err := h.sweepOffers(ctx, uow, now); err != nil {
		return err
	}

	return h.sweepRequests(ctx, uow, now)
}

func (h SweepExpiredCommandHandler) sweepOffers(ctx context.Context, uow UoW, now time.Time) error {
	expired, err := uow.OfferRepository().GetAllExpiredPending(ctx, now)
	if err != nil {
		return wrapStore(err)
	}

	for _, o := range expired {
		ok, err := uow.OfferRepository().ExpireIfPending(ctx, o.ID())
		if err != nil {
			h.logger.Error("expiry sweep: offer transition failed",
				slog.String("offer_id", o.ID().String()), slog.Any("error", err))
			continue
		}
		if !ok {
			// Accepted, rejected, or withdrawn between listing and the update.
			continue
		}

		h.notifier.NotifyOfferExpired(ctx, o.ID())
		_ = h.stats.RecordTerminal(ctx, o.CourierID(), now.Sub(o.CreatedAt()))
	}

	return nil
}

func (h SweepExpiredCommandHandler) sweepRequests(ctx context.Context, uow UoW, now time.Time) error {
	expired, err := uow.RequestRepository().GetExpiredOpenWithoutPendingOffers(ctx, now)
	if err != nil {
		return wrapStore(err)
	}

	for _, r := range expired {
		ok, err := uow.RequestRepository().UpdateStatusIf(ctx, r.ID(), request.Open, request.Expired)
		if err != nil {
			h.logger.Error("expiry sweep: request transition failed",
				slog.String("request_id", r.ID().String()), slog.Any("error", err))
			continue
		}
		if !ok {
			continue
		}

		h.notifier.NotifyRequestExpired(ctx, r.ID())
	}

	return nil
}
