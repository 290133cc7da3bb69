package commands

import (
	"context"
	"time"

	"matching/internal/core/ports"
)

// RejectOfferCommandHandler declines one pending offer without touching the
// request or its other offers.
type RejectOfferCommandHandler struct {
	uowFactory UoWFactory
	stats      ports.StatsRecorder
}

// NewRejectOfferCommandHandler creates a handler for offer rejection.
func NewRejectOfferCommandHandler(
	uowFactory UoWFactory,
	stats ports.StatsRecorder,
) RejectOfferCommandHandler {
	return RejectOfferCommandHandler{
		uowFactory: uowFactory,
		stats:      stats,
	}
}

// Handle rejects the offer via a conditional update. An offer that already
// left Pending reports a conflict instead of double-applying.
func (h RejectOfferCommandHandler) Handle(ctx context.Context, cmd RejectOfferCommand) error {
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

	target, err := uow.OfferRepository().Get(ctx, cmd.OfferID())
	if err != nil {
		return wrapStore(err)
	}

	rejected, err := uow.OfferRepository().RejectIfPending(ctx, cmd.OfferID(), now)
	if err != nil {
		return wrapStore(err)
	}
	if !rejected {
		return ErrAlreadyTerminal
	}

	if err = uow.Commit(ctx); err != nil {
		return wrapStore(err)
	}

	_ = h.stats.RecordTerminal(ctx, target.CourierID(), now.Sub(target.CreatedAt()))

	return nil
}
