package commands

import (
	"context"
	"time"

	"matching/internal/core/ports"
)

// WithdrawOfferCommandHandler retracts a courier's pending offer and fans the
// withdrawal out to interested listeners.
type WithdrawOfferCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.MatchingNotifier
	stats      ports.StatsRecorder
}

// NewWithdrawOfferCommandHandler creates a handler for offer withdrawal.
func NewWithdrawOfferCommandHandler(
	uowFactory UoWFactory,
	notifier ports.MatchingNotifier,
	stats ports.StatsRecorder,
) WithdrawOfferCommandHandler {
	return WithdrawOfferCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		stats:      stats,
	}
}

// Handle withdraws the offer via a conditional update, stamping the reason.
// An offer that already left Pending (accepted a heartbeat earlier, say)
// reports a conflict.
func (h WithdrawOfferCommandHandler) Handle(ctx context.Context, cmd WithdrawOfferCommand) error {
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

	withdrawn, err := uow.OfferRepository().WithdrawIfPending(ctx, cmd.OfferID(), cmd.Reason(), now)
	if err != nil {
		return wrapStore(err)
	}
	if !withdrawn {
		return ErrAlreadyTerminal
	}

	if err = uow.Commit(ctx); err != nil {
		return wrapStore(err)
	}

	h.notifier.NotifyWithdrawn(ctx, cmd.OfferID())
	_ = h.stats.RecordTerminal(ctx, target.CourierID(), now.Sub(target.CreatedAt()))

	return nil
}
