package commands

import (
	"context"
	"time"

	"matching/internal/core/domain/model/offer"
	"matching/internal/core/domain/services"
)

// CounterOfferCommandHandler validates and stores a counter-offer answering
// an existing pending offer.
type CounterOfferCommandHandler struct {
	uowFactory UoWFactory
	validator  services.OfferValidator
}

// NewCounterOfferCommandHandler creates a handler for counter-offer submission.
func NewCounterOfferCommandHandler(
	uowFactory UoWFactory,
	validator services.OfferValidator,
) CounterOfferCommandHandler {
	return CounterOfferCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle resolves the original offer to its request, builds the counter-offer
// and runs it through the shared submission pipeline. The original stays
// Pending: countering never mutates the chain it answers.
func (h CounterOfferCommandHandler) Handle(ctx context.Context, cmd CounterOfferCommand) error {
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

	original, err := uow.OfferRepository().Get(ctx, cmd.OriginalOfferID())
	if err != nil {
		return wrapStore(err)
	}

	candidate, err := offer.NewCounterOffer(
		cmd.OfferID(),
		original.RequestID(),
		cmd.CourierID(),
		cmd.OriginalOfferID(),
		cmd.Terms(),
		now,
		cmd.ValidUntil(),
	)
	if err != nil {
		return err
	}

	if err = placeOffer(ctx, uow, h.validator, candidate, now); err != nil {
		return err
	}

	return wrapStore(uow.Commit(ctx))
}
