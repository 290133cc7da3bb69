package commands

import (
	"context"
	"time"

	"matching/internal/core/domain/model/offer"
	"matching/internal/core/domain/services"
)

// withdrawSupersededReason is stamped on a courier's prior pending offer when
// the duplicate policy lets a fresh submission replace it.
const withdrawSupersededReason = "superseded by a newer offer from the same courier"

// SubmitOfferCommandHandler validates and stores a courier's direct offer.
type SubmitOfferCommandHandler struct {
	uowFactory UoWFactory
	validator  services.OfferValidator
}

// NewSubmitOfferCommandHandler creates a handler for direct offer submission.
func NewSubmitOfferCommandHandler(
	uowFactory UoWFactory,
	validator services.OfferValidator,
) SubmitOfferCommandHandler {
	return SubmitOfferCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle builds the Pending offer, validates it against the request and its
// existing offers, and persists it. Under the supersede policy the courier's
// prior pending offer is withdrawn in the same transaction.
func (h SubmitOfferCommandHandler) Handle(ctx context.Context, cmd SubmitOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	candidate, err := offer.NewOffer(
		cmd.OfferID(),
		cmd.RequestID(),
		cmd.CourierID(),
		cmd.Terms(),
		now,
		cmd.ValidUntil(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return wrapStore(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = placeOffer(ctx, uow, h.validator, candidate, now); err != nil {
		return err
	}

	return wrapStore(uow.Commit(ctx))
}

// placeOffer runs the shared submission pipeline for direct and counter
// offers inside the caller's transaction: load the request and its offers,
// validate the candidate, resolve a superseded duplicate, store.
func placeOffer(
	ctx context.Context,
	uow UoW,
	validator services.OfferValidator,
	candidate *offer.Offer,
	now time.Time,
) error {
	req, err := uow.RequestRepository().Get(ctx, candidate.RequestID())
	if err != nil {
		return wrapStore(err)
	}

	existing, err := uow.OfferRepository().GetAllByRequest(ctx, candidate.RequestID())
	if err != nil {
		return wrapStore(err)
	}

	if err = validator.Validate(req, existing, candidate, now); err != nil {
		return err
	}

	if validator.DuplicatePolicy() == services.DuplicatePolicySupersede {
		if prior := validator.PendingOfferBy(existing, candidate.CourierID()); prior != nil {
			// A lost race here is harmless: the offer left Pending by other
			// means, and the fresh offer still goes in.
			if _, err = uow.OfferRepository().WithdrawIfPending(
				ctx, prior.ID(), withdrawSupersededReason, now,
			); err != nil {
				return wrapStore(err)
			}
		}
	}

	if err = uow.OfferRepository().Add(ctx, candidate); err != nil {
		return wrapStore(err)
	}

	return nil
}
