package commands

import (
	"context"
	"time"

	"matching/internal/core/domain/model/request"
)

// CreateRequestCommandHandler persists new delivery requests in Open status.
type CreateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateRequestCommandHandler creates a handler for request registration.
func NewCreateRequestCommandHandler(uowFactory RequestUoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the command, builds the Open request aggregate, and
// persists it transactionally.
func (h CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	req, err := request.NewRequest(
		cmd.RequestID(),
		cmd.CustomerID(),
		cmd.PickupAddress(),
		cmd.DropoffAddress(),
		cmd.ItemDescription(),
		time.Now(),
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

	if err = uow.RequestRepository().Add(ctx, req); err != nil {
		return wrapStore(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return wrapStore(err)
	}

	return nil
}
