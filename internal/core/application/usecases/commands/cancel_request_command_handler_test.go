package commands_test

import (
	"testing"

	"matching/internal/core/application/usecases/commands"
	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"
	"matching/internal/core/domain/model/request"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	pending := newPendingOffer(t, requestID, kernel.NewUUID())
	cmd, err := commands.NewCancelRequestCommand(requestID)
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo)
	uow.On("OfferRepository").Return(offerRepo)
	requestRepo.On("Get", mock.Anything, requestID).Return(newOpenRequest(t), nil).Once()
	offerRepo.On("GetAllByRequest", mock.Anything, requestID).
		Return([]*offer.Offer{pending}, nil).Once()
	requestRepo.On("UpdateStatusIf", mock.Anything, requestID, request.Open, request.Cancelled).
		Return(true, nil).Once()
	offerRepo.On("RejectAllPendingByRequest", mock.Anything, requestID, kernel.UUID{},
		mock.AnythingOfType("time.Time")).Return([]kernel.UUID{pending.ID()}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	stats := new(MockStatsRecorder)
	stats.On("RecordTerminal", mock.Anything, pending.CourierID(),
		mock.AnythingOfType("time.Duration")).Return(nil).Once()

	h := commands.NewCancelRequestCommandHandler(factory, stats)
	require.NoError(t, h.Handle(ctx, cmd))
	requestRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
	stats.AssertExpectations(t)
}

func TestCancelRequestCommandHandler_Handle_AlreadyMatched(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	cmd, err := commands.NewCancelRequestCommand(requestID)
	require.NoError(t, err)

	matched := newOpenRequest(t)
	require.NoError(t, matched.Match())

	requestRepo := new(MockRequestRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo)
	uow.On("OfferRepository").Return(offerRepo)
	requestRepo.On("Get", mock.Anything, requestID).Return(matched, nil).Once()
	offerRepo.On("GetAllByRequest", mock.Anything, requestID).Return(nil, nil).Once()
	requestRepo.On("UpdateStatusIf", mock.Anything, requestID, request.Open, request.Cancelled).
		Return(false, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	stats := new(MockStatsRecorder)
	h := commands.NewCancelRequestCommandHandler(factory, stats)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrAlreadyMatched)
	offerRepo.AssertNotCalled(t, "RejectAllPendingByRequest",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
