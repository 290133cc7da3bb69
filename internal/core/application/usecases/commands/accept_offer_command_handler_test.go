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

type acceptFixture struct {
	requestID   kernel.UUID
	winner      *offer.Offer
	sibling     *offer.Offer
	requestRepo *MockRequestRepository
	offerRepo   *MockOfferRepository
	uow         *MockUoW
	factory     *MockUoWFactory
	notifier    *MockNotifier
	stats       *MockStatsRecorder
	handler     commands.AcceptOfferCommandHandler
	cmd         commands.AcceptOfferCommand
}

func newAcceptFixture(t *testing.T) *acceptFixture {
	t.Helper()
	f := &acceptFixture{
		requestID:   kernel.NewUUID(),
		requestRepo: new(MockRequestRepository),
		offerRepo:   new(MockOfferRepository),
		uow:         new(MockUoW),
		factory:     new(MockUoWFactory),
		notifier:    new(MockNotifier),
		stats:       new(MockStatsRecorder),
	}
	f.winner = newPendingOffer(t, f.requestID, kernel.NewUUID())
	f.sibling = newPendingOffer(t, f.requestID, kernel.NewUUID())

	cmd, err := commands.NewAcceptOfferCommand(f.requestID, f.winner.ID())
	require.NoError(t, err)
	f.cmd = cmd

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("RequestRepository").Return(f.requestRepo)
	f.uow.On("OfferRepository").Return(f.offerRepo)
	f.handler = commands.NewAcceptOfferCommandHandler(f.factory, f.notifier, f.stats)
	return f
}

func TestAcceptOfferCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newAcceptFixture(t)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.requestRepo.On("Get", mock.Anything, f.requestID).Return(newOpenRequest(t), nil).Once()
	f.offerRepo.On("Get", mock.Anything, f.winner.ID()).Return(f.winner, nil).Once()
	f.offerRepo.On("GetAllByRequest", mock.Anything, f.requestID).
		Return([]*offer.Offer{f.winner, f.sibling}, nil).Once()
	f.requestRepo.On("UpdateStatusIf", mock.Anything, f.requestID, request.Open, request.Matched).
		Return(true, nil).Once()
	f.offerRepo.On("AcceptIfPending", mock.Anything, f.winner.ID(), mock.AnythingOfType("time.Time")).
		Return(true, nil).Once()
	f.offerRepo.On("RejectAllPendingByRequest", mock.Anything, f.requestID, f.winner.ID(),
		mock.AnythingOfType("time.Time")).Return([]kernel.UUID{f.sibling.ID()}, nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	f.notifier.On("NotifyMatched", mock.Anything, f.requestID, f.winner.ID(),
		[]kernel.UUID{f.sibling.ID()}).Once()
	f.stats.On("RecordAccepted", mock.Anything, f.winner.CourierID(),
		mock.AnythingOfType("time.Duration")).Return(nil).Once()
	f.stats.On("RecordTerminal", mock.Anything, f.sibling.CourierID(),
		mock.AnythingOfType("time.Duration")).Return(nil).Once()

	require.NoError(t, f.handler.Handle(ctx, f.cmd))
	f.requestRepo.AssertExpectations(t)
	f.offerRepo.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.stats.AssertExpectations(t)
}

func TestAcceptOfferCommandHandler_Handle_LostRaceToAnotherAcceptance(t *testing.T) {
	ctx := t.Context()
	f := newAcceptFixture(t)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.requestRepo.On("Get", mock.Anything, f.requestID).Return(newOpenRequest(t), nil).Once()
	f.offerRepo.On("Get", mock.Anything, f.winner.ID()).Return(f.winner, nil).Once()
	f.offerRepo.On("GetAllByRequest", mock.Anything, f.requestID).
		Return([]*offer.Offer{f.winner}, nil).Once()
	f.requestRepo.On("UpdateStatusIf", mock.Anything, f.requestID, request.Open, request.Matched).
		Return(false, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err := f.handler.Handle(ctx, f.cmd)
	require.ErrorIs(t, err, commands.ErrAlreadyMatched)
	require.ErrorIs(t, err, commands.ErrConflict)
	f.offerRepo.AssertNotCalled(t, "AcceptIfPending", mock.Anything, mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyMatched", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptOfferCommandHandler_Handle_RequestAlreadyCancelled(t *testing.T) {
	ctx := t.Context()
	f := newAcceptFixture(t)

	cancelled := newOpenRequest(t)
	require.NoError(t, cancelled.Cancel())

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.requestRepo.On("Get", mock.Anything, f.requestID).Return(cancelled, nil).Once()
	f.offerRepo.On("Get", mock.Anything, f.winner.ID()).Return(f.winner, nil).Once()
	f.offerRepo.On("GetAllByRequest", mock.Anything, f.requestID).
		Return([]*offer.Offer{f.winner}, nil).Once()
	f.requestRepo.On("UpdateStatusIf", mock.Anything, f.requestID, request.Open, request.Matched).
		Return(false, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err := f.handler.Handle(ctx, f.cmd)
	require.ErrorIs(t, err, commands.ErrAlreadyCancelled)
}

func TestAcceptOfferCommandHandler_Handle_OfferNoLongerPending(t *testing.T) {
	ctx := t.Context()
	f := newAcceptFixture(t)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.requestRepo.On("Get", mock.Anything, f.requestID).Return(newOpenRequest(t), nil).Once()
	f.offerRepo.On("Get", mock.Anything, f.winner.ID()).Return(f.winner, nil).Once()
	f.offerRepo.On("GetAllByRequest", mock.Anything, f.requestID).
		Return([]*offer.Offer{f.winner}, nil).Once()
	f.requestRepo.On("UpdateStatusIf", mock.Anything, f.requestID, request.Open, request.Matched).
		Return(true, nil).Once()
	f.offerRepo.On("AcceptIfPending", mock.Anything, f.winner.ID(), mock.AnythingOfType("time.Time")).
		Return(false, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err := f.handler.Handle(ctx, f.cmd)
	require.ErrorIs(t, err, commands.ErrAlreadyTerminal)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptOfferCommandHandler_Handle_OfferFromAnotherRequest(t *testing.T) {
	ctx := t.Context()
	f := newAcceptFixture(t)

	stray := newPendingOffer(t, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewAcceptOfferCommand(f.requestID, stray.ID())
	require.NoError(t, err)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.requestRepo.On("Get", mock.Anything, f.requestID).Return(newOpenRequest(t), nil).Once()
	f.offerRepo.On("Get", mock.Anything, stray.ID()).Return(stray, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err = f.handler.Handle(ctx, cmd)
	require.Error(t, err)
	f.requestRepo.AssertNotCalled(t, "UpdateStatusIf",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
