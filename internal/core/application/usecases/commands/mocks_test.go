package commands_test

import (
	"context"
	"testing"
	"time"

	"matching/internal/core/application/usecases/commands"
	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"
	"matching/internal/core/domain/model/request"
	"matching/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	var r *request.Request
	if v := args.Get(0); v != nil {
		r = v.(*request.Request)
	}
	return r, args.Error(1)
}

func (m *MockRequestRepository) UpdateStatusIf(
	ctx context.Context, id kernel.UUID, from, to request.Status,
) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockRequestRepository) GetExpiredOpenWithoutPendingOffers(
	ctx context.Context, now time.Time,
) ([]*request.Request, error) {
	args := m.Called(ctx, now)
	var rs []*request.Request
	if v := args.Get(0); v != nil {
		rs = v.([]*request.Request)
	}
	return rs, args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, o *offer.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	var o *offer.Offer
	if v := args.Get(0); v != nil {
		o = v.(*offer.Offer)
	}
	return o, args.Error(1)
}

func (m *MockOfferRepository) GetAllByRequest(
	ctx context.Context, requestID kernel.UUID,
) ([]*offer.Offer, error) {
	args := m.Called(ctx, requestID)
	var os []*offer.Offer
	if v := args.Get(0); v != nil {
		os = v.([]*offer.Offer)
	}
	return os, args.Error(1)
}

func (m *MockOfferRepository) AcceptIfPending(
	ctx context.Context, id kernel.UUID, at time.Time,
) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockOfferRepository) RejectIfPending(
	ctx context.Context, id kernel.UUID, at time.Time,
) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockOfferRepository) WithdrawIfPending(
	ctx context.Context, id kernel.UUID, reason string, at time.Time,
) (bool, error) {
	args := m.Called(ctx, id, reason, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockOfferRepository) ExpireIfPending(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOfferRepository) RejectAllPendingByRequest(
	ctx context.Context, requestID, exceptOfferID kernel.UUID, at time.Time,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, requestID, exceptOfferID, at)
	var ids []kernel.UUID
	if v := args.Get(0); v != nil {
		ids = v.([]kernel.UUID)
	}
	return ids, args.Error(1)
}

func (m *MockOfferRepository) GetAllExpiredPending(
	ctx context.Context, now time.Time,
) ([]*offer.Offer, error) {
	args := m.Called(ctx, now)
	var os []*offer.Offer
	if v := args.Get(0); v != nil {
		os = v.([]*offer.Offer)
	}
	return os, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRequestUoW struct{ mock.Mock }

func (m *MockRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyMatched(
	ctx context.Context, requestID, winningOfferID kernel.UUID, rejectedOfferIDs []kernel.UUID,
) {
	m.Called(ctx, requestID, winningOfferID, rejectedOfferIDs)
}

func (m *MockNotifier) NotifyOfferExpired(ctx context.Context, offerID kernel.UUID) {
	m.Called(ctx, offerID)
}

func (m *MockNotifier) NotifyRequestExpired(ctx context.Context, requestID kernel.UUID) {
	m.Called(ctx, requestID)
}

func (m *MockNotifier) NotifyWithdrawn(ctx context.Context, offerID kernel.UUID) {
	m.Called(ctx, offerID)
}

type MockStatsRecorder struct{ mock.Mock }

func (m *MockStatsRecorder) RecordAccepted(
	ctx context.Context, courierID kernel.UUID, responseTime time.Duration,
) error {
	args := m.Called(ctx, courierID, responseTime)
	return args.Error(0)
}

func (m *MockStatsRecorder) RecordTerminal(
	ctx context.Context, courierID kernel.UUID, responseTime time.Duration,
) error {
	args := m.Called(ctx, courierID, responseTime)
	return args.Error(0)
}

func mustPrice(t *testing.T, cents int64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(cents)
	require.NoError(t, err)
	return price
}

func validTerms(t *testing.T) offer.Terms {
	t.Helper()
	return offer.Terms{
		Price:              mustPrice(t, 4500),
		PickupEtaMinutes:   15,
		DeliveryEtaMinutes: 45,
		Message:            "can pick up right away",
		Transport:          offer.Motorcycle,
	}
}

func newOpenRequest(t *testing.T) *request.Request {
	t.Helper()
	req, err := request.NewRequest(
		kernel.NewUUID(), kernel.NewUUID(),
		"12 Pickup Ln", "34 Dropoff Ave", "small parcel",
		time.Now(), time.Now().Add(time.Hour),
	)
	require.NoError(t, err)
	return req
}

func newPendingOffer(t *testing.T, requestID, courierID kernel.UUID) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(
		kernel.NewUUID(), requestID, courierID, validTerms(t),
		time.Now().Add(-time.Minute), time.Now().Add(time.Hour),
	)
	require.NoError(t, err)
	return o
}
