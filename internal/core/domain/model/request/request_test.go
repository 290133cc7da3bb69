package request_test

import (
	"testing"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/request"
	"matching/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest(t *testing.T) *request.Request {
	t.Helper()

	now := time.Now()
	r, err := request.NewRequest(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"12 Pickup Lane",
		"34 Dropoff Road",
		"small parcel",
		now,
		now.Add(30*time.Minute),
	)
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	t.Run("creates_open_request", func(t *testing.T) {
		r := validRequest(t)

		require.NoError(t, r.Validate())
		assert.Equal(t, request.Open, r.Status())
		assert.Equal(t, "12 Pickup Lane", r.PickupAddress())
		assert.Equal(t, "34 Dropoff Road", r.DropoffAddress())
		assert.Equal(t, "small parcel", r.ItemDescription())
	})

	t.Run("rejects_invalid_ids", func(t *testing.T) {
		now := time.Now()
		_, err := request.NewRequest(
			kernel.UUID{}, kernel.NewUUID(),
			"a", "b", "c", now, now.Add(time.Hour),
		)
		require.Error(t, err)

		_, err = request.NewRequest(
			kernel.NewUUID(), kernel.UUID{},
			"a", "b", "c", now, now.Add(time.Hour),
		)
		require.Error(t, err)
	})

	t.Run("rejects_empty_addresses_and_description", func(t *testing.T) {
		now := time.Now()
		cases := []struct{ pickup, dropoff, item string }{
			{"", "b", "c"},
			{"a", "", "c"},
			{"a", "b", ""},
		}
		for _, c := range cases {
			_, err := request.NewRequest(
				kernel.NewUUID(), kernel.NewUUID(),
				c.pickup, c.dropoff, c.item, now, now.Add(time.Hour),
			)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("rejects_deadline_before_creation", func(t *testing.T) {
		now := time.Now()
		_, err := request.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(),
			"a", "b", "c", now, now.Add(-time.Minute),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreRequest(t *testing.T) {
	t.Run("restores_with_explicit_status", func(t *testing.T) {
		now := time.Now()
		r, err := request.RestoreRequest(
			kernel.NewUUID(), kernel.NewUUID(),
			"a", "b", "c", now, now.Add(time.Hour), request.Matched,
		)

		require.NoError(t, err)
		assert.Equal(t, request.Matched, r.Status())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		now := time.Now()
		_, err := request.RestoreRequest(
			kernel.NewUUID(), kernel.NewUUID(),
			"a", "b", "c", now, now.Add(time.Hour), request.Unknown,
		)

		require.Error(t, err)
	})
}

func TestRequest_Validate(t *testing.T) {
	t.Run("zero_value_fails", func(t *testing.T) {
		var r request.Request

		require.ErrorIs(t, r.Validate(), request.ErrRequestIsNotConstructed)
	})

	t.Run("nil_fails", func(t *testing.T) {
		var r *request.Request

		require.ErrorIs(t, r.Validate(), request.ErrRequestIsNotConstructed)
	})
}

func TestRequest_Transitions(t *testing.T) {
	t.Run("match_from_open", func(t *testing.T) {
		r := validRequest(t)

		require.NoError(t, r.Match())
		assert.Equal(t, request.Matched, r.Status())
	})

	t.Run("cancel_from_open", func(t *testing.T) {
		r := validRequest(t)

		require.NoError(t, r.Cancel())
		assert.Equal(t, request.Cancelled, r.Status())
	})

	t.Run("expire_from_open", func(t *testing.T) {
		r := validRequest(t)

		require.NoError(t, r.Expire())
		assert.Equal(t, request.Expired, r.Status())
	})

	t.Run("matched_is_terminal", func(t *testing.T) {
		r := validRequest(t)
		require.NoError(t, r.Match())

		require.Error(t, r.Match())
		require.Error(t, r.Cancel())
		require.Error(t, r.Expire())
		assert.Equal(t, request.Matched, r.Status())
	})
}

func TestRequest_IsDeadlinePassed(t *testing.T) {
	r := validRequest(t)

	assert.False(t, r.IsDeadlinePassed(r.CreatedAt()))
	assert.True(t, r.IsDeadlinePassed(r.ValidUntil().Add(time.Second)))
}
