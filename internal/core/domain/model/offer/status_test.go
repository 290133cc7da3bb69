package offer_test

import (
	"testing"

	"matching/internal/core/domain/model/offer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  offer.Status
		wantErr bool
	}{
		{name: "pending", status: offer.Pending},
		{name: "accepted", status: offer.Accepted},
		{name: "rejected", status: offer.Rejected},
		{name: "expired", status: offer.Expired},
		{name: "withdrawn", status: offer.Withdrawn},
		{name: "unknown", status: offer.Unknown, wantErr: true},
		{name: "out_of_range", status: offer.Status(42), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", offer.Pending.String())
	assert.Equal(t, "Accepted", offer.Accepted.String())
	assert.Equal(t, "Rejected", offer.Rejected.String())
	assert.Equal(t, "Expired", offer.Expired.String())
	assert.Equal(t, "Withdrawn", offer.Withdrawn.String())
	assert.Equal(t, "Unknown", offer.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, offer.Pending.IsTerminal())
	assert.True(t, offer.Accepted.IsTerminal())
	assert.True(t, offer.Rejected.IsTerminal())
	assert.True(t, offer.Expired.IsTerminal())
	assert.True(t, offer.Withdrawn.IsTerminal())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("pending_reaches_every_terminal_state", func(t *testing.T) {
		next, err := offer.Pending.Accept()
		require.NoError(t, err)
		assert.Equal(t, offer.Accepted, next)

		next, err = offer.Pending.Reject()
		require.NoError(t, err)
		assert.Equal(t, offer.Rejected, next)

		next, err = offer.Pending.Expire()
		require.NoError(t, err)
		assert.Equal(t, offer.Expired, next)

		next, err = offer.Pending.Withdraw()
		require.NoError(t, err)
		assert.Equal(t, offer.Withdrawn, next)
	})

	t.Run("terminal_states_are_absorbing", func(t *testing.T) {
		terminals := []offer.Status{offer.Accepted, offer.Rejected, offer.Expired, offer.Withdrawn}
		for _, s := range terminals {
			_, err := s.Accept()
			require.Error(t, err, "Accept from %s", s)

			_, err = s.Reject()
			require.Error(t, err, "Reject from %s", s)

			_, err = s.Expire()
			require.Error(t, err, "Expire from %s", s)

			_, err = s.Withdraw()
			require.Error(t, err, "Withdraw from %s", s)
		}
	})
}

func TestTransportFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    offer.Transport
		wantErr bool
	}{
		{in: "motorcycle", want: offer.Motorcycle},
		{in: "car", want: offer.Car},
		{in: "bicycle", want: offer.Bicycle},
		{in: "walking", want: offer.Walking},
		{in: "other", want: offer.Other},
		{in: "unknown", wantErr: true},
		{in: "teleport", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := offer.TransportFromString(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestTransport_Validate(t *testing.T) {
	require.NoError(t, offer.Car.Validate())
	require.Error(t, offer.TransportUnknown.Validate())
	require.Error(t, offer.Transport(42).Validate())
}
