package request_test

import (
	"testing"

	"matching/internal/core/domain/model/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  request.Status
		wantErr bool
	}{
		{name: "open", status: request.Open},
		{name: "matched", status: request.Matched},
		{name: "cancelled", status: request.Cancelled},
		{name: "expired", status: request.Expired},
		{name: "unknown", status: request.Unknown, wantErr: true},
		{name: "out_of_range", status: request.Status(42), wantErr: true},
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
	assert.Equal(t, "Open", request.Open.String())
	assert.Equal(t, "Matched", request.Matched.String())
	assert.Equal(t, "Cancelled", request.Cancelled.String())
	assert.Equal(t, "Expired", request.Expired.String())
	assert.Equal(t, "Unknown", request.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, request.Open.IsTerminal())
	assert.True(t, request.Matched.IsTerminal())
	assert.True(t, request.Cancelled.IsTerminal())
	assert.True(t, request.Expired.IsTerminal())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("open_can_match", func(t *testing.T) {
		next, err := request.Open.Match()
		require.NoError(t, err)
		assert.Equal(t, request.Matched, next)
	})

	t.Run("open_can_cancel", func(t *testing.T) {
		next, err := request.Open.Cancel()
		require.NoError(t, err)
		assert.Equal(t, request.Cancelled, next)
	})

	t.Run("open_can_expire", func(t *testing.T) {
		next, err := request.Open.Expire()
		require.NoError(t, err)
		assert.Equal(t, request.Expired, next)
	})

	t.Run("terminal_states_are_absorbing", func(t *testing.T) {
		for _, s := range []request.Status{request.Matched, request.Cancelled, request.Expired} {
			_, err := s.Match()
			require.Error(t, err, "Match from %s", s)

			_, err = s.Cancel()
			require.Error(t, err, "Cancel from %s", s)

			_, err = s.Expire()
			require.Error(t, err, "Expire from %s", s)
		}
	})
}
