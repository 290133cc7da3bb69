package kernel_test

import (
	"testing"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	tests := []struct {
		name    string
		cents   int64
		wantErr bool
	}{
		{name: "positive_amount", cents: 4500, wantErr: false},
		{name: "one_cent", cents: 1, wantErr: false},
		{name: "zero_is_invalid", cents: 0, wantErr: true},
		{name: "negative_is_invalid", cents: -500, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := kernel.NewPrice(tt.cents)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}

			require.NoError(t, err)
			require.NoError(t, price.Validate())
			assert.Equal(t, tt.cents, price.Cents())
		})
	}
}

func TestPrice_Comparisons(t *testing.T) {
	lower, err := kernel.NewPrice(4500)
	require.NoError(t, err)
	higher, err := kernel.NewPrice(5000)
	require.NoError(t, err)
	same, err := kernel.NewPrice(4500)
	require.NoError(t, err)

	assert.True(t, lower.IsLowerThan(higher))
	assert.False(t, higher.IsLowerThan(lower))
	assert.True(t, lower.IsEqual(same))
	assert.False(t, lower.IsEqual(higher))
}

func TestPrice_String(t *testing.T) {
	price, err := kernel.NewPrice(4505)
	require.NoError(t, err)

	assert.Equal(t, "45.05", price.String())
}

func TestPrice_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var price kernel.Price

		require.ErrorIs(t, price.Validate(), kernel.ErrPriceIsNotConstructed)
	})
}
