package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoyaltyShare(t *testing.T) {
	tests := []struct {
		name       string
		price      uint64
		percentage uint64
		want       uint64
	}{
		{"twenty percent", 100, 20, 20},
		{"truncates toward zero", 99, 33, 32},
		{"below one unit", 3, 20, 0},
		{"zero price", 0, 50, 0},
		{"zero percentage", 1000, 0, 0},
		{"basic path above hundred", 10, 150, 15},
		{"no intermediate overflow", math.MaxInt64, 50, math.MaxInt64 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := royaltyShare(tt.price, tt.percentage)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoyaltyShare_Overflow(t *testing.T) {
	_, err := royaltyShare(math.MaxUint64, 200)
	assert.ErrorIs(t, err, errArithmeticOverflow)
}

func TestCheckedAdd(t *testing.T) {
	sum, err := checkedAdd(40, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), sum)

	sum, err = checkedAdd(math.MaxInt64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxInt64), sum)

	_, err = checkedAdd(math.MaxInt64, 1)
	assert.ErrorIs(t, err, errArithmeticOverflow)

	_, err = checkedAdd(math.MaxUint64, math.MaxUint64)
	assert.ErrorIs(t, err, errArithmeticOverflow)
}
