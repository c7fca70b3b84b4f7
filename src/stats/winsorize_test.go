package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinsorizeOneToHundred(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}

	out := Winsorize(values, 1)
	require.Len(t, out, 100)

	// only the single lowest and single highest value move
	assert.Equal(t, 2.0, out[0])
	assert.Equal(t, 99.0, out[99])
	for i := 1; i < 99; i++ {
		assert.Equal(t, values[i], out[i], "index %d must be unchanged", i)
	}
}

func TestWinsorizeIdempotent(t *testing.T) {
	values := []float64{-120, -3, 0, 4, 5, 5, 7, 9, 14, 22, 31, 45, 60, 250, 900}

	once := Winsorize(values, 5)
	twice := Winsorize(once, 5)
	assert.Equal(t, once, twice)
}

func TestWinsorizeIgnoresNaN(t *testing.T) {
	values := []float64{1, math.NaN(), 50, 100}
	out := Winsorize(values, 10)

	assert.True(t, math.IsNaN(out[1]))
	// bounds come from the finite values only
	assert.False(t, math.IsNaN(out[0]))
	assert.False(t, math.IsNaN(out[3]))
}

func TestWinsorizeZeroPercentIsNoop(t *testing.T) {
	values := []float64{5, 1, 9}
	assert.Equal(t, values, Winsorize(values, 0))
}

func TestWinsorizeEmpty(t *testing.T) {
	assert.Empty(t, Winsorize(nil, 1))
}

func TestWinsorBounds(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}

	lo, hi, ok := WinsorBounds(values, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 99.0, hi)

	_, _, ok = WinsorBounds(values, 0)
	assert.False(t, ok)
	_, _, ok = WinsorBounds(values, 50)
	assert.False(t, ok)
	_, _, ok = WinsorBounds([]float64{math.NaN()}, 1)
	assert.False(t, ok)
}
