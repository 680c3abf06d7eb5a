package bloomfilter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimalParameters(t *testing.T) {
	assert.Equal(t, uint(7), OptimalHashCount(95851, 10000))
	assert.Equal(t, uint(1), OptimalHashCount(10, 1000))
	assert.Equal(t, uint(1), OptimalHashCount(1, 0))

	assert.Equal(t, uint(95851), OptimalStoreBits(10000, 0.01))
	assert.Equal(t, OptimalStoreBits(1, 0.01), OptimalStoreBits(0, 2))
}

func TestEstimateFalsePositiveRate(t *testing.T) {
	assert.Equal(t, 0.0, EstimateFalsePositiveRate(1024, 3, 0))
	assert.Equal(t, 1.0, EstimateFalsePositiveRate(0, 3, 10))
	assert.InDelta(t, math.Pow(1-math.Exp(-0.5), 2), EstimateFalsePositiveRate(400, 2, 100), 1e-15)

	m := OptimalStoreBits(1000, 0.01)
	assert.InDelta(t, 0.01, EstimateFalsePositiveRate(m, OptimalHashCount(m, 1000), 1000), 0.001)
}

func TestEstimatedCount(t *testing.T) {
	filter, err := NewMasked(OptimalStoreBits(5000, 0.01), 7, Uint64Encoder, WithSeed(17))
	require.NoError(t, err)
	assert.Equal(t, 0.0, filter.EstimatedCount())

	for _, v := range randomKeys(8, 5000) {
		filter.Add(v)
	}
	assert.InDelta(t, 5000, filter.EstimatedCount(), 250)
	assert.InDelta(t, 0.5, filter.FillRatio(), 0.05)

	// a saturated store stays finite
	full, err := NewMasked(8, 2, Uint64Encoder)
	require.NoError(t, err)
	for _, v := range randomKeys(9, 1000) {
		full.Add(v)
	}
	assert.False(t, math.IsInf(full.EstimatedCount(), 0))
}
