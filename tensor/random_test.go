package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensketch/tensor"
)

// TestRandFromSeed_Determinism verifies that equal seeds reproduce the same
// stream and that seed 0 selects the fixed default stream.
func TestRandFromSeed_Determinism(t *testing.T) {
	a := tensor.RandFromSeed(42)
	b := tensor.RandFromSeed(42)
	for i := 0; i < 8; i++ {
		assert.Equal(t, a.Int63(), b.Int63(), "same seed must reproduce the stream")
	}

	z0 := tensor.RandFromSeed(0)
	z1 := tensor.RandFromSeed(0)
	assert.Equal(t, z0.Int63(), z1.Int63(), "seed 0 must be a stable default, not time-based")
}

// TestDeriveRand_IndependentStreams verifies that derived streams differ
// from each other and from the parent.
func TestDeriveRand_IndependentStreams(t *testing.T) {
	base := tensor.RandFromSeed(7)
	s1 := tensor.DeriveRand(base, 1)
	s2 := tensor.DeriveRand(base, 2)

	assert.NotEqual(t, s1.Int63(), s2.Int63(), "distinct stream ids must decorrelate")

	// nil base falls back to the default parent without panicking.
	s3 := tensor.DeriveRand(nil, 3)
	assert.NotNil(t, s3)
}

// TestGaussian_ShapeAndDeterminism verifies operator dimensions and that the
// same RNG state reproduces the same operator.
func TestGaussian_ShapeAndDeterminism(t *testing.T) {
	g1, err := tensor.Gaussian(tensor.RandFromSeed(5), 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, g1.Shape())

	g2, err := tensor.Gaussian(tensor.RandFromSeed(5), 3, 4)
	require.NoError(t, err)
	assert.Equal(t, g1.Data(), g2.Data(), "same seed must reproduce the operator")

	_, err = tensor.Gaussian(nil, 0, 4)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

// TestGaussian_JLNormalization verifies the N(0, 1/rows) scaling: the
// empirical mean is near zero and the empirical variance near 1/rows.
func TestGaussian_JLNormalization(t *testing.T) {
	const rows, cols = 4, 10000
	g, err := tensor.Gaussian(tensor.RandFromSeed(11), rows, cols)
	require.NoError(t, err)

	var sum, sumSq float64
	for _, v := range g.Data() {
		sum += v
		sumSq += v * v
	}
	n := float64(rows * cols)
	mean := sum / n
	variance := sumSq/n - mean*mean

	assert.InDelta(t, 0, mean, 0.01, "entries must be centred")
	assert.InDelta(t, 1.0/rows, variance, 0.02, "entry variance must be 1/rows")
}
