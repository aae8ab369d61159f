package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors(8, 3)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 3, len(v[0]))
	assert.LessOrEqual(t, v[0][0], 1.0)
	assert.GreaterOrEqual(t, v[1][0], 0.0)
}

func TestUniformRangeVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformRangeVectors(8, 3)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 3, len(v[0]))
	assert.LessOrEqual(t, v[0][0], 1.0)
	assert.GreaterOrEqual(t, v[1][0], -1.0)
}

func TestUnitVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UnitVectors(8, 3)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 3, len(v[0]))

	// Check normalization
	for _, vec := range v {
		var sum float64
		for _, val := range vec {
			sum += val * val
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
	}
}

func TestClusteredVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.ClusteredVectors(100, 2, 5, 0.01)

	assert.Equal(t, 100, len(v))
	assert.Equal(t, 2, len(v[0]))
}

func TestPeakGrid(t *testing.T) {
	rng := NewRNG(4711)

	g := rng.PeakGrid(8, 8, 6, 2, 0.3)

	assert.Equal(t, 8, g.Rows())
	assert.Equal(t, 8, g.Cols())

	for _, peaks := range g.All() {
		assert.LessOrEqual(t, len(peaks), 6)
		for _, vec := range peaks {
			assert.Len(t, vec, 2)
			assert.Less(t, math.Abs(vec[0]), 0.3)
			assert.Less(t, math.Abs(vec[1]), 0.3)
		}
	}
}

func TestRotationMatrix(t *testing.T) {
	rng := NewRNG(4711)

	m, err := rng.RotationMatrix()
	require.NoError(t, err)

	// R^T R = I and det(R) = 1
	var prod mat.Dense
	prod.Mul(m.T(), m)
	assert.True(t, mat.EqualApprox(eye3(), &prod, 1e-12))
	assert.InDelta(t, 1.0, mat.Det(m), 1e-12)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformVectors(1, 10)

	rng.Reset()
	v2 := rng.UniformVectors(1, 10)

	assert.Equal(t, v1, v2)
}

func eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}
