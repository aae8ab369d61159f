package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchToBasis(t *testing.T) {
	t.Run("ClosestPerBasisVector", func(t *testing.T) {
		vectors := [][]float64{{0, 0}, {1, 1}, {2, 0}}
		basis := [][]float64{{0.1, 0}, {0.9, 1.1}, {1.9, 0.1}}

		got, err := MatchToBasis(vectors, basis)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []float64{0, 0}, got[0])
		assert.Equal(t, []float64{1, 1}, got[1])
		assert.Equal(t, []float64{2, 0}, got[2])
	})

	t.Run("NotDeduplicated", func(t *testing.T) {
		// Two basis vectors may claim the same closest input vector.
		vectors := [][]float64{{0, 0}, {5, 5}}
		basis := [][]float64{{0.1, 0}, {0, 0.1}}

		got, err := MatchToBasis(vectors, basis)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0}, got[0])
		assert.Equal(t, []float64{0, 0}, got[1])
	})

	t.Run("TieKeepsEarliestRow", func(t *testing.T) {
		vectors := [][]float64{{1, 0}, {-1, 0}}
		basis := [][]float64{{0, 0}}

		got, err := MatchToBasis(vectors, basis)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0}, got[0])
	})

	t.Run("MaxDistanceGates", func(t *testing.T) {
		vectors := [][]float64{{0, 0}, {3, 4}}
		basis := [][]float64{{0.1, 0}, {10, 10}}

		got, err := MatchToBasis(vectors, basis, func(o *MatchOptions) {
			o.MaxDistance = 1.0
		})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0}, got[0])
		assert.True(t, math.IsNaN(got[1][0]))
		assert.True(t, math.IsNaN(got[1][1]))
	})

	t.Run("ZeroMaxDistanceKeepsOnlyCoincidences", func(t *testing.T) {
		vectors := [][]float64{{1, 2}, {3, 4}}

		got, err := MatchToBasis(vectors, [][]float64{{1, 2}, {3.5, 4}}, func(o *MatchOptions) {
			o.MaxDistance = 0
		})
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2}, got[0])
		assert.True(t, math.IsNaN(got[1][0]))

		// Without any exact coincidence every row is NaN.
		got, err = MatchToBasis(vectors, [][]float64{{1.1, 2}, {3.5, 4}}, func(o *MatchOptions) {
			o.MaxDistance = 0
		})
		require.NoError(t, err)
		for _, row := range got {
			for _, c := range row {
				assert.True(t, math.IsNaN(c))
			}
		}
	})

	t.Run("EmptyInputYieldsNaNRows", func(t *testing.T) {
		basis := [][]float64{{1, 0}, {0, 1}, {1, 1}}

		got, err := MatchToBasis(nil, basis)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for _, row := range got {
			require.Len(t, row, 2)
			for _, c := range row {
				assert.True(t, math.IsNaN(c))
			}
		}
	})

	t.Run("EmptyBasis", func(t *testing.T) {
		got, err := MatchToBasis([][]float64{{1, 2}}, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ResultRowsAreCopies", func(t *testing.T) {
		vectors := [][]float64{{1, 2}}
		got, err := MatchToBasis(vectors, [][]float64{{1, 2}})
		require.NoError(t, err)

		got[0][0] = 42
		assert.Equal(t, 1.0, vectors[0][0])
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		var shapeErr *ErrShapeMismatch

		_, err := MatchToBasis([][]float64{{1, 2}}, [][]float64{{1, 2, 3}})
		assert.ErrorAs(t, err, &shapeErr)

		_, err = MatchToBasis([][]float64{{1, 2}, {1, 2, 3}}, [][]float64{{1, 2}})
		assert.ErrorAs(t, err, &shapeErr)
	})
}
