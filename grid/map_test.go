package grid

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("Elementwise", func(t *testing.T) {
		cells := [][][]float64{
			{{3, 4}},
			{{1, 0}, {0, 2}},
			nil,
			{},
		}
		g := FromCells(2, 2, cells)

		norms := Map(g, func(vectors [][]float64) []float64 {
			out := make([]float64, len(vectors))
			for i, v := range vectors {
				out[i] = math.Hypot(v[0], v[1])
			}
			return out
		})

		assert.Equal(t, []float64{5}, norms.At(0, 0))
		assert.Equal(t, []float64{1, 2}, norms.At(0, 1))
		assert.Nil(t, norms.At(1, 0))
		assert.Nil(t, norms.At(1, 1))
	})

	t.Run("AbsentCellsSkipFn", func(t *testing.T) {
		g := New[[][]float64](2, 2)
		g.Set(0, 0, [][]float64{{1, 1}})

		calls := 0
		Map(g, func(vectors [][]float64) [][]float64 {
			calls++
			return vectors
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("ShapePreserved", func(t *testing.T) {
		g := New[[][]float64](3, 5)
		out := Map(g, func(vectors [][]float64) [][]float64 { return vectors })
		assert.Equal(t, 3, out.Rows())
		assert.Equal(t, 5, out.Cols())
	})
}

func TestMapErr(t *testing.T) {
	ctx := context.Background()

	t.Run("Parallel", func(t *testing.T) {
		const rows, cols = 8, 8
		g := New[[][]float64](rows, cols)
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				g.Set(row, col, [][]float64{{float64(row), float64(col)}})
			}
		}

		var calls atomic.Int64
		out, err := MapErr(ctx, g, func(vectors [][]float64) ([][]float64, error) {
			calls.Add(1)
			return vectors, nil
		}, func(o *MapOptions) {
			o.Concurrency = 4
		})
		require.NoError(t, err)
		assert.Equal(t, int64(rows*cols), calls.Load())
		assert.Equal(t, [][]float64{{2, 3}}, out.At(2, 3))
	})

	t.Run("ErrorPropagates", func(t *testing.T) {
		errBoom := errors.New("boom")

		g := New[[][]float64](2, 2)
		g.Set(0, 0, [][]float64{{1, 1}})
		g.Set(1, 1, [][]float64{{2, 2}})

		_, err := MapErr(ctx, g, func(vectors [][]float64) ([][]float64, error) {
			if vectors[0][0] == 2 {
				return nil, errBoom
			}
			return vectors, nil
		})
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("AbsentCellsPassThrough", func(t *testing.T) {
		g := New[[][]float64](2, 2)
		g.Set(0, 1, [][]float64{{1, 2}})

		out, err := MapErr(ctx, g, func(vectors [][]float64) ([][]float64, error) {
			return vectors, nil
		})
		require.NoError(t, err)
		assert.Nil(t, out.At(0, 0))
		assert.Equal(t, [][]float64{{1, 2}}, out.At(0, 1))
	})
}
