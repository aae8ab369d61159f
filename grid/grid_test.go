package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Shape", func(t *testing.T) {
		g := New[[][]float64](2, 3)
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 3, g.Cols())
		assert.Equal(t, 6, g.Len())
	})

	t.Run("CellsStartAbsent", func(t *testing.T) {
		g := New[[][]float64](2, 2)
		for row := 0; row < 2; row++ {
			for col := 0; col < 2; col++ {
				assert.Nil(t, g.At(row, col))
			}
		}
	})

	t.Run("InvalidShape", func(t *testing.T) {
		assert.Panics(t, func() { New[[]float64](0, 3) })
		assert.Panics(t, func() { New[[]float64](3, -1) })
	})
}

func TestFromCells(t *testing.T) {
	t.Run("RowMajor", func(t *testing.T) {
		cells := [][][]float64{
			{{1, 2}},
			{{3, 4}, {5, 6}},
			nil,
			{{7, 8}},
		}
		g := FromCells(2, 2, cells)
		assert.Equal(t, [][]float64{{1, 2}}, g.At(0, 0))
		assert.Equal(t, [][]float64{{3, 4}, {5, 6}}, g.At(0, 1))
		assert.Nil(t, g.At(1, 0))
		assert.Equal(t, [][]float64{{7, 8}}, g.At(1, 1))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		assert.Panics(t, func() { FromCells(2, 2, make([][][]float64, 3)) })
	})
}

func TestAtSet(t *testing.T) {
	g := New[[][]float64](2, 2)
	g.Set(1, 0, [][]float64{{9, 9}})
	assert.Equal(t, [][]float64{{9, 9}}, g.At(1, 0))

	// Ragged lengths between neighbors are allowed.
	g.Set(1, 1, [][]float64{{1, 1}, {2, 2}, {3, 3}})
	assert.Len(t, g.At(1, 1), 3)
	assert.Len(t, g.At(1, 0), 1)

	assert.Panics(t, func() { g.At(2, 0) })
	assert.Panics(t, func() { g.Set(0, -1, nil) })
}

func TestAll(t *testing.T) {
	cells := [][][]float64{
		{{1}},
		nil,
		{{2}},
		{{3}},
	}
	g := FromCells(2, 2, cells)

	var indices []Index
	var got [][][]float64
	for idx, cell := range g.All() {
		indices = append(indices, idx)
		got = append(got, cell)
	}

	require.Len(t, indices, 4)
	assert.Equal(t, []Index{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, indices)
	assert.Equal(t, cells, got)
}

func TestClone(t *testing.T) {
	g := New[[][]float64](1, 2)
	g.Set(0, 0, [][]float64{{1, 2}})

	c := g.Clone()
	c.Set(0, 1, [][]float64{{3, 4}})

	assert.Nil(t, g.At(0, 1), "clone writes must not leak into the original")
	assert.Equal(t, g.At(0, 0), c.At(0, 0))
}
