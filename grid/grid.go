package grid

import (
	"fmt"
	"iter"
)

// Index addresses one scan position within a Grid.
type Index struct {
	Row int
	Col int
}

// Grid is a fixed-shape 2D array of per-position payloads. The payload type
// is typically a ragged vector list ([][]float64) or a ragged scalar list
// ([]float64); lengths vary freely between cells. A nil cell marks an absent
// position.
//
// Cells are stored row-major in a single backing slice. Grid methods are safe
// for concurrent readers once construction is complete.
type Grid[T any] struct {
	rows  int
	cols  int
	cells []T
}

// New creates an empty Grid with the given shape. All cells start as the zero
// value of T. New panics if rows or cols is not positive, mirroring the
// behavior of dense matrix constructors.
func New[T any](rows, cols int) *Grid[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid: invalid shape %dx%d", rows, cols))
	}
	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}
}

// FromCells creates a Grid backed by the given row-major cell slice. The
// slice is used directly, not copied. FromCells panics if the shape is not
// positive or len(cells) != rows*cols.
func FromCells[T any](rows, cols int, cells []T) *Grid[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid: invalid shape %dx%d", rows, cols))
	}
	if len(cells) != rows*cols {
		panic(fmt.Sprintf("grid: %d cells for shape %dx%d", len(cells), rows, cols))
	}
	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of grid rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the total number of cells, present or absent.
func (g *Grid[T]) Len() int { return len(g.cells) }

// At returns the cell at (row, col). It panics if the index is out of range.
func (g *Grid[T]) At(row, col int) T {
	g.checkBounds(row, col)
	return g.cells[row*g.cols+col]
}

// Set replaces the cell at (row, col). It panics if the index is out of range.
func (g *Grid[T]) Set(row, col int, v T) {
	g.checkBounds(row, col)
	g.cells[row*g.cols+col] = v
}

func (g *Grid[T]) checkBounds(row, col int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range %dx%d", row, col, g.rows, g.cols))
	}
}

// All returns an iterator over every cell in row-major scan order, absent
// cells included.
func (g *Grid[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i, cell := range g.cells {
			idx := Index{Row: i / g.cols, Col: i % g.cols}
			if !yield(idx, cell) {
				return
			}
		}
	}
}

// Clone returns a new Grid of the same shape with a copied cell slice. The
// payloads themselves are shared, matching the read-only lifecycle of vector
// lists.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}
