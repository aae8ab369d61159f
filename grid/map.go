package grid

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MapOptions contains configuration options for MapErr.
type MapOptions struct {
	// Concurrency bounds the number of cells processed in parallel.
	// Values below 1 select runtime.GOMAXPROCS(0).
	Concurrency int
}

// DefaultMapOptions contains the default configuration options for MapErr.
var DefaultMapOptions = MapOptions{
	Concurrency: 0,
}

// Map applies fn to every present cell of g and reassembles a grid of
// identical shape. Cells that are nil or empty pass through as nil output
// cells without invoking fn. fn must be stateless with respect to the grid;
// it receives each cell's payload read-only.
func Map[E, F any](g *Grid[[]E], fn func([]E) []F) *Grid[[]F] {
	out := New[[]F](g.rows, g.cols)
	for i, cell := range g.cells {
		if len(cell) == 0 {
			continue
		}
		out.cells[i] = fn(cell)
	}
	return out
}

// MapErr is Map with error propagation and bounded parallel execution across
// cells. The first error cancels outstanding work and is returned. Cell
// independence makes the dispatch embarrassingly parallel; correctness does
// not depend on the concurrency limit.
func MapErr[E, F any](ctx context.Context, g *Grid[[]E], fn func([]E) ([]F, error), optFns ...func(o *MapOptions)) (*Grid[[]F], error) {
	opts := DefaultMapOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	limit := opts.Concurrency
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}

	out := New[[]F](g.rows, g.cols)

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, cell := range g.cells {
		if len(cell) == 0 {
			continue
		}
		eg.Go(func() error {
			res, err := fn(cell)
			if err != nil {
				return err
			}
			out.cells[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
