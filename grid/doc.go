// Package grid provides the ragged 2D scan-grid container used throughout difvec.
//
// A Grid has a fixed Rows x Cols shape while every cell owns a payload of
// independent length, typically one scan position's list of diffraction
// vectors. Absent positions are represented by nil cells and are always
// passed through elementwise operations unchanged.
//
// # Dispatch Contract
//
// Map and MapErr apply a stateless per-cell function to every present cell
// independently and reassemble a grid of identical shape:
//
//	mags := grid.Map(g, func(vectors [][]float64) []float64 {
//	    return geom.Norms(vectors)
//	})
//
// Cells that are nil or empty never reach the function; they yield nil output
// cells. MapErr additionally supports error propagation and bounded parallel
// execution across cells:
//
//	out, err := grid.MapErr(ctx, g, fn, func(o *grid.MapOptions) {
//	    o.Concurrency = 8
//	})
package grid
