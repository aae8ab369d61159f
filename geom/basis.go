package geom

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MatchOptions contains configuration options for MatchToBasis.
type MatchOptions struct {
	// MaxDistance gates matches: a basis row whose closest vector lies
	// strictly farther away is replaced by a NaN row. NaN disables gating.
	MaxDistance float64
}

// DefaultMatchOptions contains the default configuration options for
// MatchToBasis.
var DefaultMatchOptions = MatchOptions{
	MaxDistance: math.NaN(),
}

// MatchToBasis assigns to every basis vector the closest input vector by
// Euclidean distance, using a dense pairwise distance matrix and a
// per-basis-column argmin. The result always has exactly len(basis) rows in
// basis order and is not deduplicated; two basis vectors may receive the same
// input vector. Empty input yields NaN rows shaped like basis. Result rows
// are copies, never aliases of the input.
//
// Ties resolve to the earliest input row. Dimensionality differences between
// the input and basis rows return *ErrShapeMismatch.
func MatchToBasis(vectors, basis [][]float64, optFns ...func(o *MatchOptions)) ([][]float64, error) {
	opts := DefaultMatchOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if len(vectors) == 0 {
		out := make([][]float64, len(basis))
		for j, b := range basis {
			row := make([]float64, len(b))
			for k := range row {
				row[k] = math.NaN()
			}
			out[j] = row
		}
		return out, nil
	}

	dim := len(vectors[0])
	for _, v := range vectors {
		if len(v) != dim {
			return nil, &ErrShapeMismatch{ARows: len(vectors), ACols: dim, BRows: len(vectors), BCols: len(v)}
		}
	}
	for _, b := range basis {
		if len(b) != dim {
			return nil, &ErrShapeMismatch{ARows: len(vectors), ACols: dim, BRows: len(basis), BCols: len(b)}
		}
	}

	if len(basis) == 0 {
		return [][]float64{}, nil
	}

	dist := mat.NewDense(len(vectors), len(basis), nil)
	for i, v := range vectors {
		for j, b := range basis {
			dist.Set(i, j, floats.Distance(v, b, 2))
		}
	}

	out := make([][]float64, len(basis))
	for j := range basis {
		closest := 0
		minDist := dist.At(0, j)
		for i := 1; i < len(vectors); i++ {
			if d := dist.At(i, j); d < minDist {
				minDist = d
				closest = i
			}
		}

		row := make([]float64, dim)
		if !math.IsNaN(opts.MaxDistance) && minDist > opts.MaxDistance {
			for k := range row {
				row[k] = math.NaN()
			}
		} else {
			copy(row, vectors[closest])
		}
		out[j] = row
	}
	return out, nil
}
