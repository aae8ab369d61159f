package difvec

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/difvec/geom"
)

// DiffractingPixelsOptions contains configuration options for
// DiffractingPixelsMap.
type DiffractingPixelsOptions struct {
	// MinMagnitude and MaxMagnitude restrict counting to peaks whose norm
	// lies strictly inside the open interval (MinMagnitude, MaxMagnitude).
	MinMagnitude float64
	MaxMagnitude float64

	// Binary reduces every count to 0 or 1.
	Binary bool
}

// DefaultDiffractingPixelsOptions contains the default configuration options
// for DiffractingPixelsMap.
var DefaultDiffractingPixelsOptions = DiffractingPixelsOptions{
	MinMagnitude: math.Inf(-1),
	MaxMagnitude: math.Inf(1),
}

// DiffractingPixelsMap returns a dense Rows x Cols matrix holding the number
// of detected peaks at every scan position. Absent positions count zero.
func (vm *VectorMap) DiffractingPixelsMap(optFns ...func(o *DiffractingPixelsOptions)) *mat.Dense {
	opts := DefaultDiffractingPixelsOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	out := mat.NewDense(vm.grid.Rows(), vm.grid.Cols(), nil)
	for idx, vectors := range vm.grid.All() {
		count := 0
		for _, n := range geom.Norms(vectors) {
			if n > opts.MinMagnitude && n < opts.MaxMagnitude {
				count++
			}
		}
		if opts.Binary && count > 0 {
			count = 1
		}
		out.Set(idx.Row, idx.Col, float64(count))
	}
	return out
}

// Histogram holds binned magnitude counts. Counts[i] covers the half-open
// interval [Dividers[i], Dividers[i+1]).
type Histogram struct {
	Dividers []float64
	Counts   []float64
}

// MagnitudeHistogram bins the magnitudes of all vectors across the scan by
// the given ascending dividers. Magnitudes outside [dividers[0],
// dividers[len-1]) are ignored. At least two dividers are required.
func (vm *VectorMap) MagnitudeHistogram(dividers []float64) (*Histogram, error) {
	if len(dividers) < 2 {
		return nil, ErrInvalidBins
	}

	var mags []float64
	for _, vectors := range vm.grid.All() {
		for _, n := range geom.Norms(vectors) {
			if n >= dividers[0] && n < dividers[len(dividers)-1] {
				mags = append(mags, n)
			}
		}
	}
	sort.Float64s(mags)

	counts := stat.Histogram(nil, dividers, mags, nil)
	return &Histogram{
		Dividers: append([]float64(nil), dividers...),
		Counts:   counts,
	}, nil
}
