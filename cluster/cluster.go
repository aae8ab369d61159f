package cluster

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Noise is the label assigned to points that belong to no cluster.
const Noise = -1

var (
	// ErrInvalidRadius is returned when a distance threshold or neighborhood
	// radius is negative.
	ErrInvalidRadius = errors.New("radius must not be negative")

	// ErrInvalidMinSamples is returned when the minimum sample count is not
	// positive.
	ErrInvalidMinSamples = errors.New("min samples must be positive")
)

// ErrDimensionMismatch indicates input points of differing dimensionality.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Clusterer reduces a flattened point set to a representative vector per
// cluster. Implementations must be invariant to input ordering up to their
// documented output order, handle the all-identical case (single cluster)
// and the empty case (empty result) without error, and never mutate the
// input points.
type Clusterer interface {
	Fit(points [][]float64) (*Result, error)
}

// Result is the immutable outcome of a clustering fit.
type Result struct {
	// Representatives holds one vector per cluster in the strategy's
	// documented order.
	Representatives [][]float64

	// Labels assigns every input point to its cluster index, or Noise.
	Labels []int

	// Members holds the input point indices of every cluster.
	Members []*roaring.Bitmap

	// NoiseCount is the number of points labeled Noise.
	NoiseCount int
}

// Count returns the number of clusters.
func (r *Result) Count() int {
	return len(r.Representatives)
}

func checkUniformDimension(points [][]float64) error {
	if len(points) == 0 {
		return nil
	}

	dim := len(points[0])
	for _, p := range points[1:] {
		if len(p) != dim {
			return &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
		}
	}
	return nil
}

func emptyResult() *Result {
	return &Result{
		Representatives: [][]float64{},
		Labels:          []int{},
		Members:         []*roaring.Bitmap{},
	}
}
