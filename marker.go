package difvec

import (
	"github.com/hupe1980/difvec/grid"
)

// MarkerSentinel is the default pad value for absent marker points. It sits
// far outside any calibrated detector so a display layer can draw padded
// lists uniformly without clipping real peaks.
const MarkerSentinel = -1000

// MarkerOptions contains configuration options for Markers.
type MarkerOptions struct {
	// Sentinel is the pad value for absent points.
	Sentinel float64

	// Calibrate maps pixel-index coordinates through the signal axis
	// calibration (offset + index * scale). Leave unset when the vectors
	// are already calibrated.
	Calibrate bool
}

// DefaultMarkerOptions contains the default configuration options for
// Markers.
var DefaultMarkerOptions = MarkerOptions{
	Sentinel: MarkerSentinel,
}

// MarkerSet is a presentation-ready overlay: every scan position holds the
// same number of points, padded with the sentinel, so a display layer can
// address position (r, c), point p uniformly. Pure data preparation, no
// rendering.
type MarkerSet struct {
	// PeaksPerPosition is the padded point count, the maximum list length
	// across the scan.
	PeaksPerPosition int

	// Sentinel is the pad value used for absent points.
	Sentinel float64

	// Points holds the padded per-position point lists. Every cell is
	// present and PeaksPerPosition long.
	Points *grid.Grid[[][]float64]

	// Calibration is the calibration metadata of the source VectorMap.
	Calibration Calibration
}

// Markers converts the scan into a padded overlay point set. Empty and
// absent positions become all-sentinel lists.
func (vm *VectorMap) Markers(optFns ...func(o *MarkerOptions)) *MarkerSet {
	opts := DefaultMarkerOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	maxPeaks := 0
	dim := 2
	for _, vectors := range vm.grid.All() {
		if len(vectors) > maxPeaks {
			maxPeaks = len(vectors)
		}
		if len(vectors) > 0 {
			dim = len(vectors[0])
		}
	}

	points := grid.New[[][]float64](vm.grid.Rows(), vm.grid.Cols())
	for idx, vectors := range vm.grid.All() {
		padded := make([][]float64, maxPeaks)
		for p := range padded {
			row := make([]float64, dim)
			for d := range row {
				row[d] = opts.Sentinel
			}

			if p < len(vectors) {
				for d, v := range vectors[p] {
					if opts.Calibrate {
						v = vm.axisOffset(d) + v*vm.axisScale(d)
					}
					row[d] = v
				}
			}
			padded[p] = row
		}
		points.Set(idx.Row, idx.Col, padded)
	}

	return &MarkerSet{
		PeaksPerPosition: maxPeaks,
		Sentinel:         opts.Sentinel,
		Points:           points,
		Calibration:      vm.calibration.clone(),
	}
}
