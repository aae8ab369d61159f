// Package difvec provides analysis of scanning electron-diffraction vector sets.
//
// This file implements the fluent builder API for creating VectorMap instances.
// Builders are immutable - each method returns a new builder with the updated
// configuration.
package difvec

import (
	"fmt"

	"github.com/hupe1980/difvec/grid"
)

// Vectors creates a builder over a grid of already calibrated diffraction
// vectors.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	vm, err := difvec.Vectors(g).
//	    DetectorShape(260, 240).
//	    PixelSize(0.001).
//	    Build()
func Vectors(g *grid.Grid[[][]float64]) Builder {
	return Builder{
		grid: g,
	}
}

// Peaks creates a builder over a grid of raw detector peak positions in
// pixels. Build subtracts the pattern center from every coordinate and
// multiplies by the pixel calibration:
//
//	vm, err := difvec.Peaks(peaks).
//	    Center(128, 128).
//	    Calibration(0.001).
//	    Build()
func Peaks(g *grid.Grid[[][]float64]) Builder {
	return Builder{
		grid: g,
		raw:  true,
	}
}

// Builder is an immutable fluent builder for creating VectorMap instances.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	grid          *grid.Grid[[][]float64]
	raw           bool
	center        []float64
	calibration   float64
	pixelSize     float64
	detectorShape []int
	offsets       []float64
	optFns        []Option
}

// Center sets the pattern center in pixels, subtracted from every raw peak
// coordinate. Default: origin.
func (b Builder) Center(x, y float64) Builder {
	b.center = []float64{x, y}
	return b
}

// Calibration sets the pixel calibration in reciprocal units per pixel,
// applied to the centered raw peak coordinates. It also becomes the signal
// axis scale and the pixel size of the resulting VectorMap.
func (b Builder) Calibration(c float64) Builder {
	b.calibration = c
	return b
}

// PixelSize sets the detector pixel size in calibrated units without
// rescaling the vectors. Use this for already calibrated vector grids that
// still need edge filtering.
func (b Builder) PixelSize(s float64) Builder {
	b.pixelSize = s
	return b
}

// DetectorShape sets the detector size in pixels.
func (b Builder) DetectorShape(x, y int) Builder {
	b.detectorShape = []int{x, y}
	return b
}

// Offsets sets the calibrated value at index zero of each signal axis.
func (b Builder) Offsets(x, y float64) Builder {
	b.offsets = []float64{x, y}
	return b
}

// Options appends VectorMap options (logger, metrics, concurrency) applied
// at Build time.
func (b Builder) Options(optFns ...Option) Builder {
	b.optFns = append(b.optFns, optFns...)
	return b
}

// Build creates the VectorMap.
func (b Builder) Build() (*VectorMap, error) {
	if b.grid == nil {
		return nil, ErrNilGrid
	}

	g := b.grid
	cal := Calibration{
		DetectorShape: b.detectorShape,
		Offsets:       b.offsets,
		PixelSize:     b.pixelSize,
	}

	if b.raw {
		if b.calibration == 0 {
			return nil, fmt.Errorf("%w: raw peaks need a pixel calibration", ErrMissingCalibration)
		}

		center := b.center
		g = grid.Map(b.grid, func(peaks [][]float64) [][]float64 {
			out := make([][]float64, len(peaks))
			for i, p := range peaks {
				row := make([]float64, len(p))
				for d, v := range p {
					c := 0.0
					if d < len(center) {
						c = center[d]
					}
					row[d] = (v - c) * b.calibration
				}
				out[i] = row
			}
			return out
		})

		cal.Scales = []float64{b.calibration, b.calibration}
		cal.PixelSize = b.calibration
	}

	optFns := append([]Option{WithCalibration(cal)}, b.optFns...)
	return New(g, optFns...)
}

// FromPeaks constructs a VectorMap from raw pixel peak positions: every
// coordinate becomes (peak - center) * calibration. Convenience wrapper for
// the Peaks builder.
func FromPeaks(peaks *grid.Grid[[][]float64], center []float64, calibration float64, optFns ...Option) (*VectorMap, error) {
	b := Peaks(peaks).Calibration(calibration).Options(optFns...)
	if len(center) == 2 {
		b = b.Center(center[0], center[1])
	}
	return b.Build()
}
