package difvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/difvec/grid"
)

func TestMarkers(t *testing.T) {
	t.Run("PaddedToMax", func(t *testing.T) {
		vm := fixtureMap(t)

		markers := vm.Markers()
		assert.Equal(t, 13, markers.PeaksPerPosition)
		assert.Equal(t, float64(MarkerSentinel), markers.Sentinel)

		// The single-peak position is padded with sentinels.
		cell := markers.Points.At(1, 1)
		require.Len(t, cell, 13)
		assert.Equal(t, []float64{0.001993, 0.001993}, cell[0])
		assert.Equal(t, []float64{-1000, -1000}, cell[1])
		assert.Equal(t, []float64{-1000, -1000}, cell[12])

		// The full position has no padding.
		assert.Equal(t, []float64{-0.069755, -0.009965}, markers.Points.At(0, 1)[12])
	})

	t.Run("AbsentPositionsAllSentinel", func(t *testing.T) {
		g := grid.New[[][]float64](2, 2)
		g.Set(0, 0, [][]float64{{1, 2}, {3, 4}})
		vm, err := New(g)
		require.NoError(t, err)

		markers := vm.Markers()
		require.Equal(t, 2, markers.PeaksPerPosition)
		assert.Equal(t, []float64{-1000, -1000}, markers.Points.At(1, 1)[0])
	})

	t.Run("CustomSentinel", func(t *testing.T) {
		vm := fixtureMap(t)

		markers := vm.Markers(func(o *MarkerOptions) {
			o.Sentinel = -1
		})
		assert.Equal(t, []float64{-1, -1}, markers.Points.At(1, 1)[1])
	})

	t.Run("Calibrated", func(t *testing.T) {
		g := grid.FromCells(1, 1, [][][]float64{
			{{10, 20}},
		})
		vm, err := New(g, WithCalibration(Calibration{
			Scales:  []float64{0.1, 0.1},
			Offsets: []float64{-5, -5},
		}))
		require.NoError(t, err)

		markers := vm.Markers(func(o *MarkerOptions) {
			o.Calibrate = true
		})
		assert.Equal(t, []float64{-4, -3}, markers.Points.At(0, 0)[0])
	})
}
