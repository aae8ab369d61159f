package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBSCAN(t *testing.T) {
	t.Run("NegativeEps", func(t *testing.T) {
		_, err := NewDBSCAN(-0.1, 1)
		require.ErrorIs(t, err, ErrInvalidRadius)
	})

	t.Run("InvalidMinSamples", func(t *testing.T) {
		_, err := NewDBSCAN(0.1, 0)
		require.ErrorIs(t, err, ErrInvalidMinSamples)
	})
}

func TestDBSCANFit(t *testing.T) {
	t.Run("CalibrationScan", func(t *testing.T) {
		d, err := NewDBSCAN(0.1, 1)
		require.NoError(t, err)

		res, err := d.Fit(scanPoints())
		require.NoError(t, err)

		expected := [][]float64{
			{-0.031888, 0.267062},
			{-0.03520967, 0.13087367},
			{0.10200536, 0.02699609},
		}
		assertVectorsInDelta(t, expected, res.Representatives, 1e-7)
		assert.Zero(t, res.NoiseCount)

		// Cluster sizes, duplicates included: 4 uniques x3 scans, 3 uniques
		// x3 scans, and the 6 remaining uniques spread over 11 points.
		assert.Equal(t, uint64(12), res.Members[0].GetCardinality())
		assert.Equal(t, uint64(9), res.Members[1].GetCardinality())
		assert.Equal(t, uint64(11), res.Members[2].GetCardinality())
	})

	t.Run("TightEpsKeepsDistinct", func(t *testing.T) {
		d, err := NewDBSCAN(0.01, 1)
		require.NoError(t, err)

		res, err := d.Fit(scanPoints())
		require.NoError(t, err)
		assert.Equal(t, 13, res.Count())
		assert.Zero(t, res.NoiseCount)
	})

	t.Run("NoisePointsExcluded", func(t *testing.T) {
		points := [][]float64{
			{0, 0}, {0.01, 0}, {0, 0.01},
			{5, 5}, // isolated
		}

		d, err := NewDBSCAN(0.05, 2)
		require.NoError(t, err)

		res, err := d.Fit(points)
		require.NoError(t, err)
		require.Equal(t, 1, res.Count())
		assert.Equal(t, 1, res.NoiseCount)
		assert.Equal(t, []int{0, 0, 0, Noise}, res.Labels)
	})

	t.Run("Empty", func(t *testing.T) {
		d, err := NewDBSCAN(0.1, 1)
		require.NoError(t, err)

		res, err := d.Fit([][]float64{})
		require.NoError(t, err)
		assert.Empty(t, res.Representatives)
		assert.Zero(t, res.NoiseCount)
	})

	t.Run("AllIdentical", func(t *testing.T) {
		d, err := NewDBSCAN(0.1, 2)
		require.NoError(t, err)

		res, err := d.Fit([][]float64{{1, 2}, {1, 2}, {1, 2}})
		require.NoError(t, err)
		require.Equal(t, 1, res.Count())
		assert.Equal(t, []float64{1, 2}, res.Representatives[0])
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		d, err := NewDBSCAN(0.1, 1)
		require.NoError(t, err)

		_, err = d.Fit([][]float64{{1}, {1, 2}})
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
	})
}

func TestDBSCANBorderAdoption(t *testing.T) {
	// The last point is a border point of the dense left group: reachable
	// from a core point but not core itself. It sits strictly inside the
	// radius of {0.3, 0}; a point at exactly eps would be at the mercy of
	// floating-point rounding in the distance.
	points := [][]float64{
		{0, 0}, {0.1, 0}, {0.2, 0}, {0.3, 0},
		{0.44, 0},
	}

	d, err := NewDBSCAN(0.15, 3)
	require.NoError(t, err)

	res, err := d.Fit(points)
	require.NoError(t, err)
	require.Equal(t, 1, res.Count())
	assert.Equal(t, 0, res.Labels[4])
	assert.Zero(t, res.NoiseCount)
}

func TestDBSCANExactRadiusIncluded(t *testing.T) {
	// Neighborhood membership is inclusive: a point whose distance equals
	// eps exactly (0.25 is exact in binary) belongs to the neighborhood.
	points := [][]float64{
		{0, 0}, {0.25, 0},
	}

	d, err := NewDBSCAN(0.25, 2)
	require.NoError(t, err)

	res, err := d.Fit(points)
	require.NoError(t, err)
	require.Equal(t, 1, res.Count())
	assert.Equal(t, []int{0, 0}, res.Labels)
	assert.Zero(t, res.NoiseCount)
}
