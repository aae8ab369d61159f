package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanPoints returns the flattened point set of a 2x2 calibration scan with
// per-position vector lists of length 7, 13, 11 and 1.
func scanPoints() [][]float64 {
	return [][]float64{
		// Position (0, 0)
		{0.089685, 0.292971},
		{0.017937, 0.277027},
		{-0.069755, 0.257097},
		{-0.165419, 0.241153},
		{0.049825, 0.149475},
		{-0.037867, 0.129545},
		{-0.117587, 0.113601},
		// Position (0, 1)
		{0.089685, 0.292971},
		{0.017937, 0.277027},
		{-0.069755, 0.257097},
		{-0.165419, 0.241153},
		{0.049825, 0.149475},
		{-0.037867, 0.129545},
		{-0.117587, 0.113601},
		{0.149475, 0.065769},
		{0.229195, 0.045839},
		{0.141503, 0.025909},
		{0.073741, 0.013951},
		{0.001993, 0.001993},
		{-0.069755, -0.009965},
		// Position (1, 0)
		{0.089685, 0.292971},
		{0.017937, 0.277027},
		{-0.069755, 0.257097},
		{-0.165419, 0.241153},
		{0.049825, 0.149475},
		{-0.037867, 0.129545},
		{-0.117587, 0.113601},
		{0.149475, 0.065769},
		{0.229195, 0.045839},
		{0.141503, 0.025909},
		{0.073741, 0.013951},
		// Position (1, 1)
		{0.001993, 0.001993},
	}
}

func assertVectorsInDelta(t *testing.T, expected, got [][]float64, delta float64) {
	t.Helper()

	require.Len(t, got, len(expected))
	for i := range expected {
		require.Len(t, got[i], len(expected[i]))
		for j := range expected[i] {
			assert.InDelta(t, expected[i][j], got[i][j], delta, "row %d col %d", i, j)
		}
	}
}

func TestResultCount(t *testing.T) {
	res := &Result{Representatives: [][]float64{{1, 2}, {3, 4}}}
	assert.Equal(t, 2, res.Count())
}

func TestCheckUniformDimension(t *testing.T) {
	require.NoError(t, checkUniformDimension(nil))
	require.NoError(t, checkUniformDimension([][]float64{{1, 2}, {3, 4}}))

	err := checkUniformDimension([][]float64{{1, 2}, {3, 4, 5}})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
}
