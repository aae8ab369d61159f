package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrShapeMismatch indicates paired vector batches of differing shape.
type ErrShapeMismatch struct {
	ARows, ACols int
	BRows, BCols int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: %dx%d vs %dx%d", e.ARows, e.ACols, e.BRows, e.BCols)
}

// ErrInvalidDimension indicates a vector of unsupported dimensionality.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// Norm returns the Euclidean norm of a single vector.
func Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// Norms returns the Euclidean norm of every row. Empty input yields empty
// output.
func Norms(vectors [][]float64) []float64 {
	norms := make([]float64, len(vectors))
	for i, v := range vectors {
		norms[i] = floats.Norm(v, 2)
	}
	return norms
}

// AngleBetween returns the per-row angle in radians, in [0, pi], between the
// paired rows of a and b. Rows where either norm is zero yield angle 0. The
// cosine is clamped to [-1, 1] before arccos to guard floating overshoot.
// A shape mismatch between a and b returns *ErrShapeMismatch.
func AngleBetween(a, b [][]float64) ([]float64, error) {
	if err := checkSameShape(a, b); err != nil {
		return nil, err
	}

	angles := make([]float64, len(a))
	for i := range a {
		angles[i] = angleBetween(a[i], b[i])
	}
	return angles, nil
}

// AngleBetweenVectors is the single-pair form of AngleBetween.
func AngleBetweenVectors(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrShapeMismatch{ARows: 1, ACols: len(a), BRows: 1, BCols: len(b)}
	}
	return angleBetween(a, b), nil
}

func angleBetween(a, b []float64) float64 {
	denom := floats.Norm(a, 2) * floats.Norm(b, 2)
	if denom == 0 {
		return 0
	}

	cos := floats.Dot(a, b) / denom
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// DetectorToReciprocal maps in-plane detector coordinates onto the Ewald
// sphere, appending z = sqrt(1/wavelength^2 - |xy|^2) - 1/wavelength as a
// third coordinate. The caller must ensure |xy| < 1/wavelength; coordinates
// outside the sphere produce NaN z values which propagate downstream rather
// than raising. cameraLength is part of the calibration contract passed by
// the scan pipeline but does not enter the mapping.
func DetectorToReciprocal(xy [][]float64, wavelength, cameraLength float64) [][]float64 {
	r := 1 / wavelength

	out := make([][]float64, len(xy))
	for i, v := range xy {
		var sq float64
		for _, c := range v {
			sq += c * c
		}

		row := make([]float64, len(v)+1)
		copy(row, v)
		row[len(v)] = math.Sqrt(r*r-sq) - r
		out[i] = row
	}
	return out
}

// NormalizeOrZero normalizes every row to unit length in place, leaving rows
// with exactly zero norm unchanged. Applying it twice equals applying it
// once.
func NormalizeOrZero(vectors [][]float64) {
	for _, v := range vectors {
		NormalizeOrZeroVector(v)
	}
}

// NormalizeOrZeroVector is the single-vector form of NormalizeOrZero.
func NormalizeOrZeroVector(v []float64) {
	n := floats.Norm(v, 2)
	if n == 0 {
		return
	}
	floats.Scale(1/n, v)
}

func checkSameShape(a, b [][]float64) error {
	if len(a) != len(b) {
		return &ErrShapeMismatch{ARows: len(a), ACols: rowDim(a), BRows: len(b), BCols: rowDim(b)}
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return &ErrShapeMismatch{ARows: len(a), ACols: len(a[i]), BRows: len(b), BCols: len(b[i])}
		}
	}
	return nil
}

func rowDim(vectors [][]float64) int {
	if len(vectors) == 0 {
		return 0
	}
	return len(vectors[0])
}
