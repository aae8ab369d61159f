package difvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/difvec/cluster"
	"github.com/hupe1980/difvec/geom"
)

var (
	// ErrNilGrid is returned when a VectorMap is constructed without a grid.
	ErrNilGrid = errors.New("grid must not be nil")

	// ErrInvalidMagnitudeRange is returned when the minimum magnitude exceeds
	// the maximum.
	ErrInvalidMagnitudeRange = errors.New("minimum magnitude must not exceed maximum magnitude")

	// ErrEmptyBasis is returned when basis matching is attempted against an
	// empty basis.
	ErrEmptyBasis = errors.New("basis must not be empty")

	// ErrMissingCalibration is returned when an operation needs calibration
	// metadata (detector shape, pixel size, axis scales) that is not set.
	ErrMissingCalibration = errors.New("missing calibration")

	// ErrUnknownMethod is returned for an unrecognized clustering method.
	ErrUnknownMethod = errors.New("unknown clustering method")

	// ErrInvalidThreshold is returned for an invalid distance threshold.
	ErrInvalidThreshold = errors.New("invalid distance threshold")

	// ErrInvalidMinSamples is returned for a non-positive minimum sample count.
	ErrInvalidMinSamples = errors.New("min samples must be positive")

	// ErrInvalidBins is returned when a histogram is requested with fewer
	// than two bin edges.
	ErrInvalidBins = errors.New("histogram needs at least two bin edges")
)

// ErrShapeMismatch indicates paired vector inputs of differing shape.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrShapeMismatch struct {
	ARows, ACols int
	BRows, BCols int
	cause        error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: %dx%d vs %dx%d", e.ARows, e.ACols, e.BRows, e.BCols)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates a vector dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Shape and dimension normalization.
	var sm *geom.ErrShapeMismatch
	if errors.As(err, &sm) {
		return &ErrShapeMismatch{ARows: sm.ARows, ACols: sm.ACols, BRows: sm.BRows, BCols: sm.BCols, cause: err}
	}
	var gd *geom.ErrInvalidDimension
	if errors.As(err, &gd) {
		return &ErrDimensionMismatch{Expected: 3, Actual: gd.Dimension, cause: err}
	}
	var cd *cluster.ErrDimensionMismatch
	if errors.As(err, &cd) {
		return &ErrDimensionMismatch{Expected: cd.Expected, Actual: cd.Actual, cause: err}
	}

	// Configuration normalization.
	if errors.Is(err, cluster.ErrInvalidRadius) {
		return fmt.Errorf("%w: %w", ErrInvalidThreshold, err)
	}
	if errors.Is(err, cluster.ErrInvalidMinSamples) {
		return fmt.Errorf("%w: %w", ErrInvalidMinSamples, err)
	}

	return err
}
