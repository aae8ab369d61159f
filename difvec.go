package difvec

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/difvec/cluster"
	"github.com/hupe1980/difvec/geom"
	"github.com/hupe1980/difvec/grid"
)

// Calibration carries the metadata needed to map diffraction vectors back to
// display coordinates. All fields are optional; a nil slice or zero value
// marks an unknown quantity. Calibration replaces lazily attached metadata
// with an explicit, always-present struct.
type Calibration struct {
	// Scales holds the calibrated units per index step of each signal axis.
	Scales []float64

	// Offsets holds the calibrated value at index zero of each signal axis.
	Offsets []float64

	// DetectorShape is the detector size in pixels, (x, y).
	DetectorShape []int

	// PixelSize is the calibrated units per detector pixel.
	PixelSize float64
}

func (c Calibration) clone() Calibration {
	out := Calibration{PixelSize: c.PixelSize}
	if c.Scales != nil {
		out.Scales = append([]float64(nil), c.Scales...)
	}
	if c.Offsets != nil {
		out.Offsets = append([]float64(nil), c.Offsets...)
	}
	if c.DetectorShape != nil {
		out.DetectorShape = append([]int(nil), c.DetectorShape...)
	}
	return out
}

// VectorMap is a calibrated ragged scan grid of diffraction vectors: a fixed
// Rows x Cols shape where every cell holds its own variable-length list of
// 2D detector-plane or 3D reciprocal-space coordinates, or nil for an absent
// position.
//
// All operations are pure and leave the receiver untouched; derived
// VectorMaps share the logger, metrics collector, and a copy of the
// calibration. A VectorMap is safe for concurrent read use after
// construction.
type VectorMap struct {
	grid        *grid.Grid[[][]float64]
	calibration Calibration
	metrics     MetricsCollector
	logger      *Logger
	concurrency int
}

// New creates a VectorMap over the given scan grid. The grid is used
// directly, not copied; callers must not mutate it afterwards.
func New(g *grid.Grid[[][]float64], optFns ...Option) (*VectorMap, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	opts := applyOptions(optFns)

	return &VectorMap{
		grid:        g,
		calibration: opts.calibration,
		metrics:     opts.metricsCollector,
		logger:      opts.logger.WithGridShape(g.Rows(), g.Cols()),
		concurrency: opts.concurrency,
	}, nil
}

// Grid returns the underlying scan grid.
func (vm *VectorMap) Grid() *grid.Grid[[][]float64] {
	return vm.grid
}

// Calibration returns a copy of the calibration metadata.
func (vm *VectorMap) Calibration() Calibration {
	return vm.calibration.clone()
}

// derive wraps a result grid in a VectorMap carrying the same configuration
// and calibration as the receiver.
func (vm *VectorMap) derive(g *grid.Grid[[][]float64]) *VectorMap {
	return &VectorMap{
		grid:        g,
		calibration: vm.calibration.clone(),
		metrics:     vm.metrics,
		logger:      vm.logger,
		concurrency: vm.concurrency,
	}
}

// Magnitudes returns a grid of the same shape holding the Euclidean norm of
// every vector at every position. Absent positions stay absent.
func (vm *VectorMap) Magnitudes() *grid.Grid[[]float64] {
	return grid.Map(vm.grid, geom.Norms)
}

// CartesianCoordinates maps every position's detector-plane coordinates onto
// the Ewald sphere, deriving the electron wavelength from the accelerating
// voltage in kV. cameraLength is in metres. Coordinates outside the sphere
// yield NaN z components; they propagate rather than raising.
func (vm *VectorMap) CartesianCoordinates(ctx context.Context, acceleratingVoltage, cameraLength float64) (*VectorMap, error) {
	start := time.Now()

	wavelength := geom.ElectronWavelength(acceleratingVoltage)
	out := grid.Map(vm.grid, func(vectors [][]float64) [][]float64 {
		return geom.DetectorToReciprocal(vectors, wavelength, cameraLength)
	})

	vm.metrics.RecordConvert(time.Since(start), nil)
	vm.logger.LogConvert(ctx, wavelength, nil)

	return vm.derive(out), nil
}

// FilterByMagnitude retains at every position only the vectors whose norm
// lies in [minMag, maxMag]. Out-of-range norms are zeroed and rows with a
// remaining nonzero norm are kept, so a vector whose true norm is exactly
// zero is indistinguishable from a filtered one and is always excluded.
func (vm *VectorMap) FilterByMagnitude(ctx context.Context, minMag, maxMag float64) (*VectorMap, error) {
	start := time.Now()

	if minMag > maxMag {
		err := fmt.Errorf("%w: [%g, %g]", ErrInvalidMagnitudeRange, minMag, maxMag)
		vm.metrics.RecordFilter(time.Since(start), err)
		vm.logger.LogFilter(ctx, "magnitude", 0, 0, err)
		return nil, err
	}

	before, after := 0, 0
	out := grid.Map(vm.grid, func(vectors [][]float64) [][]float64 {
		kept := filterMagnitude(vectors, minMag, maxMag)
		before += len(vectors)
		after += len(kept)
		return kept
	})

	vm.metrics.RecordFilter(time.Since(start), nil)
	vm.logger.LogFilter(ctx, "magnitude", before, after, nil)

	return vm.derive(out), nil
}

// FilterByEdgeProximity drops at every position any vector with
// |x| > xThreshold or |y| > yThreshold. Dropped rows are zeroed and rows
// with a remaining nonzero x coordinate are kept, so a surviving vector
// whose x coordinate is exactly zero is also excluded.
func (vm *VectorMap) FilterByEdgeProximity(ctx context.Context, xThreshold, yThreshold float64) (*VectorMap, error) {
	start := time.Now()

	before, after := 0, 0
	out := grid.Map(vm.grid, func(vectors [][]float64) [][]float64 {
		kept := filterEdge(vectors, xThreshold, yThreshold)
		before += len(vectors)
		after += len(kept)
		return kept
	})

	vm.metrics.RecordFilter(time.Since(start), nil)
	vm.logger.LogFilter(ctx, "edge", before, after, nil)

	return vm.derive(out), nil
}

// FilterDetectorEdge drops vectors within excludeWidth pixels of the
// detector edge, deriving the coordinate thresholds from the detector shape
// and pixel size: (shape/2 - excludeWidth) * pixelSize per axis. It requires
// DetectorShape and PixelSize calibration.
func (vm *VectorMap) FilterDetectorEdge(ctx context.Context, excludeWidth float64) (*VectorMap, error) {
	cal := vm.calibration
	if len(cal.DetectorShape) < 2 || cal.PixelSize == 0 {
		return nil, fmt.Errorf("%w: detector shape and pixel size required", ErrMissingCalibration)
	}

	xThreshold := (float64(cal.DetectorShape[0])/2 - excludeWidth) * cal.PixelSize
	yThreshold := (float64(cal.DetectorShape[1])/2 - excludeWidth) * cal.PixelSize

	return vm.FilterByEdgeProximity(ctx, xThreshold, yThreshold)
}

// MatchToBasis assigns to every basis vector, independently at every
// position, the closest vector by Euclidean distance. Every present cell of
// the result holds exactly len(basis) rows in basis order; matches beyond
// MaxDistance become NaN rows. Absent positions stay absent per the grid
// dispatch contract.
func (vm *VectorMap) MatchToBasis(ctx context.Context, basis [][]float64, optFns ...func(o *geom.MatchOptions)) (*VectorMap, error) {
	start := time.Now()

	if len(basis) == 0 {
		err := ErrEmptyBasis
		vm.metrics.RecordMatch(time.Since(start), err)
		vm.logger.LogMatch(ctx, 0, err)
		return nil, err
	}

	out, err := grid.MapErr(ctx, vm.grid, func(vectors [][]float64) ([][]float64, error) {
		return geom.MatchToBasis(vectors, basis, optFns...)
	}, func(o *grid.MapOptions) {
		o.Concurrency = vm.concurrency
	})
	err = translateError(err)

	vm.metrics.RecordMatch(time.Since(start), err)
	vm.logger.LogMatch(ctx, len(basis), err)

	if err != nil {
		return nil, err
	}
	return vm.derive(out), nil
}

// UniqueMethod selects the clustering strategy used by UniqueVectors.
type UniqueMethod string

const (
	// UniqueMethodThresholdMerge greedily merges vectors closer than the
	// distance threshold.
	UniqueMethodThresholdMerge UniqueMethod = "threshold-merge"

	// UniqueMethodDBSCAN groups vectors by neighborhood density, using the
	// distance threshold as the neighborhood radius.
	UniqueMethodDBSCAN UniqueMethod = "density-based"
)

// UniqueOptions contains configuration options for UniqueVectors.
type UniqueOptions struct {
	// Method selects the clustering strategy.
	Method UniqueMethod

	// DistanceThreshold is the merge distance (threshold-merge) or the
	// neighborhood radius (density-based). A threshold of 0 disables merging
	// and emits a warning diagnostic.
	DistanceThreshold float64

	// MinSamples is the minimum neighborhood size for a core point.
	// Density-based only.
	MinSamples int

	// ReturnClusterAssignment includes the per-point cluster labels in the
	// result.
	ReturnClusterAssignment bool

	// RealUnits scales coordinates by the signal axis calibration before
	// clustering, so the distance threshold is in calibrated units.
	RealUnits bool
}

// DefaultUniqueOptions contains the default configuration options for
// UniqueVectors.
var DefaultUniqueOptions = UniqueOptions{
	Method:            UniqueMethodThresholdMerge,
	DistanceThreshold: 0.01,
	MinSamples:        1,
}

// UniqueResult holds the de-duplicated representative vectors of a scan.
type UniqueResult struct {
	// Vectors holds one representative per cluster in the strategy's
	// deterministic order.
	Vectors [][]float64

	// Labels assigns every flattened input point to its cluster, or
	// cluster.Noise. Nil unless ReturnClusterAssignment was set.
	Labels []int

	// NoiseCount is the number of points assigned to no cluster.
	NoiseCount int

	// Clusters is the full fitted clustering state for downstream reuse.
	Clusters *cluster.Result

	// Calibration is the calibration metadata of the source VectorMap.
	Calibration Calibration
}

// UniqueVectors flattens the vectors of every scan position into one point
// set and reduces it to representative vectors using the configured
// clustering strategy.
func (vm *VectorMap) UniqueVectors(ctx context.Context, optFns ...func(o *UniqueOptions)) (*UniqueResult, error) {
	start := time.Now()

	opts := DefaultUniqueOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	logger := vm.logger.WithMethod(string(opts.Method)).WithThreshold(opts.DistanceThreshold)

	fail := func(err error) (*UniqueResult, error) {
		vm.metrics.RecordUnique(0, time.Since(start), err)
		logger.LogUnique(ctx, 0, 0, err)
		return nil, err
	}

	c, err := vm.newClusterer(opts, logger)
	if err != nil {
		return fail(err)
	}

	points := vm.flattenPoints(opts.RealUnits)

	res, err := c.Fit(points)
	if err != nil {
		return fail(translateError(err))
	}

	vm.metrics.RecordUnique(res.Count(), time.Since(start), nil)
	logger.LogUnique(ctx, len(points), res.Count(), nil)

	ur := &UniqueResult{
		Vectors:     res.Representatives,
		NoiseCount:  res.NoiseCount,
		Clusters:    res,
		Calibration: vm.calibration.clone(),
	}
	if opts.ReturnClusterAssignment {
		ur.Labels = res.Labels
	}
	return ur, nil
}

func (vm *VectorMap) newClusterer(opts UniqueOptions, logger *Logger) (cluster.Clusterer, error) {
	switch opts.Method {
	case UniqueMethodThresholdMerge:
		c, err := cluster.NewThresholdMerge(opts.DistanceThreshold, func(o *cluster.ThresholdMergeOptions) {
			o.Logger = logger.Logger
		})
		return c, translateError(err)
	case UniqueMethodDBSCAN:
		c, err := cluster.NewDBSCAN(opts.DistanceThreshold, opts.MinSamples, func(o *cluster.DBSCANOptions) {
			o.Logger = logger.Logger
		})
		return c, translateError(err)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// flattenPoints collects all vectors across the scan in row-major position
// order. With realUnits, coordinates are scaled by the signal axis
// calibration; missing scale entries default to 1.
func (vm *VectorMap) flattenPoints(realUnits bool) [][]float64 {
	var points [][]float64
	for _, vectors := range vm.grid.All() {
		points = append(points, vectors...)
	}

	if !realUnits {
		return points
	}

	scaled := make([][]float64, len(points))
	for i, p := range points {
		row := make([]float64, len(p))
		for d, v := range p {
			row[d] = v * vm.axisScale(d)
		}
		scaled[i] = row
	}
	return scaled
}

func (vm *VectorMap) axisScale(d int) float64 {
	if d < len(vm.calibration.Scales) && vm.calibration.Scales[d] != 0 {
		return vm.calibration.Scales[d]
	}
	return 1
}

func (vm *VectorMap) axisOffset(d int) float64 {
	if d < len(vm.calibration.Offsets) {
		return vm.calibration.Offsets[d]
	}
	return 0
}

// filterMagnitude zeroes out-of-range norms and keeps rows whose norm is
// still nonzero. Rows are shared with the input, never copied; vector lists
// are read-only by convention.
func filterMagnitude(vectors [][]float64, minMag, maxMag float64) [][]float64 {
	norms := geom.Norms(vectors)

	out := make([][]float64, 0, len(vectors))
	for i, n := range norms {
		if n < minMag || n > maxMag {
			n = 0
		}
		if n != 0 {
			out = append(out, vectors[i])
		}
	}
	return out
}

// filterEdge zeroes rows beyond either threshold and keeps rows whose x
// coordinate is still nonzero.
func filterEdge(vectors [][]float64, xThreshold, yThreshold float64) [][]float64 {
	out := make([][]float64, 0, len(vectors))
	for _, v := range vectors {
		if math.Abs(v[0]) > xThreshold || math.Abs(v[1]) > yThreshold {
			continue
		}
		if v[0] == 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}
