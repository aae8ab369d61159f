// Package difvec analyzes sets of diffraction vectors extracted from
// scanning electron-diffraction datasets.
//
// For each scan position, an irregular (possibly empty, possibly
// differently-sized) list of detected peak coordinates is converted into
// geometric quantities:
//
//   - Magnitudes and magnitude histograms
//   - 3D reciprocal-space coordinates on the Ewald sphere
//   - Clustered "unique" vectors (threshold merge or density-based)
//   - Rotation alignments between measured and reference vector pairs
//   - Per-position diffraction statistics
//
// The entry point is the VectorMap: a fixed-shape 2D scan grid where every
// cell holds its own variable-length vector list plus the calibration
// metadata needed to map results back to display coordinates. All operations
// are pure; they return new derived values and never mutate the input grid.
//
// # Quick Start
//
// Construct a VectorMap from raw detector peak positions with the fluent
// builder:
//
//	vm, err := difvec.Peaks(peaks).
//	    Center(128, 128).          // Pattern center in pixels
//	    Calibration(0.001).        // Reciprocal Angstrom per pixel
//	    DetectorShape(256, 256).
//	    Build()
//	if err != nil {
//	    panic(err)
//	}
//
// Filter and reduce:
//
//	ctx := context.Background()
//
//	filtered, err := vm.FilterByMagnitude(ctx, 0.1, 1.0)
//	if err != nil {
//	    panic(err)
//	}
//
//	unique, err := filtered.UniqueVectors(ctx, func(o *difvec.UniqueOptions) {
//	    o.Method = difvec.UniqueMethodDBSCAN
//	    o.DistanceThreshold = 0.1
//	    o.MinSamples = 3
//	    o.ReturnClusterAssignment = true
//	})
//
// Convert to reciprocal-space coordinates:
//
//	cart, err := vm.CartesianCoordinates(ctx, 200, 0.2) // 200 kV, 0.2 m
//
// # Error Conventions
//
// Shape mismatches and invalid configuration fail immediately with typed
// errors. Numeric domain errors (coordinates outside the Ewald sphere)
// propagate as NaN rather than raising, matching numeric-pipeline
// conventions; downstream consumers must check for non-finite results.
// Degenerate geometry (zero vectors, collinear pairs) always resolves to a
// defined result.
//
// # Observability
//
// Structured logging and metrics are opt-in:
//
//	metrics := &difvec.BasicMetricsCollector{}
//	vm, _ := difvec.New(g,
//	    difvec.WithLogger(difvec.NewTextLogger(slog.LevelDebug)),
//	    difvec.WithMetricsCollector(metrics),
//	)
//
// The geometry primitives live in the geom subpackage, the clustering
// strategies in cluster, and the ragged scan-grid container in grid; all
// three are usable on their own.
package difvec
