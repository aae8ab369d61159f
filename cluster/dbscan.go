package cluster

import (
	"fmt"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"
)

// DBSCANOptions contains configuration options for DBSCAN.
type DBSCANOptions struct {
	// Logger receives diagnostics. If nil, diagnostics are discarded.
	Logger *slog.Logger
}

// DefaultDBSCANOptions contains the default configuration options for DBSCAN.
var DefaultDBSCANOptions = DBSCANOptions{
	Logger: nil,
}

// DBSCAN groups points by neighborhood density: a point with at least
// minSamples neighbors within eps (itself included) is a core point, and
// clusters are grown from core points through their neighborhoods. Points
// reachable from no core point are noise.
//
// Clusters are labeled in order of first appearance in the input, and the
// representative of a cluster is the centroid over all of its member points,
// duplicates included. Noise points are excluded from the representatives but
// remain visible through Labels and NoiseCount.
type DBSCAN struct {
	eps        float64
	minSamples int
	logger     *slog.Logger
}

// NewDBSCAN creates a DBSCAN clusterer with the given neighborhood radius and
// minimum sample count. A negative eps or a non-positive minSamples is
// rejected. An eps of exactly zero restricts neighborhoods to exact
// duplicates and emits a warning diagnostic.
func NewDBSCAN(eps float64, minSamples int, optFns ...func(o *DBSCANOptions)) (*DBSCAN, error) {
	opts := DefaultDBSCANOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if eps < 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRadius, eps)
	}
	if minSamples < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMinSamples, minSamples)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if eps == 0 {
		logger.Warn("eps 0 restricts neighborhoods to exact duplicates; every distinct vector becomes its own cluster or noise")
	}

	return &DBSCAN{
		eps:        eps,
		minSamples: minSamples,
		logger:     logger,
	}, nil
}

// Fit implements Clusterer.
func (d *DBSCAN) Fit(points [][]float64) (*Result, error) {
	if err := checkUniformDimension(points); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return emptyResult(), nil
	}

	const unvisited = -2

	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = unvisited
	}

	clusters := 0
	for i := range points {
		if labels[i] != unvisited {
			continue
		}

		neighbors := d.regionQuery(points, i)
		if len(neighbors) < d.minSamples {
			labels[i] = Noise
			continue
		}

		id := clusters
		clusters++
		labels[i] = id

		// Seed-set expansion. Noise points reachable from a core point are
		// adopted as border points; only core points extend the seed set.
		for k := 0; k < len(neighbors); k++ {
			j := neighbors[k]
			if labels[j] == Noise {
				labels[j] = id
			}
			if labels[j] != unvisited {
				continue
			}
			labels[j] = id

			jn := d.regionQuery(points, j)
			if len(jn) >= d.minSamples {
				neighbors = append(neighbors, jn...)
			}
		}
	}

	dim := len(points[0])
	reps := make([][]float64, clusters)
	members := make([]*roaring.Bitmap, clusters)
	counts := make([]int, clusters)
	for i := range reps {
		reps[i] = make([]float64, dim)
		members[i] = roaring.New()
	}

	noise := 0
	for i, label := range labels {
		if label == Noise {
			noise++
			continue
		}
		floats.Add(reps[label], points[i])
		counts[label]++
		members[label].Add(uint32(i))
	}
	for i := range reps {
		floats.Scale(1/float64(counts[i]), reps[i])
	}

	return &Result{
		Representatives: reps,
		Labels:          labels,
		Members:         members,
		NoiseCount:      noise,
	}, nil
}

func (d *DBSCAN) regionQuery(points [][]float64, i int) []int {
	var neighbors []int
	for j := range points {
		if floats.Distance(points[i], points[j], 2) <= d.eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}
