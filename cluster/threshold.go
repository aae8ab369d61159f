package cluster

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"
)

// ThresholdMergeOptions contains configuration options for ThresholdMerge.
type ThresholdMergeOptions struct {
	// Logger receives diagnostics, such as the zero-threshold warning.
	// If nil, diagnostics are discarded.
	Logger *slog.Logger
}

// DefaultThresholdMergeOptions contains the default configuration options
// for ThresholdMerge.
var DefaultThresholdMergeOptions = ThresholdMergeOptions{
	Logger: nil,
}

// ThresholdMerge greedily merges vectors closer than a distance threshold
// into one cluster and emits the multiplicity-weighted mean of each cluster
// as its representative.
//
// The input is first deduplicated with multiplicity and sorted
// lexicographically by coordinate. Clusters are then formed head-first: the
// first remaining unique vector gathers every remaining unique vector within
// the threshold of itself (membership is measured from the head only, never
// transitively). Representatives are emitted in head order, which makes the
// output deterministic and invariant to input permutation.
type ThresholdMerge struct {
	threshold float64
	logger    *slog.Logger
}

// NewThresholdMerge creates a ThresholdMerge clusterer. A negative threshold
// is rejected. A threshold of exactly zero disables merging entirely, so
// every distinct vector becomes its own cluster; since that degenerates to
// "no clustering", a warning diagnostic is emitted.
func NewThresholdMerge(distanceThreshold float64, optFns ...func(o *ThresholdMergeOptions)) (*ThresholdMerge, error) {
	opts := DefaultThresholdMergeOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if distanceThreshold < 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRadius, distanceThreshold)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if distanceThreshold == 0 {
		logger.Warn("distance threshold 0 disables merging; every distinct vector becomes its own cluster")
	}

	return &ThresholdMerge{
		threshold: distanceThreshold,
		logger:    logger,
	}, nil
}

// Fit implements Clusterer. Every point is assigned to a cluster; threshold
// merging produces no noise.
func (t *ThresholdMerge) Fit(points [][]float64) (*Result, error) {
	if err := checkUniformDimension(points); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return emptyResult(), nil
	}

	uniques := dedupeSorted(points)

	labels := make([]int, len(points))
	reps := make([][]float64, 0, len(uniques))
	members := make([]*roaring.Bitmap, 0, len(uniques))

	dim := len(points[0])
	merged := make([]bool, len(uniques))

	for head := range uniques {
		if merged[head] {
			continue
		}

		group := []int{head}
		merged[head] = true
		for j := head + 1; j < len(uniques); j++ {
			if merged[j] {
				continue
			}
			if floats.Distance(uniques[head].coords, uniques[j].coords, 2) <= t.threshold {
				group = append(group, j)
				merged[j] = true
			}
		}

		// Representative is the mean of the merged unique vectors weighted
		// by their multiplicity in the input.
		id := len(reps)
		rep := make([]float64, dim)
		bitmap := roaring.New()
		total := 0

		for _, j := range group {
			u := uniques[j]
			floats.AddScaled(rep, float64(len(u.sources)), u.coords)
			total += len(u.sources)

			for _, src := range u.sources {
				labels[src] = id
				bitmap.Add(uint32(src))
			}
		}
		floats.Scale(1/float64(total), rep)

		reps = append(reps, rep)
		members = append(members, bitmap)
	}

	return &Result{
		Representatives: reps,
		Labels:          labels,
		Members:         members,
	}, nil
}

type uniqueVector struct {
	coords  []float64
	sources []int
}

// dedupeSorted collapses exact duplicates, keeping the indices of the source
// points, and returns the distinct vectors in lexicographic coordinate order.
func dedupeSorted(points [][]float64) []*uniqueVector {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return lexLess(points[order[i]], points[order[j]])
	})

	var uniques []*uniqueVector
	for _, idx := range order {
		p := points[idx]
		if n := len(uniques); n > 0 && floats.Equal(uniques[n-1].coords, p) {
			uniques[n-1].sources = append(uniques[n-1].sources, idx)
			continue
		}
		uniques = append(uniques, &uniqueVector{coords: p, sources: []int{idx}})
	}
	return uniques
}

func lexLess(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
