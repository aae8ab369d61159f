// Package cluster reduces flattened diffraction-vector sets to unique
// representatives.
//
// Two interchangeable strategies implement the Clusterer interface:
//
//   - ThresholdMerge: greedy distance-threshold merging of deduplicated
//     vectors, weighting representatives by multiplicity. Deterministic head
//     order, invariant to input permutation.
//   - DBSCAN: density-based clustering (neighborhood radius plus minimum
//     samples) over the raw point set. Unassigned points are noise and carry
//     the Noise label.
//
// Both strategies return a Result holding the representative vectors, the
// per-point cluster assignment, and per-cluster membership bitmaps:
//
//	tm, err := cluster.NewThresholdMerge(0.1)
//	if err != nil { ... }
//	res, err := tm.Fit(points)
//	for i, rep := range res.Representatives {
//	    fmt.Println(rep, res.Members[i].GetCardinality())
//	}
package cluster
