// Package geom provides the stateless geometry primitives for diffraction
// vector analysis.
//
// All functions operate on float64 row vectors ([]float64) or batches of rows
// ([][]float64) and follow numeric-pipeline conventions: domain errors
// propagate as NaN, degenerate geometry resolves to a defined fallback, and
// only programmer errors (paired inputs of differing shape) return an error.
//
// # Primitives
//
//   - Norms: Euclidean norm per row
//   - AngleBetween: per-row angle in [0, pi] with zero-norm guard
//   - DetectorToReciprocal: flat detector coordinates onto the Ewald sphere
//   - NormalizeOrZero: in-place unit normalization that skips zero rows
//   - ElectronWavelength: relativistic wavelength from accelerating voltage
//
// # Rotation Recovery
//
// RotationsBetweenPairs recovers the batch of 3x3 rotation matrices mapping a
// single reference vector pair onto many target pairs, with explicit fallback
// chains for degenerate (collinear or zero) pairs:
//
//	rots, err := geom.RotationsBetweenPairs(fromV1, fromV2, toV1, toV2)
//
// # Basis Matching
//
// MatchToBasis assigns the closest measured vector to every basis vector via
// a dense pairwise distance matrix:
//
//	matched, err := geom.MatchToBasis(vectors, basis, func(o *geom.MatchOptions) {
//	    o.MaxDistance = 0.02
//	})
package geom
