// Package testutil provides testing utilities for Difvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random vectors, ragged peak
// grids, and random rotations.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := make([]float64, 3)
//	rng.FillUniform(vec)      // uniform [0, 1)
//	rng.FillGaussian(vec)     // standard normal
//
// # Synthetic Scan Data
//
//	peaks := rng.PeakGrid(16, 16, 8, 2, 0.3)
//	vm, err := difvec.New(peaks)
package testutil
