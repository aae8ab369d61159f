package testutil

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/difvec/geom"
	"github.com/hupe1980/difvec/grid"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// FillGaussian fills dst with values from a standard normal distribution.
func (r *RNG) FillGaussian(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.NormFloat64()
	}
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// UniformRangeVectors generates random vectors with values in range [-1, 1).
func (r *RNG) UniformRangeVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()*2 - 1
		}
		vectors[i] = vec
	}

	return vectors
}

// GaussianVectors generates random vectors with values from a standard normal distribution.
func (r *RNG) GaussianVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.NormFloat64()
		}
		vectors[i] = vec
	}

	return vectors
}

// UnitVector generates a single L2-normalized random vector.
// Uses Gaussian sampling for a uniform distribution on the sphere.
func (r *RNG) UnitVector(dimensions int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]float64, dimensions)
	var norm float64
	for j := range vec {
		v := r.rand.NormFloat64()
		vec[j] = v
		norm += v * v
	}

	if norm == 0 {
		norm = 1
	}

	invNorm := 1.0 / math.Sqrt(norm)
	for j := range vec {
		vec[j] *= invNorm
	}

	return vec
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
func (r *RNG) UnitVectors(num int, dimensions int) [][]float64 {
	vectors := make([][]float64, num)
	for i := range num {
		vectors[i] = r.UnitVector(dimensions)
	}

	return vectors
}

// ClusteredVectors generates vectors clustered around random centroids.
// Useful for exercising unique-vector extraction on non-uniform data.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) [][]float64 {
	centroids := r.UnitVectors(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	vectors := make([][]float64, num)

	for i := range num {
		centroid := centroids[i%clusters]
		vec := data[i*dim : (i+1)*dim]

		for j := range dim {
			vec[j] = centroid[j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
	}

	return vectors
}

// PeakGrid generates a ragged scan grid of detector peak lists. Each
// position holds between 0 and maxPeaks vectors with coordinates in
// [-extent, extent); positions that draw zero peaks stay nil, matching
// what peak finding produces on vacuum regions.
func (r *RNG) PeakGrid(rows, cols, maxPeaks, dimensions int, extent float64) *grid.Grid[[][]float64] {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := grid.New[[][]float64](rows, cols)

	for i := range rows {
		for j := range cols {
			n := r.rand.Intn(maxPeaks + 1)
			if n == 0 {
				continue
			}

			peaks := make([][]float64, n)
			for k := range n {
				vec := make([]float64, dimensions)
				for d := range vec {
					vec[d] = (r.rand.Float64()*2 - 1) * extent
				}
				peaks[k] = vec
			}

			g.Set(i, j, peaks)
		}
	}

	return g
}

// RotationMatrix generates a random 3D rotation: a uniform random axis
// and an angle in [0, 2π).
func (r *RNG) RotationMatrix() (*mat.Dense, error) {
	axis := r.UnitVector(3)
	angle := r.Float64() * 2 * math.Pi

	return geom.RotationAboutAxis(axis, angle)
}
