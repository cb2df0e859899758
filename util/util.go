package util

import (
	"math/rand"

	"github.com/hupe1980/tracego/cost"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomField generates a dense scalar field with values uniformly
// distributed in [min, max). Used for reproducible test and benchmark
// volumes.
func (r *RNG) GenerateRandomField(width, height, depth int, min, max float64) *cost.GridField {
	field := cost.NewGridField(width, height, depth, min)
	for z := range depth {
		for y := range height {
			for x := range width {
				field.Set(x, y, z, min+(max-min)*r.rand.Float64())
			}
		}
	}
	return field
}

// GenerateRandomPoints generates coordinates uniformly distributed over
// the volume.
func (r *RNG) GenerateRandomPoints(num, width, height, depth int) [][3]int {
	points := make([][3]int, num)
	for i := range points {
		points[i] = [3]int{
			r.rand.Intn(width),
			r.rand.Intn(height),
			r.rand.Intn(depth),
		}
	}
	return points
}
