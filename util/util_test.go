package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomField(t *testing.T) {
	rng := NewRNG(4711)

	field := rng.GenerateRandomField(8, 6, 4, 1.0, 10.0)

	for z := range 4 {
		for y := range 6 {
			for x := range 8 {
				v := field.Value(x, y, z)
				assert.GreaterOrEqual(t, v, 1.0)
				assert.Less(t, v, 10.0)
			}
		}
	}

	// Same seed, same field.
	again := NewRNG(4711).GenerateRandomField(8, 6, 4, 1.0, 10.0)
	assert.Equal(t, again.Value(3, 2, 1), field.Value(3, 2, 1))
}

func TestGenerateRandomPoints(t *testing.T) {
	rng := NewRNG(1)

	points := rng.GenerateRandomPoints(32, 10, 20, 5)

	assert.Len(t, points, 32)
	for _, p := range points {
		assert.Less(t, p[0], 10)
		assert.Less(t, p[1], 20)
		assert.Less(t, p[2], 5)
	}
}
