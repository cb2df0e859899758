package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillMarkAndQuery(t *testing.T) {
	f := NewFill(4, 3, 2, DefaultSpacing, 5.0)

	assert.Equal(t, 0, f.Len())
	assert.False(t, f.Contains(1, 1, 1))

	f.Mark(1, 1, 1, 2.5)
	f.Mark(3, 2, 1, 4.0)

	assert.Equal(t, 2, f.Len())
	assert.True(t, f.Contains(1, 1, 1))

	g, ok := f.CostAt(3, 2, 1)
	require.True(t, ok)
	assert.Equal(t, 4.0, g)

	_, ok = f.CostAt(0, 0, 0)
	assert.False(t, ok)
}

func TestFillContainsOutOfBounds(t *testing.T) {
	f := NewFill(2, 2, 2, DefaultSpacing, 1.0)
	f.Mark(0, 0, 0, 0)

	assert.False(t, f.Contains(-1, 0, 0))
	assert.False(t, f.Contains(2, 0, 0))
	assert.False(t, f.Contains(0, 0, 2))
}

func TestFillSubsetOf(t *testing.T) {
	small := NewFill(3, 3, 3, DefaultSpacing, 1.0)
	large := NewFill(3, 3, 3, DefaultSpacing, 2.0)

	small.Mark(0, 0, 0, 0)
	small.Mark(1, 0, 0, 1)
	large.Mark(0, 0, 0, 0)
	large.Mark(1, 0, 0, 1)
	large.Mark(2, 0, 0, 2)

	assert.True(t, small.SubsetOf(large))
	assert.False(t, large.SubsetOf(small))
	assert.True(t, small.SubsetOf(small))

	// Mismatched volumes are never subsets of each other.
	other := NewFill(4, 3, 3, DefaultSpacing, 2.0)
	assert.False(t, small.SubsetOf(other))
}

func TestFillWalk(t *testing.T) {
	f := NewFill(3, 3, 3, Spacing{X: 2, Y: 2, Z: 2, Units: "um"}, 9.0)
	marked := map[Point]float64{
		{0, 0, 0}: 0,
		{2, 1, 0}: 3,
		{1, 2, 2}: 7,
	}
	for p, g := range marked {
		f.Mark(p.X, p.Y, p.Z, g)
	}

	seen := make(map[Point]float64)
	f.Walk(func(x, y, z int, cost float64) {
		seen[Point{x, y, z}] = cost
	})
	assert.Equal(t, marked, seen)

	w, h, d := f.Bounds()
	assert.Equal(t, [3]int{3, 3, 3}, [3]int{w, h, d})
	assert.Equal(t, 2.0, f.Spacing().X)
	assert.Equal(t, 9.0, f.Ceiling())
}
