package cost

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	u, err := NewUniform(2.5)
	require.NoError(t, err)

	assert.Equal(t, 2.5, u.LocalCost(0, 0, 0))
	assert.Equal(t, 2.5, u.MinCostPerUnitDistance())
	assert.Equal(t, 0.0, u.EstimateCostToGoal(1, 2, 3, true))
}

func TestUniformValidation(t *testing.T) {
	_, err := NewUniform(0)
	assert.ErrorIs(t, err, ErrNonPositiveCost)

	_, err = NewUniform(-1)
	assert.ErrorIs(t, err, ErrNonPositiveCost)
}

func TestGridField(t *testing.T) {
	f := NewGridField(3, 4, 5, 1.0)

	assert.Equal(t, 1.0, f.Value(2, 3, 4))

	f.Set(1, 2, 3, 42.0)
	assert.Equal(t, 42.0, f.Value(1, 2, 3))
	assert.Equal(t, 1.0, f.Value(2, 2, 3))
}

func TestReciprocal(t *testing.T) {
	f := NewGridField(2, 1, 1, 0)
	f.Set(0, 0, 0, 255)
	f.Set(1, 0, 0, 51)

	r, err := NewReciprocal(f, 255)
	require.NoError(t, err)

	assert.Equal(t, 1.0, r.LocalCost(0, 0, 0))
	assert.Equal(t, 5.0, r.LocalCost(1, 0, 0))
	assert.Equal(t, 1.0, r.MinCostPerUnitDistance())
}

func TestReciprocalClamps(t *testing.T) {
	f := NewGridField(2, 1, 1, 0)
	f.Set(0, 0, 0, -3) // below range
	f.Set(1, 0, 0, 1000)

	r, err := NewReciprocal(f, 255)
	require.NoError(t, err)

	assert.Equal(t, 255.0, r.LocalCost(0, 0, 0))
	assert.Equal(t, 1.0, r.LocalCost(1, 0, 0))
}

func TestReciprocalValidation(t *testing.T) {
	_, err := NewReciprocal(nil, 255)
	assert.ErrorIs(t, err, ErrNilField)

	_, err = NewReciprocal(NewGridField(1, 1, 1, 0), 0)
	assert.ErrorIs(t, err, ErrNonPositiveCost)
}

func TestEuclideanHeuristic(t *testing.T) {
	base, err := NewUniform(2.0)
	require.NoError(t, err)

	s := WithEuclideanHeuristic(base, [3]float64{1, 1, 1}, [3]int{0, 0, 0}, [3]int{3, 4, 0})

	// From the start corner towards the goal: distance 5, floor 2.
	assert.InDelta(t, 10.0, s.EstimateCostToGoal(0, 0, 0, true), 1e-12)
	// Goal-side frontier estimates towards the start.
	assert.InDelta(t, 10.0, s.EstimateCostToGoal(3, 4, 0, false), 1e-12)
	// At the target the estimate vanishes.
	assert.Equal(t, 0.0, s.EstimateCostToGoal(3, 4, 0, true))

	// Local cost passes through to the base strategy.
	assert.Equal(t, 2.0, s.LocalCost(1, 1, 1))
}

func TestEuclideanHeuristicAnisotropicSpacing(t *testing.T) {
	base, err := NewUniform(1.0)
	require.NoError(t, err)

	s := WithEuclideanHeuristic(base, [3]float64{0.5, 0.5, 2.0}, [3]int{0, 0, 0}, [3]int{0, 0, 1})

	assert.InDelta(t, 2.0, s.EstimateCostToGoal(0, 0, 0, true), 1e-12)
	assert.InDelta(t, math.Sqrt(0.25+4.0), s.EstimateCostToGoal(1, 0, 0, true), 1e-12)
}
