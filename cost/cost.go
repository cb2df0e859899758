// Package cost defines the pluggable cost model consumed by the search
// engine, together with a small set of ready-made strategies.
//
// A Strategy supplies three functions: the local traversal cost of entering
// a voxel, a heuristic estimate of the remaining cost to the relevant goal,
// and a lower bound on cost per unit distance. The engine clamps any local
// cost below the lower bound up to it, which keeps the step-cost computation
// consistent with an admissible heuristic.
//
// A zero heuristic degenerates the search to Dijkstra's algorithm; wrap any
// strategy with WithEuclideanHeuristic to make it goal-directed.
package cost

import "errors"

// Sentinel errors returned by strategy constructors.
var (
	// ErrNonPositiveCost indicates a uniform cost that is zero or negative.
	ErrNonPositiveCost = errors.New("cost: uniform cost must be positive")

	// ErrNilField indicates that a nil scalar field was supplied.
	ErrNilField = errors.New("cost: scalar field is nil")
)

// Strategy supplies the cost model for one search.
//
// Implementations must be safe for concurrent reads if the same instance is
// shared between searches; the engine itself only ever reads.
type Strategy interface {
	// LocalCost returns the cost per unit distance of moving into the
	// voxel at (x, y, z). Values below MinCostPerUnitDistance are clamped
	// up by the engine.
	LocalCost(x, y, z int) float64

	// EstimateCostToGoal returns the heuristic estimate of the remaining
	// cost from (x, y, z) to the goal of the given search direction.
	// It must return 0 when no goal is defined, and must never
	// overestimate the true remaining cost for optimality to hold.
	EstimateCostToGoal(x, y, z int, fromStart bool) float64

	// MinCostPerUnitDistance returns a lower bound on LocalCost over the
	// whole volume. The default strategy floor is 0.
	MinCostPerUnitDistance() float64
}

// Uniform is a constant-cost strategy with no heuristic: plain Dijkstra
// over a homogeneous volume.
type Uniform struct {
	cost float64
}

// NewUniform creates a Uniform strategy with the given cost per unit
// distance.
func NewUniform(cost float64) (*Uniform, error) {
	if cost <= 0 {
		return nil, ErrNonPositiveCost
	}
	return &Uniform{cost: cost}, nil
}

// LocalCost returns the constant cost.
func (u *Uniform) LocalCost(_, _, _ int) float64 { return u.cost }

// EstimateCostToGoal returns 0; Uniform has no defined goal.
func (u *Uniform) EstimateCostToGoal(_, _, _ int, _ bool) float64 { return 0 }

// MinCostPerUnitDistance returns the constant cost.
func (u *Uniform) MinCostPerUnitDistance() float64 { return u.cost }
