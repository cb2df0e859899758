package cost

import "math"

// euclidean wraps a base strategy with a straight-line heuristic towards a
// fixed start/goal pair, scaled by the base strategy's cost floor. As long
// as the floor really is a lower bound on local cost, the heuristic never
// overestimates the true remaining cost and the search stays optimal.
type euclidean struct {
	Strategy

	spacing [3]float64
	start   [3]int
	goal    [3]int
}

// WithEuclideanHeuristic makes base goal-directed: the heuristic for a node
// is its physical straight-line distance to the goal (or, for the goal-side
// frontier, to the start) multiplied by base.MinCostPerUnitDistance().
//
// spacing holds the physical voxel extents; start and goal are voxel
// coordinates.
func WithEuclideanHeuristic(base Strategy, spacing [3]float64, start, goal [3]int) Strategy {
	return &euclidean{
		Strategy: base,
		spacing:  spacing,
		start:    start,
		goal:     goal,
	}
}

func (e *euclidean) EstimateCostToGoal(x, y, z int, fromStart bool) float64 {
	target := e.goal
	if !fromStart {
		target = e.start
	}
	dx := float64(x-target[0]) * e.spacing[0]
	dy := float64(y-target[1]) * e.spacing[1]
	dz := float64(z-target[2]) * e.spacing[2]
	return math.Sqrt(dx*dx+dy*dy+dz*dz) * e.Strategy.MinCostPerUnitDistance()
}
