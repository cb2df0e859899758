package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds indicates non-positive volume dimensions.
	ErrInvalidBounds = errors.New("engine: volume bounds must be positive")

	// ErrInvalidSpacing indicates a non-positive voxel spacing component.
	ErrInvalidSpacing = errors.New("engine: voxel spacing must be positive")

	// ErrNilStrategy indicates that no cost strategy was supplied.
	ErrNilStrategy = errors.New("engine: cost strategy is nil")

	// ErrNoStart indicates that no start coordinate was supplied.
	ErrNoStart = errors.New("engine: at least one start coordinate is required")

	// ErrBidirectionalNeedsGoal indicates a bidirectional search without a
	// defined goal.
	ErrBidirectionalNeedsGoal = errors.New("engine: bidirectional search requires a defined goal")

	// ErrCeilingRequired indicates a goal-less search without a positive
	// cost ceiling, which would flood the entire volume.
	ErrCeilingRequired = errors.New("engine: goal-less search requires a positive cost ceiling")

	// ErrAlreadyRun indicates a second Run on the same engine. An engine
	// is single-use; its node graph is left in place for inspection after
	// termination.
	ErrAlreadyRun = errors.New("engine: already run")
)

// ErrPointOutOfBounds indicates a start or goal coordinate outside the
// configured volume.
type ErrPointOutOfBounds struct {
	Point  Point
	Bounds [3]int
}

func (e *ErrPointOutOfBounds) Error() string {
	return fmt.Sprintf("engine: point (%d,%d,%d) outside volume %dx%dx%d",
		e.Point.X, e.Point.Y, e.Point.Z, e.Bounds[0], e.Bounds[1], e.Bounds[2])
}
