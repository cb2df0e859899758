package tracego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/tracego/engine"
)

var (
	// ErrCancelled is returned when the caller cancelled the context
	// before the search finished.
	ErrCancelled = errors.New("search cancelled")

	// ErrTimedOut is returned when the wall-clock budget expired.
	ErrTimedOut = errors.New("search timed out")

	// ErrUnreachable is returned when a goal-directed search drained its
	// frontier without reaching the goal.
	ErrUnreachable = errors.New("goal unreachable")

	// ErrNodeBudget is returned when the configured node budget was
	// exhausted during expansion.
	ErrNodeBudget = errors.New("node budget exceeded")

	// ErrFillWithGoal is returned when a flood fill configuration defines
	// goal coordinates.
	ErrFillWithGoal = errors.New("flood fill configuration must not define goals")

	// ErrTraceWithoutGoal is returned when a trace configuration defines
	// no goal coordinates.
	ErrTraceWithoutGoal = errors.New("trace configuration must define a goal")
)

// reasonError maps a non-success termination to a typed error. The exit
// reason name is preserved in the message for log correlation.
func reasonError(reason engine.ExitReason) error {
	switch reason {
	case engine.ReasonCancelled:
		return fmt.Errorf("%w (%s)", ErrCancelled, reason)
	case engine.ReasonTimedOut:
		return fmt.Errorf("%w (%s)", ErrTimedOut, reason)
	case engine.ReasonPointsExhausted:
		return fmt.Errorf("%w (%s)", ErrUnreachable, reason)
	case engine.ReasonOutOfMemory:
		return fmt.Errorf("%w (%s)", ErrNodeBudget, reason)
	default:
		return fmt.Errorf("search failed (%s)", reason)
	}
}
