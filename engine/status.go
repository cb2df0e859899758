package engine

// LifecycleStatus describes the externally observable state of an engine.
type LifecycleStatus int32

const (
	// StatusPaused means Run has not been started yet.
	StatusPaused LifecycleStatus = iota
	// StatusRunning means the main loop is executing.
	StatusRunning
	// StatusStopping means the engine is terminating and cannot be used
	// again.
	StatusStopping
)

func (s LifecycleStatus) String() string {
	switch s {
	case StatusPaused:
		return "PAUSED"
	case StatusRunning:
		return "RUNNING"
	case StatusStopping:
		return "STOPPING"
	default:
		return "UNKNOWN"
	}
}

// ExitReason is the typed termination outcome of a search.
type ExitReason int

const (
	// ReasonSuccess means the goal was found, the frontiers met, or a
	// goal-less fill exhausted its bounded region.
	ReasonSuccess ExitReason = iota
	// ReasonCancelled means the caller cancelled the context.
	ReasonCancelled
	// ReasonTimedOut means the wall-clock budget was exceeded.
	ReasonTimedOut
	// ReasonPointsExhausted means a goal-directed search ran out of
	// frontier without reaching the goal, e.g. because the goal is
	// unreachable under the configured cost ceiling.
	ReasonPointsExhausted
	// ReasonOutOfMemory means the node budget was exhausted during
	// expansion.
	ReasonOutOfMemory
)

var exitReasonNames = []string{"SUCCESS", "CANCELLED", "TIMED_OUT", "POINTS_EXHAUSTED", "OUT_OF_MEMORY"}

func (r ExitReason) String() string {
	if int(r) < len(exitReasonNames) {
		return exitReasonNames[r]
	}
	return "UNKNOWN"
}
