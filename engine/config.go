package engine

import (
	"log/slog"
	"time"
)

// Point is a voxel coordinate inside the volume.
type Point struct {
	X, Y, Z int
}

// Spacing holds the physical voxel extents plus a unit label.
type Spacing struct {
	X, Y, Z float64
	Units   string
}

// DefaultSpacing is isotropic unit spacing.
var DefaultSpacing = Spacing{X: 1, Y: 1, Z: 1, Units: "voxel"}

// Config is the read-only search configuration owned by the caller.
type Config struct {
	// Width, Height, Depth are the volume bounds.
	Width, Height, Depth int

	// Spacing holds the physical voxel extents. The zero value is
	// replaced by DefaultSpacing.
	Spacing Spacing

	// Start holds one or more start coordinates. Required.
	Start []Point

	// Goal holds the goal coordinates. Empty means no defined goal: the
	// search degenerates to a cost-bounded flood fill.
	Goal []Point

	// Bidirectional enables the goal-side frontier. Requires a defined
	// goal.
	Bidirectional bool

	// CostCeiling bounds how far the search may expand: neighbors whose
	// accumulated cost exceeds it are discarded. Required (positive) in
	// goal-less mode; optional in goal-directed mode, where it makes an
	// unreachable goal terminate with POINTS_EXHAUSTED instead of
	// flooding the volume. 0 means unbounded.
	CostCeiling float64

	// Timeout is the wall-clock budget. 0 means unbounded.
	Timeout time.Duration

	// ReportInterval is the minimum interval between progress callbacks.
	// 0 means progress is never reported.
	ReportInterval time.Duration

	// MaxNodes caps the number of search nodes that may be allocated;
	// exceeding it terminates the search with OUT_OF_MEMORY. 0 means
	// unlimited.
	MaxNodes int
}

// GoalDefined returns true if at least one goal coordinate is configured.
func (c *Config) GoalDefined() bool { return len(c.Goal) > 0 }

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Depth <= 0 {
		return ErrInvalidBounds
	}
	if c.Spacing.X <= 0 || c.Spacing.Y <= 0 || c.Spacing.Z <= 0 {
		return ErrInvalidSpacing
	}
	if len(c.Start) == 0 {
		return ErrNoStart
	}
	if c.Bidirectional && !c.GoalDefined() {
		return ErrBidirectionalNeedsGoal
	}
	if !c.GoalDefined() && c.CostCeiling <= 0 {
		return ErrCeilingRequired
	}
	for _, p := range append(append([]Point(nil), c.Start...), c.Goal...) {
		if p.X < 0 || p.X >= c.Width || p.Y < 0 || p.Y >= c.Height || p.Z < 0 || p.Z >= c.Depth {
			return &ErrPointOutOfBounds{Point: p, Bounds: [3]int{c.Width, c.Height, c.Depth}}
		}
	}
	return nil
}

// Options holds cross-cutting engine dependencies.
type Options struct {
	// Logger receives lifecycle and termination events at debug level.
	Logger *slog.Logger

	// Observer receives progress and lifecycle notifications. Observers
	// must not block; see AsyncObserver for a decoupled implementation.
	Observer ProgressObserver

	// CheckStride is the number of loop iterations between timeout and
	// progress checks. Cancellation is observed every iteration
	// regardless.
	CheckStride int
}

// DefaultOptions are the options used when none are supplied.
var DefaultOptions = Options{
	Observer:    NoopProgressObserver{},
	CheckStride: 256,
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver sets the progress observer.
func WithObserver(obs ProgressObserver) func(*Options) {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithCheckStride sets the loop stride for timeout and progress checks.
func WithCheckStride(n int) func(*Options) {
	return func(o *Options) {
		o.CheckStride = n
	}
}
