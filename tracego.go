package tracego

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/hupe1980/tracego/cost"
	"github.com/hupe1980/tracego/engine"
	"github.com/hupe1980/tracego/snapshot"
)

// Re-exported engine types, so basic usage needs a single import.
type (
	// Config is the search configuration; see engine.Config.
	Config = engine.Config
	// Point is a voxel coordinate.
	Point = engine.Point
	// Spacing holds physical voxel extents.
	Spacing = engine.Spacing
	// Path is a traced voxel path.
	Path = engine.Path
	// Fill is a flood-fill result.
	Fill = engine.Fill
	// Result is the raw outcome of one search run.
	Result = engine.Result
)

// Trace finds the minimum-cost path for the given configuration. The
// configuration must define at least one goal.
//
// Non-success terminations surface as typed errors: ErrTimedOut,
// ErrCancelled, ErrUnreachable, ErrNodeBudget.
func Trace(ctx context.Context, cfg Config, strategy cost.Strategy, optFns ...Option) (*Path, error) {
	if !cfg.GoalDefined() {
		return nil, ErrTraceWithoutGoal
	}
	o := applyOptions(optFns)

	res, err := run(ctx, cfg, strategy, &o)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// FloodFill expands the region reachable from the start points within the
// cost ceiling. The configuration must not define goals.
//
// When a snapshot store is configured, the fill is persisted before
// returning.
func FloodFill(ctx context.Context, cfg Config, strategy cost.Strategy, optFns ...Option) (*Fill, error) {
	if cfg.GoalDefined() {
		return nil, ErrFillWithGoal
	}
	o := applyOptions(optFns)

	res, err := run(ctx, cfg, strategy, &o)
	if err != nil {
		return nil, err
	}

	if o.snapStore != nil {
		if err := snapshot.Save(ctx, o.snapStore, o.snapName, res.Fill, o.codec); err != nil {
			return nil, err
		}
	}
	return res.Fill, nil
}

// Run executes one search and returns the raw result, leaving the typed
// outcome to the caller. Use this when a timeout or an exhausted frontier
// is an expected outcome rather than an error.
func Run(ctx context.Context, cfg Config, strategy cost.Strategy, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)

	e, err := engine.New(cfg, strategy, o.engineOptions()...)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx)
}

func run(ctx context.Context, cfg Config, strategy cost.Strategy, o *options) (*Result, error) {
	e, err := engine.New(cfg, strategy, o.engineOptions()...)
	if err != nil {
		return nil, err
	}
	res, err := e.Run(ctx)
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		return nil, reasonError(res.Reason)
	}
	return res, nil
}

// Route is one start/goal pair of a batch trace.
type Route struct {
	Start Point
	Goal  Point
}

// TraceBatch traces every route over the same volume and strategy,
// bounded-parallel. The result slice is ordered like routes. The first
// failing route cancels the remaining ones.
//
// The strategy is shared across concurrent searches and must be safe for
// concurrent reads.
func TraceBatch(ctx context.Context, cfg Config, strategy cost.Strategy, routes []Route, optFns ...Option) ([]*Path, error) {
	o := applyOptions(optFns)

	limit := o.concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	sem := semaphore.NewWeighted(int64(limit))

	paths := make([]*Path, len(routes))
	g, gctx := errgroup.WithContext(ctx)

	for i, route := range routes {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}

		g.Go(func() error {
			defer sem.Release(1)

			routeCfg := cfg
			routeCfg.Start = []Point{route.Start}
			routeCfg.Goal = []Point{route.Goal}

			res, err := run(gctx, routeCfg, strategy, &o)
			if err != nil {
				return err
			}
			paths[i] = res.Path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
