package engine

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/tracego/cost"
	"github.com/hupe1980/tracego/internal/arena"
)

// Result is the outcome of one search run.
type Result struct {
	// Reason is the typed termination outcome.
	Reason ExitReason

	// Path is the discovered path; non-nil only on goal-directed success.
	Path *Path

	// Fill is the populated cost map; non-nil only on goal-less success.
	Fill *Fill

	// Open and Closed are the final node counts summed over directions.
	Open, Closed int64

	// Nodes is the total number of nodes allocated by the search.
	Nodes int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Success reports whether the search terminated successfully.
func (r *Result) Success() bool { return r.Reason == ReasonSuccess }

// Engine orchestrates one search over a 3D cost field. It is single-use:
// construct, Run once, inspect the result.
type Engine struct {
	cfg      Config
	strategy cost.Strategy
	opts     Options

	nodes *arena.Arena
	start *frontier
	goal  *frontier // nil unless bidirectional

	startSet map[uint64]struct{}
	goalSet  map[uint64]struct{}

	// stepDist caches the physical distance of each neighbor offset,
	// indexed by (dz+1, dx+1, dy+1).
	stepDist [3][3][3]float64
	floor    float64

	// Cheapest junction discovered between the two frontiers so far.
	// Both indices address the same voxel, one node per direction.
	joinCost  float64
	joinStart arena.Index
	joinGoal  arena.Index

	mu     sync.Mutex
	status LifecycleStatus
	reason ExitReason
	ran    bool

	logger  *slog.Logger
	limiter *rate.Limiter
}

// New validates the configuration, seeds the frontiers, and returns an
// engine ready to Run.
func New(cfg Config, strategy cost.Strategy, optFns ...func(*Options)) (*Engine, error) {
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	if cfg.Spacing == (Spacing{}) {
		cfg.Spacing = DefaultSpacing
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Observer == nil {
		opts.Observer = NoopProgressObserver{}
	}
	if opts.CheckStride <= 0 {
		opts.CheckStride = DefaultOptions.CheckStride
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		cfg:       cfg,
		strategy:  strategy,
		opts:      opts,
		nodes:     arena.New(cfg.MaxNodes),
		start:     newFrontier(cfg.Depth, true),
		floor:     strategy.MinCostPerUnitDistance(),
		status:    StatusPaused,
		logger:    logger,
		joinCost:  math.Inf(1),
		joinStart: arena.None,
		joinGoal:  arena.None,
	}
	if cfg.Bidirectional {
		e.goal = newFrontier(cfg.Depth, false)
	}
	if cfg.ReportInterval > 0 {
		e.limiter = rate.NewLimiter(rate.Every(cfg.ReportInterval), 1)
	}

	for dz := -1; dz <= 1; dz++ {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				sx := float64(dx) * cfg.Spacing.X
				sy := float64(dy) * cfg.Spacing.Y
				sz := float64(dz) * cfg.Spacing.Z
				e.stepDist[dz+1][dx+1][dy+1] = math.Sqrt(sx*sx + sy*sy + sz*sz)
			}
		}
	}

	e.startSet = pointSet(cfg, cfg.Start)
	e.goalSet = pointSet(cfg, cfg.Goal)

	if err := e.seed(); err != nil {
		return nil, err
	}
	return e, nil
}

func pointSet(cfg Config, pts []Point) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(pts))
	for _, p := range pts {
		set[cfg.offset(p)] = struct{}{}
	}
	return set
}

func (c *Config) offset(p Point) uint64 {
	return (uint64(p.Z)*uint64(c.Height)+uint64(p.Y))*uint64(c.Width) + uint64(p.X)
}

// seed populates the frontiers with the configured start (and, if
// bidirectional, goal) coordinates. Duplicate coordinates are ignored.
func (e *Engine) seed() error {
	for _, p := range e.cfg.Start {
		if err := e.seedPoint(e.start, p, true); err != nil {
			return err
		}
	}
	if e.goal != nil {
		for _, p := range e.cfg.Goal {
			if err := e.seedPoint(e.goal, p, false); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) seedPoint(f *frontier, p Point, fromStart bool) error {
	if _, ok := f.lookup(int32(p.X), int32(p.Y), int32(p.Z)); ok {
		return nil
	}
	var h float64
	if e.cfg.GoalDefined() {
		h = e.strategy.EstimateCostToGoal(p.X, p.Y, p.Z, fromStart)
	}
	i, err := e.nodes.Alloc(arena.Node{
		X: int32(p.X), Y: int32(p.Y), Z: int32(p.Z),
		H:    h,
		Pred: arena.None,
	})
	if err != nil {
		return err
	}
	f.push(e.nodes, i)
	return nil
}

// Status returns the current lifecycle status.
func (e *Engine) Status() LifecycleStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// ExitReason returns the termination reason of a finished run.
func (e *Engine) ExitReason() ExitReason {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reason
}

func (e *Engine) setStatus(s LifecycleStatus) {
	e.mu.Lock()
	e.status = s
	e.mu.Unlock()
	e.opts.Observer.OnStatus(s)
}

func (e *Engine) openCount() int64 {
	n := int64(e.start.openCount())
	if e.goal != nil {
		n += int64(e.goal.openCount())
	}
	return n
}

func (e *Engine) closedCount() int64 {
	n := e.start.closed
	if e.goal != nil {
		n += e.goal.closed
	}
	return n
}

func (e *Engine) atGoal(x, y, z int, fromStart bool) bool {
	k := e.cfg.offset(Point{X: x, Y: y, Z: z})
	if fromStart {
		_, ok := e.goalSet[k]
		return ok
	}
	_, ok := e.startSet[k]
	return ok
}

// Run executes the search to completion on the calling goroutine and
// returns the typed result. The returned error is reserved for misuse
// (running twice); all search outcomes, including failures, are reported
// through Result.Reason.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	e.mu.Lock()
	if e.ran {
		e.mu.Unlock()
		return nil, ErrAlreadyRun
	}
	e.ran = true
	e.mu.Unlock()

	e.setStatus(StatusRunning)
	started := time.Now()

	var deadline time.Time
	if e.cfg.Timeout > 0 {
		deadline = started.Add(e.cfg.Timeout)
	}

	e.logger.Debug("search started",
		slog.Int("width", e.cfg.Width),
		slog.Int("height", e.cfg.Height),
		slog.Int("depth", e.cfg.Depth),
		slog.Bool("bidirectional", e.cfg.Bidirectional),
		slog.Bool("goal_defined", e.cfg.GoalDefined()),
	)

	loops := 0
	for e.start.openCount() > 0 || (e.goal != nil && e.goal.openCount() > 0) {
		select {
		case <-ctx.Done():
			return e.finish(ReasonCancelled, nil, nil, started), nil
		default:
		}

		if loops%e.opts.CheckStride == 0 {
			if !deadline.IsZero() && time.Now().After(deadline) {
				return e.finish(ReasonTimedOut, nil, nil, started), nil
			}
			if e.limiter != nil && e.limiter.Allow() {
				e.opts.Observer.OnProgress(e.openCount(), e.closedCount())
			}
		}
		loops++

		// Expand the side with the smaller open set; it tends to
		// equalize the two search volumes. Ties go to the start side.
		this, other := e.start, e.goal
		if e.goal != nil && (e.start.openCount() == 0 ||
			(e.goal.openCount() > 0 && e.goal.openCount() < e.start.openCount())) {
			this, other = e.goal, e.start
		}
		fromStart := this == e.start

		pi, ok := this.pop()
		if !ok {
			continue
		}

		p := *e.nodes.Get(pi)

		if e.cfg.GoalDefined() && e.atGoal(int(p.X), int(p.Y), int(p.Z), fromStart) {
			var pts []Point
			if fromStart {
				pts = pathOf(e.nodes, pi)
			} else {
				pts = walk(e.nodes, pi)
			}
			path := &Path{points: pts, spacing: e.cfg.Spacing, cost: p.G}
			return e.finish(ReasonSuccess, path, nil, started), nil
		}

		this.close(e.nodes, pi)

		if res := e.expand(this, other, pi, p, fromStart, started); res != nil {
			return res, nil
		}

		if e.joinSettled() {
			return e.finish(ReasonSuccess, e.joinPath(), nil, started), nil
		}
	}

	if e.cfg.GoalDefined() {
		if e.joinStart != arena.None {
			// Both frontiers drained after meeting; the recorded
			// junction is final.
			return e.finish(ReasonSuccess, e.joinPath(), nil, started), nil
		}
		// Both frontiers drained without reaching the goal. With an
		// admissible heuristic and no ceiling this indicates a
		// disconnected field or a configuration problem.
		return e.finish(ReasonPointsExhausted, nil, nil, started), nil
	}
	return e.finish(ReasonSuccess, nil, e.buildFill(), started), nil
}

// expand relaxes the 26-connected neighborhood of the just-closed node.
// A non-nil result terminates the search.
func (e *Engine) expand(this, other *frontier, pi arena.Index, p arena.Node, fromStart bool, started time.Time) *Result {
	for dz := -1; dz <= 1; dz++ {
		nz := int(p.Z) + dz
		if nz < 0 || nz >= e.cfg.Depth {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := int(p.X) + dx
			if nx < 0 || nx >= e.cfg.Width {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				ny := int(p.Y) + dy
				if ny < 0 || ny >= e.cfg.Height {
					continue
				}

				local := e.strategy.LocalCost(nx, ny, nz)
				if local < e.floor {
					local = e.floor
				}
				g := p.G + e.stepDist[dz+1][dx+1][dy+1]*local
				if e.cfg.CostCeiling > 0 && g > e.cfg.CostCeiling {
					continue
				}
				var h float64
				if e.cfg.GoalDefined() {
					h = e.strategy.EstimateCostToGoal(nx, ny, nz, fromStart)
				}
				fNew := g + h

				if ei, ok := this.lookup(int32(nx), int32(ny), int32(nz)); !ok {
					ni, err := e.nodes.Alloc(arena.Node{
						X: int32(nx), Y: int32(ny), Z: int32(nz),
						G: g, H: h,
						Pred: pi,
					})
					if err != nil {
						return e.finish(ReasonOutOfMemory, nil, nil, started)
					}
					this.push(e.nodes, ni)
				} else {
					en := e.nodes.Get(ei)
					if en.F() > fNew {
						switch en.Status {
						case this.openStatus:
							en.G, en.H, en.Pred = g, h, pi
							this.decrease(ei, fNew)
						case this.closedStatus:
							en.G, en.H, en.Pred = g, h, pi
							this.reopen(e.nodes, ei)
						}
					}
				}

				if other == nil {
					continue
				}
				oi, ok := other.lookup(int32(nx), int32(ny), int32(nz))
				if !ok {
					continue
				}

				// The frontiers touch at the neighbor. The first
				// contact is not necessarily the cheapest junction,
				// so record the best one seen and keep expanding;
				// Run terminates once no open node can improve it.
				ti, _ := this.lookup(int32(nx), int32(ny), int32(nz))
				join := e.nodes.Get(ti).G + e.nodes.Get(oi).G
				if join < e.joinCost {
					e.joinCost = join
					if fromStart {
						e.joinStart, e.joinGoal = ti, oi
					} else {
						e.joinStart, e.joinGoal = oi, ti
					}
				}
			}
		}
	}
	return nil
}

// joinSettled reports whether the best recorded junction can no longer be
// improved. With an admissible per-direction heuristic, any path not yet
// discovered still carries an open node u with f(u) bounding its full cost
// from below; once either frontier's minimum f reaches the junction cost,
// every remaining path costs at least as much.
func (e *Engine) joinSettled() bool {
	if e.joinStart == arena.None {
		return false
	}
	if f, ok := e.start.minF(); !ok || f >= e.joinCost {
		return true
	}
	if f, ok := e.goal.minF(); !ok || f >= e.joinCost {
		return true
	}
	return false
}

// joinPath splices the two predecessor chains at the best junction. Both
// recorded nodes sit on the junction voxel, so the goal-side chain is
// walked from its predecessor to list the voxel once.
func (e *Engine) joinPath() *Path {
	sn := e.nodes.Get(e.joinStart)
	gn := e.nodes.Get(e.joinGoal)
	pts := append(pathOf(e.nodes, e.joinStart), walk(e.nodes, gn.Pred)...)
	return &Path{points: pts, spacing: e.cfg.Spacing, cost: sn.G + gn.G}
}

func (e *Engine) buildFill() *Fill {
	fill := NewFill(e.cfg.Width, e.cfg.Height, e.cfg.Depth, e.cfg.Spacing, e.cfg.CostCeiling)
	e.start.visited.Walk(func(x, y, z int32, i arena.Index) {
		fill.Mark(int(x), int(y), int(z), e.nodes.Get(i).G)
	})
	return fill
}

func (e *Engine) finish(reason ExitReason, path *Path, fill *Fill, started time.Time) *Result {
	e.setStatus(StatusStopping)

	e.mu.Lock()
	e.reason = reason
	e.mu.Unlock()

	res := &Result{
		Reason:  reason,
		Path:    path,
		Fill:    fill,
		Open:    e.openCount(),
		Closed:  e.closedCount(),
		Nodes:   e.nodes.Len(),
		Elapsed: time.Since(started),
	}

	e.logger.Debug("search finished",
		slog.String("reason", reason.String()),
		slog.Int64("open", res.Open),
		slog.Int64("closed", res.Closed),
		slog.Int("nodes", res.Nodes),
		slog.Duration("elapsed", res.Elapsed),
	)

	e.opts.Observer.OnFinished(reason == ReasonSuccess, reason)
	return res
}
