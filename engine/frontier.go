package engine

import (
	"github.com/hupe1980/tracego/internal/arena"
	"github.com/hupe1980/tracego/internal/grid"
	"github.com/hupe1980/tracego/internal/queue"
)

// frontier is one search direction: the set of currently OPEN nodes backed
// by an addressable priority queue, plus the sparse index recording every
// coordinate ever visited in this direction.
//
// The queue and the index are kept in lockstep: a node is OPEN if and only
// if it owns a live heap handle, and the handle map is the only place
// handles live, so a handle cannot outlive its queue entry.
type frontier struct {
	open    *queue.PairingHeap
	visited *grid.Stack
	handles map[arena.Index]*queue.Handle

	openStatus   arena.Status
	closedStatus arena.Status

	// closed counts currently closed nodes: a reopen decrements it.
	closed int64
}

func newFrontier(depth int, fromStart bool) *frontier {
	f := &frontier{
		open:    queue.New(),
		visited: grid.NewStack(depth),
		handles: make(map[arena.Index]*queue.Handle),
	}
	if fromStart {
		f.openStatus = arena.OpenFromStart
		f.closedStatus = arena.ClosedFromStart
	} else {
		f.openStatus = arena.OpenFromGoal
		f.closedStatus = arena.ClosedFromGoal
	}
	return f
}

// openCount returns the number of OPEN nodes.
func (f *frontier) openCount() int { return f.open.Len() }

// minF returns the smallest f among the OPEN nodes.
func (f *frontier) minF() (float64, bool) {
	item, ok := f.open.Min()
	if !ok {
		return 0, false
	}
	return item.F, true
}

// lookup returns the node recorded at a coordinate, if any.
func (f *frontier) lookup(x, y, z int32) (arena.Index, bool) {
	return f.visited.Get(x, y, z)
}

// push registers a FREE node with this frontier: marks it OPEN, inserts it
// into the queue, and records it in the sparse index.
func (f *frontier) push(a *arena.Arena, i arena.Index) {
	n := a.Get(i)
	n.Status = f.openStatus
	f.handles[i] = f.open.Insert(uint32(i), n.F())
	f.visited.Set(n.X, n.Y, n.Z, i)
}

// pop removes and returns the OPEN node with the smallest f.
func (f *frontier) pop() (arena.Index, bool) {
	item, ok := f.open.DeleteMin()
	if !ok {
		return arena.None, false
	}
	return arena.Index(item.Node), true
}

// close marks a popped node CLOSED and invalidates its heap handle.
func (f *frontier) close(a *arena.Arena, i arena.Index) {
	a.Get(i).Status = f.closedStatus
	delete(f.handles, i)
	f.closed++
}

// decrease tightens the queue priority of an OPEN node after its g/h/pred
// were improved.
func (f *frontier) decrease(i arena.Index, newF float64) {
	f.open.DecreaseKey(f.handles[i], newF)
}

// reopen puts a CLOSED node back on the frontier after a strictly cheaper
// route to it was found.
func (f *frontier) reopen(a *arena.Arena, i arena.Index) {
	n := a.Get(i)
	n.Status = f.openStatus
	f.handles[i] = f.open.Insert(uint32(i), n.F())
	f.closed--
}
