// Package arena provides slab-allocated storage for search nodes.
//
// Nodes are addressed by Index instead of pointers. Predecessor links are
// indices into the same arena, so reopening a node can never produce a
// dangling reference: an index stays valid for the lifetime of the arena.
//
// Arena is NOT thread-safe. It is intended to be owned by a single search
// for its whole lifetime and discarded together with it.
package arena

import "errors"

// ErrBudgetExceeded is returned when an allocation would exceed the
// configured node budget.
var ErrBudgetExceeded = errors.New("arena: node budget exceeded")

// Index addresses a node within an Arena.
type Index int32

// None marks the absence of a node (e.g. the predecessor of a seed node).
const None Index = -1

// Status describes the search state of a node.
type Status uint8

const (
	// Free is the state of a node that has been created but not yet
	// registered with a frontier.
	Free Status = iota
	// OpenFromStart marks a node on the start-side frontier.
	OpenFromStart
	// ClosedFromStart marks a node expanded by the start-side search.
	ClosedFromStart
	// OpenFromGoal marks a node on the goal-side frontier.
	OpenFromGoal
	// ClosedFromGoal marks a node expanded by the goal-side search.
	ClosedFromGoal
)

var statusNames = []string{"FREE", "OPEN_FROM_START", "CLOSED_FROM_START", "OPEN_FROM_GOAL", "CLOSED_FROM_GOAL"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "UNKNOWN"
}

// Open returns true if the node is on either frontier.
func (s Status) Open() bool { return s == OpenFromStart || s == OpenFromGoal }

// Closed returns true if the node has been expanded by either search.
func (s Status) Closed() bool { return s == ClosedFromStart || s == ClosedFromGoal }

// Node is the unit of search state.
type Node struct {
	X, Y, Z int32
	// G is the accumulated cost from the origin of the node's search
	// direction. It only ever improves (decreases) after creation.
	G float64
	// H is the heuristic estimate towards the relevant goal; 0 without a
	// defined goal.
	H float64
	// Pred is the predecessor that produced the current best G, or None.
	Pred   Index
	Status Status
}

// F is the total estimated cost and defines heap order.
func (n *Node) F() float64 { return n.G + n.H }

// Arena is a growable slab of nodes.
type Arena struct {
	nodes  []Node
	budget int
}

// New creates an Arena. budget caps the number of nodes that may ever be
// allocated; 0 means unlimited.
func New(budget int) *Arena {
	return &Arena{
		nodes:  make([]Node, 0, 1024),
		budget: budget,
	}
}

// Alloc appends a node and returns its index.
func (a *Arena) Alloc(n Node) (Index, error) {
	if a.budget > 0 && len(a.nodes) >= a.budget {
		return None, ErrBudgetExceeded
	}
	a.nodes = append(a.nodes, n)
	return Index(len(a.nodes) - 1), nil
}

// Get returns a mutable reference to the node at i.
// The reference is invalidated by the next Alloc.
func (a *Arena) Get(i Index) *Node { return &a.nodes[i] }

// Len returns the number of allocated nodes.
func (a *Arena) Len() int { return len(a.nodes) }

// Reset clears the arena for reuse without freeing memory.
func (a *Arena) Reset() { a.nodes = a.nodes[:0] }
