// Package grid provides a memory-sparse spatial index over a 3D voxel
// domain.
//
// A Stack holds one sparse (x,y) → node map per z-slice; slices are created
// lazily on first touch, so only visited regions of a potentially enormous
// volume consume memory. The Stack is the single source of truth for "has
// this coordinate been visited in this direction".
//
// Stack is NOT thread-safe. It is intended to be owned by a single search
// frontier.
package grid

import "github.com/hupe1980/tracego/internal/arena"

// Stack is a stack of lazily allocated sparse 2D slices over z.
type Stack struct {
	slices []map[uint64]arena.Index
	count  int
}

// NewStack creates a Stack for a volume with the given depth.
func NewStack(depth int) *Stack {
	return &Stack{
		slices: make([]map[uint64]arena.Index, depth),
	}
}

func key(x, y int32) uint64 {
	return uint64(uint32(y))<<32 | uint64(uint32(x))
}

// Get looks up the node index recorded at (x, y, z).
func (s *Stack) Get(x, y, z int32) (arena.Index, bool) {
	slice := s.slices[z]
	if slice == nil {
		return arena.None, false
	}
	i, ok := slice[key(x, y)]
	return i, ok
}

// Set records the node index at (x, y, z), creating the z-slice if this is
// the first touch at that depth.
func (s *Stack) Set(x, y, z int32, i arena.Index) {
	slice := s.slices[z]
	if slice == nil {
		slice = make(map[uint64]arena.Index)
		s.slices[z] = slice
	}
	k := key(x, y)
	if _, ok := slice[k]; !ok {
		s.count++
	}
	slice[k] = i
}

// Len returns the number of recorded coordinates.
func (s *Stack) Len() int { return s.count }

// Walk calls fn for every recorded coordinate. Iteration order is
// unspecified within a slice.
func (s *Stack) Walk(fn func(x, y, z int32, i arena.Index)) {
	for z, slice := range s.slices {
		for k, i := range slice {
			fn(int32(uint32(k)), int32(uint32(k>>32)), int32(z), i)
		}
	}
}
