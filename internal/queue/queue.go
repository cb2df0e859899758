// Package queue implements an addressable min-heap keyed by float64
// priority.
//
// The heap is a pairing heap: Insert returns a Handle that stays valid until
// the item is removed by DeleteMin, which allows DecreaseKey in O(1)
// amortized instead of the full reinsertion an ordinary binary heap would
// require. Best-first search tightens priorities of already-open nodes
// constantly, so this is the hot path.
//
// PairingHeap is NOT thread-safe. It is intended to be owned by a single
// search frontier.
package queue

// Item is an entry in the heap: an opaque node identifier and its priority.
type Item struct {
	Node uint32
	F    float64
}

// Handle addresses an item inside the heap for DecreaseKey.
// A Handle is invalidated when its item is returned by DeleteMin.
type Handle struct {
	item Item

	// child is the leftmost child; next the right sibling.
	// prev is the left sibling, or the parent for a leftmost child.
	child, next, prev *Handle
}

// Value returns the item currently stored at the handle.
func (h *Handle) Value() Item { return h.item }

// PairingHeap is an addressable min-heap ordered by Item.F.
// Ties are broken arbitrarily by meld order.
type PairingHeap struct {
	root *Handle
	size int
}

// New creates an empty PairingHeap.
func New() *PairingHeap {
	return &PairingHeap{}
}

// Len returns the number of items in the heap.
func (pq *PairingHeap) Len() int { return pq.size }

// Insert adds an item and returns its handle.
func (pq *PairingHeap) Insert(node uint32, f float64) *Handle {
	h := &Handle{item: Item{Node: node, F: f}}
	pq.root = meld(pq.root, h)
	pq.size++
	return h
}

// Min returns the item with the smallest F without removing it.
func (pq *PairingHeap) Min() (Item, bool) {
	if pq.root == nil {
		return Item{}, false
	}
	return pq.root.item, true
}

// DeleteMin removes and returns the item with the smallest F.
func (pq *PairingHeap) DeleteMin() (Item, bool) {
	if pq.root == nil {
		return Item{}, false
	}
	min := pq.root.item
	child := pq.root.child
	pq.root.child = nil
	pq.root = mergePairs(child)
	if pq.root != nil {
		pq.root.prev = nil
		pq.root.next = nil
	}
	pq.size--
	return min, true
}

// DecreaseKey lowers the priority of the item at h to f.
// f must not be greater than the item's current priority.
func (pq *PairingHeap) DecreaseKey(h *Handle, f float64) {
	h.item.F = f
	if h == pq.root {
		return
	}
	pq.cut(h)
	pq.root = meld(pq.root, h)
}

// cut detaches h (and its subtree) from its parent's child list.
func (pq *PairingHeap) cut(h *Handle) {
	if h.prev != nil {
		if h.prev.child == h {
			h.prev.child = h.next
		} else {
			h.prev.next = h.next
		}
	}
	if h.next != nil {
		h.next.prev = h.prev
	}
	h.prev = nil
	h.next = nil
}

// meld links two heap roots, returning the smaller as the new root.
func meld(a, b *Handle) *Handle {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.item.F < a.item.F {
		a, b = b, a
	}
	// b becomes the leftmost child of a.
	b.next = a.child
	if a.child != nil {
		a.child.prev = b
	}
	b.prev = a
	a.child = b
	return a
}

// mergePairs performs the two-pass pairing of a sibling list after a
// DeleteMin, returning the new root.
func mergePairs(first *Handle) *Handle {
	if first == nil {
		return nil
	}

	// First pass: meld siblings pairwise left to right.
	var pairs []*Handle
	for h := first; h != nil; {
		a := h
		b := h.next
		h = nil
		if b != nil {
			h = b.next
		}
		a.prev, a.next = nil, nil
		if b != nil {
			b.prev, b.next = nil, nil
		}
		pairs = append(pairs, meld(a, b))
	}

	// Second pass: meld the pairs right to left.
	root := pairs[len(pairs)-1]
	for i := len(pairs) - 2; i >= 0; i-- {
		root = meld(root, pairs[i])
	}
	return root
}
