package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAlloc(t *testing.T) {
	a := New(0)

	i, err := a.Alloc(Node{X: 1, Y: 2, Z: 3, G: 0.5, H: 1.5, Pred: None, Status: OpenFromStart})
	require.NoError(t, err)
	assert.Equal(t, Index(0), i)
	assert.Equal(t, 1, a.Len())

	n := a.Get(i)
	assert.Equal(t, int32(1), n.X)
	assert.Equal(t, 2.0, n.F())

	// Mutations through Get are visible on subsequent lookups.
	n.G = 0.25
	assert.Equal(t, 0.25, a.Get(i).G)
}

func TestArenaBudget(t *testing.T) {
	a := New(2)

	_, err := a.Alloc(Node{Pred: None})
	require.NoError(t, err)
	_, err = a.Alloc(Node{Pred: None})
	require.NoError(t, err)

	_, err = a.Alloc(Node{Pred: None})
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Equal(t, 2, a.Len())
}

func TestArenaPredecessorChain(t *testing.T) {
	a := New(0)

	root, err := a.Alloc(Node{Pred: None})
	require.NoError(t, err)
	child, err := a.Alloc(Node{X: 1, Pred: root})
	require.NoError(t, err)

	// Walk back to the root.
	steps := 0
	for i := child; i != None; i = a.Get(i).Pred {
		steps++
	}
	assert.Equal(t, 2, steps)
}

func TestArenaReset(t *testing.T) {
	a := New(0)
	_, err := a.Alloc(Node{Pred: None})
	require.NoError(t, err)

	a.Reset()
	assert.Equal(t, 0, a.Len())
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, OpenFromStart.Open())
	assert.True(t, OpenFromGoal.Open())
	assert.False(t, ClosedFromStart.Open())

	assert.True(t, ClosedFromStart.Closed())
	assert.True(t, ClosedFromGoal.Closed())
	assert.False(t, Free.Closed())

	assert.Equal(t, "OPEN_FROM_START", OpenFromStart.String())
	assert.Equal(t, "UNKNOWN", Status(42).String())
}
