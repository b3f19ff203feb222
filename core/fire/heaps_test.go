package fire

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spn-core/core/pnet"
)

func TestPriorityHeapIsAMaxHeap(t *testing.T) {
	h := &priorityHeap{}
	heap.Init(h)
	for _, p := range []int{3, 7, 1, 9, 4} {
		heap.Push(h, p)
	}

	var popped []int
	for h.Len() > 0 {
		popped = append(popped, heap.Pop(h).(int))
	}
	assert.Equal(t, []int{9, 7, 4, 3, 1}, popped)
}

func TestLevelBucketAddIsIdempotentAndRemoveIsOrderAgnostic(t *testing.T) {
	b := newLevelBucket(1)
	net := pnet.NewNet(nil)
	a, err := net.AddImmediateTransition("a", 1, 1)
	require.NoError(t, err)
	c, err := net.AddImmediateTransition("c", 1, 1)
	require.NoError(t, err)
	d, err := net.AddImmediateTransition("d", 1, 1)
	require.NoError(t, err)

	b.add(a)
	b.add(c)
	b.add(d)
	b.add(a) // duplicate add must be a no-op
	assert.Equal(t, 3, len(b.items))

	b.remove(c)
	assert.Equal(t, 2, len(b.items))
	assert.False(t, b.empty())

	b.remove(a)
	b.remove(d)
	assert.True(t, b.empty())
}

func TestTimedHeapOrdersByDeadlineThenTiebreak(t *testing.T) {
	h := &timedHeap{}
	heap.Init(h)
	heap.Push(h, timedEntry{deadline: 3.0, tiebreak: 2})
	heap.Push(h, timedEntry{deadline: 1.0, tiebreak: 5})
	heap.Push(h, timedEntry{deadline: 3.0, tiebreak: 1})

	first := heap.Pop(h).(timedEntry)
	assert.Equal(t, 1.0, first.deadline)

	second := heap.Pop(h).(timedEntry)
	third := heap.Pop(h).(timedEntry)
	assert.Equal(t, 3.0, second.deadline)
	assert.Equal(t, 3.0, third.deadline)
	assert.Equal(t, uint64(1), second.tiebreak, "equal deadlines resolve in schedule order")
	assert.Equal(t, uint64(2), third.tiebreak)
}
