package fire

import (
	"container/heap"

	"spn-core/core/pnet"
)

// priorityHeap is a max-heap of the distinct priority levels that
// currently have at least one enabled immediate transition queued against
// them. Entries may momentarily reference an empty bucket; selection skips
// those lazily rather than eagerly cleaning the heap on every disable.
type priorityHeap []int

func (h priorityHeap) Len() int            { return len(h) }
func (h priorityHeap) Less(i, j int) bool  { return h[i] > h[j] } // max-heap
func (h priorityHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *priorityHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *priorityHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

var _ heap.Interface = (*priorityHeap)(nil)

// levelBucket is the set of currently-enabled immediate transitions at one
// priority level. Order is insertion order except where a removal swaps
// the last item into a freed slot; weighted choice does not care about
// order, only about the (transition, weight) pairs present.
type levelBucket struct {
	priority int
	items    []*pnet.Transition
	index    map[*pnet.Transition]int
}

func newLevelBucket(priority int) *levelBucket {
	return &levelBucket{priority: priority, index: make(map[*pnet.Transition]int)}
}

func (b *levelBucket) add(t *pnet.Transition) {
	if _, exists := b.index[t]; exists {
		return
	}
	b.index[t] = len(b.items)
	b.items = append(b.items, t)
}

func (b *levelBucket) remove(t *pnet.Transition) {
	i, exists := b.index[t]
	if !exists {
		return
	}
	last := len(b.items) - 1
	b.items[i] = b.items[last]
	b.index[b.items[i]] = i
	b.items = b.items[:last]
	delete(b.index, t)
}

func (b *levelBucket) empty() bool { return len(b.items) == 0 }

// timedEntry is one scheduled deadline. tiebreak is a strictly increasing
// counter assigned at schedule time, breaking ties between equal
// deadlines in insertion (schedule) order — first-come-first-served.
type timedEntry struct {
	deadline float64
	tiebreak uint64
	t        *pnet.Transition
}

type timedHeap []timedEntry

func (h timedHeap) Len() int { return len(h) }
func (h timedHeap) Less(i, j int) bool {
	if h[i].deadline != h[j].deadline {
		return h[i].deadline < h[j].deadline
	}
	return h[i].tiebreak < h[j].tiebreak
}
func (h timedHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *timedHeap) Push(x interface{}) { *h = append(*h, x.(timedEntry)) }
func (h *timedHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

var _ heap.Interface = (*timedHeap)(nil)
