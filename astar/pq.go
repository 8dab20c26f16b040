package astar

import (
	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/geo"
)

// nodeItem is one frontier entry: a town, the route length it was pushed
// with, and that length plus the heuristic.
type nodeItem struct {
	h   core.Handle
	g   geo.Distance
	f   geo.Distance
	seq int // push order, breaks ties deterministically
}

// nodePQ is a min-heap of *nodeItem ordered by f, then push order.
// We use the “lazy-decrease-key” approach: an improved route pushes a new
// entry and the outdated one is skipped when popped, because its g no
// longer matches the town's tentative distance.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by estimate, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
