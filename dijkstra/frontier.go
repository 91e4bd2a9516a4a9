package dijkstra

import "container/heap"

// frontier is an indexed min-heap of reached, unvisited node indexes ordered
// by (dist[i], i). Each node appears at most once; a better distance is
// applied in place with heap.Fix and a settled node is removed, so no stale
// entries are ever popped.
type frontier struct {
	items []int     // heap of node indexes
	pos   []int     // pos[i] is i's slot in items, or -1 when absent
	dist  []float64 // shared with the Engine; read-only here
}

func newFrontier(dist []float64) *frontier {
	f := &frontier{
		items: make([]int, 0, len(dist)),
		pos:   make([]int, len(dist)),
		dist:  dist,
	}
	for i := range f.pos {
		f.pos[i] = -1
	}

	return f
}

// Len returns the number of items in the heap.
func (f *frontier) Len() int { return len(f.items) }

// Less orders by distance, then by node index so ties go to the node listed
// first in the graph.
func (f *frontier) Less(a, b int) bool {
	i, j := f.items[a], f.items[b]
	if f.dist[i] != f.dist[j] {
		return f.dist[i] < f.dist[j]
	}

	return i < j
}

// Swap swaps two elements in the heap and keeps pos in sync.
func (f *frontier) Swap(a, b int) {
	f.items[a], f.items[b] = f.items[b], f.items[a]
	f.pos[f.items[a]] = a
	f.pos[f.items[b]] = b
}

// Push is called by heap.Push; x must be an int node index.
func (f *frontier) Push(x any) {
	i := x.(int)
	f.pos[i] = len(f.items)
	f.items = append(f.items, i)
}

// Pop is called by heap.Pop and heap.Remove.
func (f *frontier) Pop() any {
	n := len(f.items) - 1
	i := f.items[n]
	f.items = f.items[:n]
	f.pos[i] = -1

	return i
}

// update inserts i, or restores heap order after dist[i] decreased.
func (f *frontier) update(i int) {
	if p := f.pos[i]; p >= 0 {
		heap.Fix(f, p)
		return
	}
	heap.Push(f, i)
}

// remove drops i if present.
func (f *frontier) remove(i int) {
	if p := f.pos[i]; p >= 0 {
		heap.Remove(f, p)
	}
}

// min returns the first node in (distance, index) order without removing it.
func (f *frontier) min() (int, bool) {
	if len(f.items) == 0 {
		return noPrev, false
	}

	return f.items[0], true
}
