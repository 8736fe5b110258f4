package crucible

import "container/heap"

// entry is a pending frontier item: a state and the cost it was pushed with.
// seq is the push order and breaks cost ties first-in, first-out, so the
// same inputs always expand states in the same order.
type entry struct {
	state State
	cost  int64
	seq   uint64
}

// entryPQ is a min-heap of entry ordered by (cost, seq) ascending.
// We use the “lazy-decrease-key” approach: an improved state is pushed again
// and the outdated entry is skipped when popped.
type entryPQ []entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by cost, then by push order.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// frontier wraps entryPQ with the push counter.
type frontier struct {
	pq  entryPQ
	seq uint64
}

func newFrontier(capacity int) *frontier {
	return &frontier{pq: make(entryPQ, 0, capacity)}
}

func (f *frontier) push(s State, cost int64) {
	heap.Push(&f.pq, entry{state: s, cost: cost, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() entry {
	return heap.Pop(&f.pq).(entry)
}

func (f *frontier) len() int { return f.pq.Len() }
