// Package lruqueue implements the intrusive doubly-linked LRU queue that
// backs both the frame pool and the translation cache. It orders a set of
// small integer identities, supporting O(1) tail inspection and a
// move-to-front whose splice is O(1) once the node is found. Finding an existing identity's node is a linear scan of the
// list rather than an indexed position map — spec.md §4.A is explicit that
// an indexed position map would cost more than it saves at these sizes (at
// most 128 frames, 16 TLB slots), so a scan over the live list is the
// specified tradeoff, not an omission.
package lruqueue

// node is one element of the arena. Index 0 is reserved for the sentinel,
// which keeps the list non-empty structurally so insert/remove never need
// head/tail nil checks.
type node struct {
	value      int
	prev, next int
}

// Queue is an arena-backed doubly-linked list with a single sentinel node.
// The most-recently-used element sits at the head side; the
// least-recently-used element sits at the tail side and is the eviction
// candidate. Members must be unique; the queue never enforces this itself.
type Queue struct {
	nodes []node
	count int
}

const sentinel = 0

// New returns an empty queue with room pre-allocated for capacity elements.
func New(capacity int) *Queue {
	q := &Queue{
		nodes: make([]node, 1, capacity+1),
	}
	q.nodes[sentinel] = node{prev: sentinel, next: sentinel}
	return q
}

// Empty reports whether only the sentinel remains.
func (q *Queue) Empty() bool {
	return q.nodes[sentinel].next == sentinel
}

// Len returns the number of elements currently queued.
func (q *Queue) Len() int {
	return q.count
}

// InsertNew appends x at the most-recently-used end. x must not already be
// present.
func (q *Queue) InsertNew(x int) {
	idx := len(q.nodes)
	q.nodes = append(q.nodes, node{value: x})
	q.linkAtHead(idx)
	q.count++
}

// MoveToFront relocates x to the most-recently-used end. It is a no-op if x
// is not present.
func (q *Queue) MoveToFront(x int) {
	idx, ok := q.find(x)
	if !ok {
		return
	}
	if q.nodes[sentinel].next == idx {
		return
	}
	q.unlink(idx)
	q.linkAtHead(idx)
}

// PeekTail returns the least-recently-used element without removing it.
// Panics if the queue is empty.
func (q *Queue) PeekTail() int {
	tailIdx := q.nodes[sentinel].prev
	if tailIdx == sentinel {
		panic("lruqueue: PeekTail on empty queue")
	}
	return q.nodes[tailIdx].value
}

// PopTail removes and returns the least-recently-used element.
func (q *Queue) PopTail() int {
	tailIdx := q.nodes[sentinel].prev
	if tailIdx == sentinel {
		panic("lruqueue: PopTail on empty queue")
	}
	v := q.nodes[tailIdx].value
	q.unlink(tailIdx)
	q.count--
	return v
}

// Members returns the current elements of the queue in most-recently-used
// to least-recently-used order. Exists for invariant checking in tests.
func (q *Queue) Members() []int {
	out := make([]int, 0, q.count)
	for idx := q.nodes[sentinel].next; idx != sentinel; idx = q.nodes[idx].next {
		out = append(out, q.nodes[idx].value)
	}
	return out
}

// find scans the live list for x, returning its arena index. Stale,
// already-unlinked arena slots are never visited since the scan follows
// next pointers rather than indexing the slice directly.
func (q *Queue) find(x int) (int, bool) {
	for idx := q.nodes[sentinel].next; idx != sentinel; idx = q.nodes[idx].next {
		if q.nodes[idx].value == x {
			return idx, true
		}
	}
	return 0, false
}

func (q *Queue) linkAtHead(idx int) {
	head := q.nodes[sentinel].next
	q.nodes[idx].next = head
	q.nodes[idx].prev = sentinel
	q.nodes[head].prev = idx
	q.nodes[sentinel].next = idx
}

func (q *Queue) unlink(idx int) {
	n := q.nodes[idx]
	q.nodes[n.prev].next = n.next
	q.nodes[n.next].prev = n.prev
}
