// Package frontier provides the open set used by the floor searches: a binary
// min-heap of unique keys ordered by a caller-supplied comparator.
//
// The comparator usually reads priorities from state the caller owns
// (for A*, f = g + h kept in a scratch arena). Because of that the queue never
// looks at priorities itself, and a caller that wants to change a key's
// priority must Remove it, update its state, then Push it again.
//
// Ties (cmp == 0) are broken by insertion order, oldest first, so results are
// deterministic for a given sequence of operations.
//
// Complexity:
//
//   - Push, Pop, Remove: O(log N).
//   - Contains, Len:     O(1).
package frontier

import (
	"container/heap"
)

// Compare orders two keys: negative if a has higher priority than b,
// positive if lower, zero if equal.
type Compare[K comparable] func(a, b K) int

// Queue is a min-priority queue of unique keys. The zero value is not usable;
// construct with New. A Queue is not safe for concurrent use.
type Queue[K comparable] struct {
	h entries[K]
}

// New returns an empty queue ordered by cmp.
func New[K comparable](cmp Compare[K]) *Queue[K] {
	return &Queue[K]{h: entries[K]{cmp: cmp, pos: make(map[K]int)}}
}

// Len returns the number of queued keys.
func (q *Queue[K]) Len() int { return len(q.h.items) }

// Contains reports whether k is queued.
func (q *Queue[K]) Contains(k K) bool {
	_, ok := q.h.pos[k]

	return ok
}

// Push inserts k. A key already present is removed first and re-inserted,
// taking a fresh insertion sequence.
func (q *Queue[K]) Push(k K) {
	q.Remove(k)
	q.h.seq++
	heap.Push(&q.h, entry[K]{key: k, seq: q.h.seq})
}

// Pop removes and returns the highest-priority key. ok is false when empty.
func (q *Queue[K]) Pop() (k K, ok bool) {
	if len(q.h.items) == 0 {
		return k, false
	}

	return heap.Pop(&q.h).(entry[K]).key, true
}

// Peek returns the highest-priority key without removing it.
func (q *Queue[K]) Peek() (k K, ok bool) {
	if len(q.h.items) == 0 {
		return k, false
	}

	return q.h.items[0].key, true
}

// Remove deletes k and reports whether it was present.
func (q *Queue[K]) Remove(k K) bool {
	i, ok := q.h.pos[k]
	if !ok {
		return false
	}
	heap.Remove(&q.h, i)

	return true
}

// entry pairs a key with the insertion sequence used as tie-break.
type entry[K comparable] struct {
	key K
	seq uint64
}

// entries implements heap.Interface and tracks each key's slot.
type entries[K comparable] struct {
	items []entry[K]
	pos   map[K]int
	cmp   Compare[K]
	seq   uint64
}

// Len returns the number of items in the heap.
func (e *entries[K]) Len() int { return len(e.items) }

// Less orders by cmp, then by insertion sequence.
func (e *entries[K]) Less(i, j int) bool {
	if c := e.cmp(e.items[i].key, e.items[j].key); c != 0 {
		return c < 0
	}

	return e.items[i].seq < e.items[j].seq
}

// Swap swaps two elements and keeps pos in step.
func (e *entries[K]) Swap(i, j int) {
	e.items[i], e.items[j] = e.items[j], e.items[i]
	e.pos[e.items[i].key] = i
	e.pos[e.items[j].key] = j
}

// Push is called by heap.Push; x must be an entry[K].
func (e *entries[K]) Push(x any) {
	it := x.(entry[K])
	e.pos[it.key] = len(e.items)
	e.items = append(e.items, it)
}

// Pop is called by heap.Pop and heap.Remove.
func (e *entries[K]) Pop() any {
	old := e.items
	n := len(old)
	it := old[n-1]
	e.items = old[:n-1]
	delete(e.pos, it.key)

	return it
}
