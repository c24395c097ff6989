package core

import (
	"cmp"

	"github.com/zyedidia/generic/heap"
)

// Keyed attaches an ordering key to an arbitrary value. Comparison and
// equality look at Key only; Value does not need to be comparable.
type Keyed[V any, K cmp.Ordered] struct {
	Value V
	Key   K
}

// NewKeyed wraps value with the given key.
func NewKeyed[V any, K cmp.Ordered](value V, key K) Keyed[V, K] {
	return Keyed[V, K]{Value: value, Key: key}
}

// Compare returns -1, 0 or +1 comparing the keys of k and other.
func (k Keyed[V, K]) Compare(other Keyed[V, K]) int {
	return cmp.Compare(k.Key, other.Key)
}

// Less reports whether k sorts before other.
func (k Keyed[V, K]) Less(other Keyed[V, K]) bool {
	return cmp.Less(k.Key, other.Key)
}

// Equal reports whether both keys compare equal, regardless of the values.
func (k Keyed[V, K]) Equal(other Keyed[V, K]) bool {
	return k.Compare(other) == 0
}

// Queue is a priority queue of keyed values.
type Queue[V any, K cmp.Ordered] struct {
	h *heap.Heap[Keyed[V, K]]
}

// NewMinQueue returns a queue that pops the smallest key first.
func NewMinQueue[V any, K cmp.Ordered]() *Queue[V, K] {
	return &Queue[V, K]{h: heap.New[Keyed[V, K]](func(a, b Keyed[V, K]) bool { return a.Less(b) })}
}

// NewMaxQueue returns a queue that pops the largest key first.
func NewMaxQueue[V any, K cmp.Ordered]() *Queue[V, K] {
	return &Queue[V, K]{h: heap.New[Keyed[V, K]](func(a, b Keyed[V, K]) bool { return b.Less(a) })}
}

// Push adds value with the given key.
func (q *Queue[V, K]) Push(value V, key K) {
	q.h.Push(NewKeyed(value, key))
}

// PushKeyed adds an already wrapped value.
func (q *Queue[V, K]) PushKeyed(k Keyed[V, K]) {
	q.h.Push(k)
}

// Pop removes and returns the head of the queue. ok is false when empty.
func (q *Queue[V, K]) Pop() (Keyed[V, K], bool) {
	return q.h.Pop()
}

// Peek returns the head of the queue without removing it.
func (q *Queue[V, K]) Peek() (Keyed[V, K], bool) {
	return q.h.Peek()
}

// Len returns the number of queued values.
func (q *Queue[V, K]) Len() int {
	return q.h.Size()
}
