// Package daryheap provides a priority queue backed by a d-ary min-heap:
// a partially-ordered tree in which every node has up to d children and
// is no greater than any of them. The tree is never materialized as
// linked nodes; it is encoded in a single contiguous slice, with parent
// and child positions computed from element indexes.
//
// The minimum element is always at index 0. A wider heap (larger arity)
// makes Push cheaper and Pop more expensive, so the best arity depends
// on the push/pop mix of the workload.
package daryheap

import "cmp"

// Heap is a d-ary min-heap. Use New or NewFunc to create one; the zero
// value is not usable.
type Heap[T any] struct {
	// items holds the backing storage. Its length is the reserved
	// capacity; the live elements occupy items[0:n].
	items []T
	n     int
	arity int
	less  func(T, T) bool
}

// New returns an empty heap with the given arity whose elements are
// ordered by cmp.Less. It panics if arity is less than 2.
func New[T cmp.Ordered](arity int, opts ...Option) *Heap[T] {
	return NewFunc[T](arity, cmp.Less[T], opts...)
}

// NewFunc returns an empty heap with the given arity using less to
// compare elements. The less function must define a total order.
// It panics if arity is less than 2 or less is nil.
func NewFunc[T any](arity int, less func(T, T) bool, opts ...Option) *Heap[T] {
	if arity < 2 {
		panic("daryheap: arity must be at least 2")
	}
	if less == nil {
		panic("daryheap: nil less function")
	}
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.capacity < 0 {
		panic("daryheap: negative initial capacity")
	}
	return &Heap[T]{
		items: make([]T, o.capacity),
		arity: arity,
		less:  less,
	}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return h.n
}

// Cap returns the reserved capacity of the heap's backing storage.
// It never decreases.
func (h *Heap[T]) Cap() int {
	return len(h.items)
}

// Arity returns the maximum number of children per node, as fixed at
// construction.
func (h *Heap[T]) Arity() int {
	return h.arity
}

// Push adds x to the heap, growing the backing storage if it is full.
// The complexity is amortized O(log n) with base arity.
func (h *Heap[T]) Push(x T) {
	if h.n == len(h.items) {
		h.grow(1)
	}
	h.n++
	h.swim(x, h.n-1)
}

// Peek returns the minimum element without removing it. It reports
// false if the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if h.n == 0 {
		return *new(T), false
	}
	return h.items[0], true
}

// Pop removes and returns the minimum element. It reports false if the
// heap is empty. The complexity is O(arity * log n) with base arity.
func (h *Heap[T]) Pop() (T, bool) {
	if h.n == 0 {
		return *new(T), false
	}
	root := h.items[0]
	h.n--
	last := h.items[h.n]
	h.items[h.n] = *new(T)
	if h.n > 0 {
		h.sink(last, 0)
	}
	return root, true
}

// Heapify replaces the contents of the heap with the given elements,
// which may be in any order, and restores the heap ordering. The
// elements are copied; the argument slice is not retained.
// The complexity is O(n).
func (h *Heap[T]) Heapify(items []T) {
	if len(items) > len(h.items) {
		h.items = make([]T, len(items))
	} else if len(items) < h.n {
		clear(h.items[len(items):h.n])
	}
	copy(h.items, items)
	h.n = len(items)
	h.Init()
}

// Init establishes the heap ordering over the current contents.
// It is idempotent and may be called whenever the ordering may have
// been invalidated. The complexity is O(n): each node from the last
// parent down to the root is sunk into its own subtree, so the deepest
// subtrees are ordered before their ancestors and most nodes move
// hardly at all.
func (h *Heap[T]) Init() {
	for i := h.lastParent(); i >= 0; i-- {
		h.sink(h.items[i], i)
	}
}

// Grow reserves capacity for at least m more elements. It panics if m
// is negative.
func (h *Heap[T]) Grow(m int) {
	if m < 0 {
		panic("daryheap.Heap.Grow: negative count")
	}
	if len(h.items)-h.n < m {
		h.grow(m)
	}
}

// lastParent returns the index of the last node with at least one
// child, or -1 if no node has children. The last live index is n-1,
// so its parent is the deepest internal node.
func (h *Heap[T]) lastParent() int {
	if h.n < 2 {
		return -1
	}
	return (h.n - 2) / h.arity
}

// minChild returns the index of the smallest child of i, or -1 if i
// has no children. Ties go to the leftmost child.
func (h *Heap[T]) minChild(i int) int {
	c := h.arity*i + 1
	if c >= h.n {
		return -1
	}
	m := c
	for j, last := c+1, min(c+h.arity, h.n); j < last; j++ {
		if h.less(h.items[j], h.items[m]) {
			m = j
		}
	}
	return m
}

// sink places x somewhere in the subtree rooted at i. The slot at i is
// treated as a hole: smaller children are pulled up through it and x is
// written once into the slot where it finally belongs, saving the
// second half of every swap.
func (h *Heap[T]) sink(x T, i int) {
	for {
		c := h.minChild(i)
		if c < 0 || !h.less(h.items[c], x) {
			break
		}
		h.items[i] = h.items[c]
		i = c
	}
	h.items[i] = x
}

// swim places x somewhere on the path from i up to the root, pulling
// greater parents down through the hole as it goes.
func (h *Heap[T]) swim(x T, i int) {
	for i > 0 {
		p := (i - 1) / h.arity
		if !h.less(x, h.items[p]) {
			break
		}
		h.items[i] = h.items[p]
		i = p
	}
	h.items[i] = x
}

// grow extends the backing storage to hold at least m more elements.
// The capacity doubles while small and grows by 50% once past 64 slots,
// which keeps the total number of reallocations over n pushes
// logarithmic in n.
func (h *Heap[T]) grow(m int) {
	c := len(h.items)
	for c < h.n+m {
		if c < 64 {
			c = 2*c + 1
		} else {
			c += c >> 1
		}
	}
	items := make([]T, c)
	copy(items, h.items[:h.n])
	h.items = items
}
