package daryheap

import "iter"

// All returns an iterator over the elements of the heap in storage
// order, which is neither insertion order nor priority order. It does
// not mutate the heap. The heap must not be modified while iterating.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < h.n; i++ {
			if !yield(h.items[i]) {
				break
			}
		}
	}
}

// Drain returns an iterator that removes and yields the elements of the
// heap in ascending order. Each step of the iteration pops the current
// minimum, so advancing the iterator empties the heap as a side effect.
// Stopping early leaves the remaining elements in place. A Drain
// iterator must not be ranged over more than once or interleaved with
// other mutation.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := h.Pop()
			if !ok || !yield(x) {
				return
			}
		}
	}
}
