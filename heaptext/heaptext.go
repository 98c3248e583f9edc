// Package heaptext renders the implicit tree of a d-ary heap as
// indented text for debugging: one line per level, indentation
// shrinking toward the leaves, with an "x" marking each absent child.
// It consumes only the read-only query surface of the heap.
package heaptext

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"cloudeng.io/errors"
)

// Heap is the view of a heap that this package consumes.
// *daryheap.Heap satisfies it.
type Heap[T any] interface {
	// Arity returns the maximum number of children per node.
	Arity() int
	// All returns the elements in storage order, root first.
	All() iter.Seq[T]
}

// Fprint writes the tree shape of h to w, formatting elements with %v.
// An empty heap produces no output. Every level down to the first level
// containing an absent child is printed, so the line below a sole root
// element is all "x" markers.
func Fprint[T any](w io.Writer, h Heap[T]) error {
	items := slices.Collect(h.All())
	if len(items) == 0 {
		return nil
	}
	d := h.Arity()
	maxDepth := depth(len(items), d)
	errs := errors.M{}
	_, err := fmt.Fprintf(w, "%s%v\n", strings.Repeat("\t", maxDepth*(d-1)), items[0])
	errs.Append(err)
	parents := []int{0}
	for level := maxDepth; level >= 0; level-- {
		var line strings.Builder
		line.WriteString(strings.Repeat("\t", level*(d-1)))
		children := make([]int, 0, len(parents)*d)
		for _, p := range parents {
			for k := 0; k < d; k++ {
				c := d*p + k + 1
				if c >= len(items) {
					line.WriteString("x ")
					continue
				}
				children = append(children, c)
				fmt.Fprintf(&line, "%v ", items[c])
			}
			line.WriteByte('\t')
		}
		line.WriteByte('\n')
		_, err := io.WriteString(w, line.String())
		errs.Append(err)
		parents = children
	}
	return errs.Err()
}

// Sprint returns the tree shape of h as a string.
func Sprint[T any](h Heap[T]) string {
	var sb strings.Builder
	_ = Fprint(&sb, h) // strings.Builder writes cannot fail
	return sb.String()
}

// depth returns the number of levels below the root to print: one less
// than the number of complete levels holding n nodes. A complete d-ary
// tree of L levels holds (d^L - 1)/(d - 1) nodes, so L is the largest
// exponent with d^L <= n*(d-1) + 1. Computed with integer arithmetic;
// the obvious log ratio misrounds near exact powers.
func depth(n, d int) int {
	k := 0
	for p := d; p <= n*(d-1)+1; p *= d {
		k++
	}
	return k - 1
}
