// Package heap implements binary heaps used as priority queues.
//
// Ordering is defined by a comparator in the style of cmp.Compare: a negative
// result means the first argument has higher priority and is popped first.
// Heap holds statically typed elements whose comparator cannot fail.
// DynamicHeap holds elements of any type and reports comparison failures as
// errors.
//
// Neither type is safe for concurrent use.
package heap

import (
	"cmp"
	"iter"

	"golang.org/x/text/language"
)

type Heap[T any] struct {
	wrapper heapWrapper[T]
}

// NewHeap creates a heap ordered by comparator and pushes items onto it in
// order. Remove matches items with ==.
func NewHeap[T comparable](comparator func(a, b T) int, items ...T) *Heap[T] {
	return NewHeapFunc(comparator, func(a, b T) bool { return a == b }, items...)
}

// NewHeapFunc is like NewHeap for element types without a usable ==. Remove
// matches items with equal.
func NewHeapFunc[T any](comparator func(a, b T) int, equal func(a, b T) bool, items ...T) *Heap[T] {
	out := &Heap[T]{
		wrapper: heapWrapper[T]{
			comparator: func(a, b T) (int, error) {
				return comparator(a, b), nil
			},
			equal: equal,
			items: make([]T, 0, len(items)),
		},
	}
	for _, item := range items {
		out.Push(item)
	}
	return out
}

// NewOrderedHeap creates a min-heap using the natural ascending order of T.
// Strings are ordered bytewise; see NewCollatedHeap for language-aware order.
func NewOrderedHeap[T cmp.Ordered](items ...T) *Heap[T] {
	return NewHeap(Ascending[T], items...)
}

// NewCollatedHeap creates a min-heap of strings ordered by the collation
// rules of tag.
func NewCollatedHeap(tag language.Tag, items ...string) *Heap[string] {
	return NewHeap(Collated(tag), items...)
}

func (me *Heap[T]) Size() int {
	return me.wrapper.Len()
}

func (me *Heap[T]) IsEmpty() bool {
	return me.wrapper.Len() == 0
}

// Peek returns the highest priority item without removing it.
func (me *Heap[T]) Peek() (T, bool) {
	return me.wrapper.Peek()
}

// Pop removes and returns the highest priority item.
func (me *Heap[T]) Pop() (T, bool) {
	out, exists, _ := me.wrapper.Pop()
	return out, exists
}

func (me *Heap[T]) Push(value T) {
	_ = me.wrapper.Push(value)
}

func (me *Heap[T]) PushAll(values iter.Seq[T]) {
	for value := range values {
		me.Push(value)
	}
}

// Remove deletes the first item equal to value found in storage order. It
// reports false, and does nothing, if no such item exists.
func (me *Heap[T]) Remove(value T) bool {
	return me.RemoveFunc(func(item T) bool {
		return me.wrapper.equal(item, value)
	})
}

// RemoveFunc deletes the first item, in storage order, for which pred is true.
func (me *Heap[T]) RemoveFunc(pred func(T) bool) bool {
	idx := me.wrapper.Index(pred)
	if idx < 0 {
		return false
	}
	_ = me.wrapper.RemoveAt(idx)
	return true
}

// ToSlice pops every item, returning them in priority order. The heap is
// empty afterwards.
func (me *Heap[T]) ToSlice() []T {
	out := make([]T, 0, me.Size())
	for item := range me.Drain() {
		out = append(out, item)
	}
	return out
}

// Drain pops items in priority order as the sequence is consumed. Stopping
// early leaves the items not yet yielded in the heap.
func (me *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, exists := me.Pop()
			if !exists || !yield(item) {
				return
			}
		}
	}
}
