package heap_test

import (
	"errors"
	"fmt"

	"github.com/navijation/njcontainers/util/heap"
)

// ExampleNewOrderedHeap drains a min-heap of integers.
func ExampleNewOrderedHeap() {
	h := heap.NewOrderedHeap(38, 23, 36, 32, 10, 45, 57)

	fmt.Println(h.ToSlice())

	// Output: [10 23 32 36 38 45 57]
}

// ExampleNewHeap orders tasks by a caller-supplied comparator.
func ExampleNewHeap() {
	type task struct {
		name     string
		priority int
	}

	h := heap.NewHeap(func(a, b task) int {
		// higher priority first
		return b.priority - a.priority
	})
	h.Push(task{name: "write docs", priority: 1})
	h.Push(task{name: "fix outage", priority: 9})
	h.Push(task{name: "review", priority: 5})

	for t := range h.Drain() {
		fmt.Println(t.name)
	}

	// Output:
	// fix outage
	// review
	// write docs
}

// ExampleHeap_Remove deletes a value before draining.
func ExampleHeap_Remove() {
	h := heap.NewOrderedHeap(1, 2, 3, 4, 5)
	h.Remove(3)

	fmt.Println(h.Size(), h.ToSlice())

	// Output: 4 [1 2 4 5]
}

// ExampleDynamicHeap shows the default comparator rejecting mixed types.
func ExampleDynamicHeap() {
	h, _ := heap.NewDynamicHeap(heap.DynamicHeapArgs{
		Items: []any{3, 1.5, uint8(2)},
	})

	err := h.Push("four")
	fmt.Println(errors.Is(err, heap.ErrTypeMismatch))

	out, _ := h.ToSlice()
	fmt.Println(out)

	// Output:
	// true
	// [1.5 2 3]
}
