package heap

// heapWrapper holds the backing slice and the sift logic shared by Heap and
// DynamicHeap. The slice is a complete binary tree where the item at i has its
// parent at i/2 and its children at 2i and 2i+1. The root's left child slot
// would be itself, so the root has a single child at 1.
//
// The comparator may fail. Every comparison happens before the swap it guards,
// so a failing comparison never leaves a hole or a duplicate in items.
type heapWrapper[T any] struct {
	comparator func(a, b T) (int, error)
	equal      func(a, b T) bool
	items      []T
}

func parent(i int) int {
	return i / 2
}

func (me *heapWrapper[T]) Len() int {
	return len(me.items)
}

func (me *heapWrapper[T]) Swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
}

// Less reports whether the item at i strictly outranks the item at j.
func (me *heapWrapper[T]) Less(i, j int) (bool, error) {
	comp, err := me.comparator(me.items[i], me.items[j])
	if err != nil {
		return false, err
	}
	return comp < 0, nil
}

func (me *heapWrapper[T]) Push(value T) error {
	me.items = append(me.items, value)
	return me.bubbleUp(len(me.items) - 1)
}

func (me *heapWrapper[T]) Peek() (out T, exists bool) {
	if len(me.items) == 0 {
		return out, false
	}
	return me.items[0], true
}

// Pop removes the root. The root is returned even when restoring heap order
// fails, since it has already left the slice.
func (me *heapWrapper[T]) Pop() (out T, exists bool, _ error) {
	if len(me.items) == 0 {
		return out, false, nil
	}

	out = me.items[0]
	end := me.truncate()
	if len(me.items) == 0 {
		return out, true, nil
	}

	me.items[0] = end
	return out, true, me.sinkDown(0)
}

// Index returns the position of the first item matching pred, or -1.
func (me *heapWrapper[T]) Index(pred func(T) bool) int {
	for i, item := range me.items {
		if pred(item) {
			return i
		}
	}
	return -1
}

// RemoveAt drops the item at i and fills the hole with the last item. Both
// repair directions run; at most one of them moves anything.
func (me *heapWrapper[T]) RemoveAt(i int) error {
	end := me.truncate()
	if i == len(me.items) {
		return nil
	}

	me.items[i] = end
	if err := me.bubbleUp(i); err != nil {
		return err
	}
	return me.sinkDown(i)
}

// truncate shrinks items by one and returns the dropped tail item.
func (me *heapWrapper[T]) truncate() T {
	var zero T
	last := len(me.items) - 1
	end := me.items[last]
	me.items[last] = zero
	me.items = me.items[:last]
	return end
}

func (me *heapWrapper[T]) bubbleUp(i int) error {
	for i > 0 {
		p := parent(i)
		less, err := me.Less(i, p)
		if err != nil {
			return err
		}
		if !less {
			return nil
		}
		me.Swap(i, p)
		i = p
	}
	return nil
}

func (me *heapWrapper[T]) sinkDown(i int) error {
	for {
		best := i
		// left child first so that it wins ties against the right child
		for _, child := range [2]int{2 * i, 2*i + 1} {
			if child == i || child >= len(me.items) {
				continue
			}
			less, err := me.Less(child, best)
			if err != nil {
				return err
			}
			if less {
				best = child
			}
		}

		if best == i {
			return nil
		}
		me.Swap(i, best)
		i = best
	}
}
