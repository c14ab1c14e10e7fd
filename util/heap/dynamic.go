package heap

import "golang.org/x/text/language"

type DynamicHeapArgs struct {
	// Comparator orders items; nil selects DefaultComparator(Locale).
	Comparator func(a, b any) (int, error)
	Locale     language.Tag
	// Descending flips the default comparator. Ignored when Comparator is set.
	Descending bool
	Items      []any
}

// DynamicHeap is a heap over values of any type. Comparator errors surface
// from the call that triggered the comparison.
//
// A failed comparison never loses or duplicates an item, but may leave the
// items out of heap order. With the default comparator Push rejects a value
// before inserting it, so the heap is never disturbed.
type DynamicHeap struct {
	wrapper heapWrapper[any]

	// set for the default comparator, whose errors depend only on the
	// categories of its operands
	checkBeforePush bool
}

func NewDynamicHeap(args DynamicHeapArgs) (*DynamicHeap, error) {
	comparator := args.Comparator
	checkBeforePush := false
	if comparator == nil {
		comparator = DefaultComparator(args.Locale)
		if args.Descending {
			ascending := comparator
			comparator = func(a, b any) (int, error) {
				return ascending(b, a)
			}
		}
		checkBeforePush = true
	}

	out := &DynamicHeap{
		wrapper: heapWrapper[any]{
			comparator: comparator,
			equal:      equalValues,
			items:      make([]any, 0, len(args.Items)),
		},
		checkBeforePush: checkBeforePush,
	}

	for _, item := range args.Items {
		if err := out.Push(item); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (me *DynamicHeap) Size() int {
	return me.wrapper.Len()
}

func (me *DynamicHeap) IsEmpty() bool {
	return me.wrapper.Len() == 0
}

func (me *DynamicHeap) Peek() (any, bool) {
	return me.wrapper.Peek()
}

func (me *DynamicHeap) Push(value any) error {
	if root, exists := me.wrapper.Peek(); exists && me.checkBeforePush {
		if _, err := me.wrapper.comparator(value, root); err != nil {
			return err
		}
	}
	return me.wrapper.Push(value)
}

// Pop removes and returns the highest priority item. If restoring heap order
// fails, the removed item is still returned along with the error.
func (me *DynamicHeap) Pop() (any, bool, error) {
	return me.wrapper.Pop()
}

// Remove deletes the first item equal to value found in storage order.
// Absent values are not an error.
func (me *DynamicHeap) Remove(value any) (bool, error) {
	idx := me.wrapper.Index(func(item any) bool {
		return me.wrapper.equal(item, value)
	})
	if idx < 0 {
		return false, nil
	}
	return true, me.wrapper.RemoveAt(idx)
}

// ToSlice pops every item in priority order. On error, the items popped so
// far are returned, including the one whose removal failed.
func (me *DynamicHeap) ToSlice() ([]any, error) {
	out := make([]any, 0, me.Size())
	for {
		item, exists, err := me.Pop()
		if !exists {
			return out, nil
		}
		out = append(out, item)
		if err != nil {
			return out, err
		}
	}
}
