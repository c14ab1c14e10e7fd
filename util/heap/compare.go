package heap

import (
	"cmp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ascending pops smaller values first.
func Ascending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Descending pops larger values first.
func Descending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}

func Reverse[T any](comparator func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return comparator(b, a)
	}
}

// Collated orders strings by the collation rules of tag, earlier strings
// first. The returned comparator is not safe for concurrent use.
func Collated(tag language.Tag) func(a, b string) int {
	return collate.New(tag).CompareString
}
