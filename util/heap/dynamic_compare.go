package heap

import (
	"cmp"
	"reflect"

	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrTypeMismatch    = errors.New("could not compare values of differing types")
	ErrUnsupportedType = errors.New("no default ordering for type")
)

type valueCategory int

const (
	categoryOther valueCategory = iota
	categoryNumber
	categoryText
)

func (me valueCategory) String() string {
	switch me {
	case categoryNumber:
		return "number"
	case categoryText:
		return "text"
	default:
		return "other"
	}
}

func categorize(value reflect.Value) valueCategory {
	if !value.IsValid() {
		return categoryOther
	}
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return categoryNumber
	case reflect.String:
		return categoryText
	default:
		return categoryOther
	}
}

// DefaultComparator returns the comparator DynamicHeap uses when none is
// given. Numbers of any Go numeric kind compare by value, ascending. Strings
// compare by the collation rules of tag. Operands of different categories
// fail with ErrTypeMismatch; any other operands fail with ErrUnsupportedType.
func DefaultComparator(tag language.Tag) func(a, b any) (int, error) {
	collator := collate.New(tag)

	return func(a, b any) (int, error) {
		aValue, bValue := reflect.ValueOf(a), reflect.ValueOf(b)
		aCategory, bCategory := categorize(aValue), categorize(bValue)

		if aCategory != bCategory {
			return 0, errors.Wrapf(ErrTypeMismatch, "%s (%T) and %s (%T)", aCategory, a, bCategory, b)
		}

		switch aCategory {
		case categoryNumber:
			return compareNumbers(aValue, bValue), nil
		case categoryText:
			return collator.CompareString(aValue.String(), bValue.String()), nil
		default:
			return 0, errors.Wrapf(ErrUnsupportedType, "%T; no comparator was provided", a)
		}
	}
}

func isFloat(value reflect.Value) bool {
	return value.Kind() == reflect.Float32 || value.Kind() == reflect.Float64
}

func isSigned(value reflect.Value) bool {
	return value.CanInt()
}

func asFloat(value reflect.Value) float64 {
	switch {
	case isFloat(value):
		return value.Float()
	case isSigned(value):
		return float64(value.Int())
	default:
		return float64(value.Uint())
	}
}

// compareNumbers compares integers exactly, including mixed signed and
// unsigned operands. A float operand on either side falls back to float64.
func compareNumbers(a, b reflect.Value) int {
	switch {
	case isFloat(a) || isFloat(b):
		return cmp.Compare(asFloat(a), asFloat(b))
	case isSigned(a) && isSigned(b):
		return cmp.Compare(a.Int(), b.Int())
	case !isSigned(a) && !isSigned(b):
		return cmp.Compare(a.Uint(), b.Uint())
	case isSigned(a):
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	default:
		if b.Int() < 0 {
			return 1
		}
		return cmp.Compare(a.Uint(), uint64(b.Int()))
	}
}

// equalValues reports whether a and b have the same dynamic type and are ==.
// Values whose dynamic type cannot be compared never match.
func equalValues(a, b any) bool {
	aValue, bValue := reflect.ValueOf(a), reflect.ValueOf(b)
	if !aValue.IsValid() || !bValue.IsValid() {
		return !aValue.IsValid() && !bValue.IsValid()
	}
	if aValue.Type() != bValue.Type() || !aValue.Comparable() || !bValue.Comparable() {
		return false
	}
	return a == b
}
