package refinement

import (
	"cmp"
	"fmt"
)

type boundKind uint8

const (
	boundUnbounded boundKind = iota
	boundClosed
	boundOpen
)

// Bound is one side of an interval: closed (includes the endpoint), open
// (excludes it), or unbounded (never fails). Bounds are compared with the
// natural ordering of T only — no arithmetic is performed, so endpoints at
// the type's own minimum or maximum never overflow.
type Bound[T cmp.Ordered] struct {
	value T
	kind  boundKind
}

// Closed returns a bound that includes its endpoint.
func Closed[T cmp.Ordered](value T) Bound[T] {
	return Bound[T]{value: value, kind: boundClosed}
}

// Open returns a bound that excludes its endpoint.
func Open[T cmp.Ordered](value T) Bound[T] {
	return Bound[T]{value: value, kind: boundOpen}
}

// Unbounded returns a bound that admits every value.
func Unbounded[T cmp.Ordered]() Bound[T] {
	return Bound[T]{kind: boundUnbounded}
}

// admitsLower reports whether v is admitted with the bound on the lower side.
func (b Bound[T]) admitsLower(v T) bool {
	switch b.kind {
	case boundClosed:
		return v >= b.value
	case boundOpen:
		return v > b.value
	default:
		return true
	}
}

// admitsUpper reports whether v is admitted with the bound on the upper side.
func (b Bound[T]) admitsUpper(v T) bool {
	switch b.kind {
	case boundClosed:
		return v <= b.value
	case boundOpen:
		return v < b.value
	default:
		return true
	}
}

// interval renders a pair of bounds in mathematical interval notation,
// e.g. "[1, 100]", "(1, 100)", "[1, +inf)".
func interval[T cmp.Ordered](lower, upper Bound[T]) string {
	var left, right string

	switch lower.kind {
	case boundClosed:
		left = fmt.Sprintf("[%v", lower.value)
	case boundOpen:
		left = fmt.Sprintf("(%v", lower.value)
	default:
		left = "(-inf"
	}

	switch upper.kind {
	case boundClosed:
		right = fmt.Sprintf("%v]", upper.value)
	case boundOpen:
		right = fmt.Sprintf("%v)", upper.value)
	default:
		right = "+inf)"
	}

	return left + ", " + right
}
