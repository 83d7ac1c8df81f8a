package refinement

import (
	"cmp"
	"fmt"
)

// Numeric constrains the value types accepted by the numeric bound
// predicates. Width and signedness are fixed by the instantiated type.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// rangePredicate checks that a value lies within a pair of bounds. It backs
// Range and every comparison convenience, which differ only in description.
type rangePredicate[T cmp.Ordered] struct {
	code     string
	describe string
	lower    Bound[T]
	upper    Bound[T]
}

func (p rangePredicate[T]) Check(value T) *Violation {
	if p.lower.admitsLower(value) && p.upper.admitsUpper(value) {
		return nil
	}
	return &Violation{Code: p.code, Expected: p.describe}
}

func (p rangePredicate[T]) Describe() string { return p.describe }

// Range checks that a numeric value lies within the given bounds. Each side
// is independently open, closed, or unbounded.
func Range[T Numeric](lower, upper Bound[T]) Predicate[T] {
	return rangePredicate[T]{
		code:     CodeNumRange,
		describe: "must be within " + interval(lower, upper),
		lower:    lower,
		upper:    upper,
	}
}

// Between checks that a value lies within the closed interval [lower, upper].
func Between[T Numeric](lower, upper T) Predicate[T] {
	return Range(Closed(lower), Closed(upper))
}

// BetweenExclusive checks that a value lies within the open interval
// (lower, upper).
func BetweenExclusive[T Numeric](lower, upper T) Predicate[T] {
	return Range(Open(lower), Open(upper))
}

// AtLeast checks that a value is greater than or equal to the minimum.
func AtLeast[T Numeric](min T) Predicate[T] {
	return rangePredicate[T]{
		code:     CodeNumRange,
		describe: fmt.Sprintf("must be at least %v", min),
		lower:    Closed(min),
		upper:    Unbounded[T](),
	}
}

// AtMost checks that a value is less than or equal to the maximum.
func AtMost[T Numeric](max T) Predicate[T] {
	return rangePredicate[T]{
		code:     CodeNumRange,
		describe: fmt.Sprintf("must be at most %v", max),
		lower:    Unbounded[T](),
		upper:    Closed(max),
	}
}

// GreaterThan checks that a value is strictly greater than the given one.
func GreaterThan[T Numeric](other T) Predicate[T] {
	return rangePredicate[T]{
		code:     CodeNumRange,
		describe: fmt.Sprintf("must be greater than %v", other),
		lower:    Open(other),
		upper:    Unbounded[T](),
	}
}

// LessThan checks that a value is strictly less than the given one.
func LessThan[T Numeric](other T) Predicate[T] {
	return rangePredicate[T]{
		code:     CodeNumRange,
		describe: fmt.Sprintf("must be less than %v", other),
		lower:    Unbounded[T](),
		upper:    Open(other),
	}
}

// Positive checks that a value is strictly greater than zero.
func Positive[T Numeric]() Predicate[T] {
	var zero T
	return rangePredicate[T]{
		code:     CodeNumRange,
		describe: "must be positive",
		lower:    Open(zero),
		upper:    Unbounded[T](),
	}
}

// Negative checks that a value is strictly less than zero.
func Negative[T Numeric]() Predicate[T] {
	var zero T
	return rangePredicate[T]{
		code:     CodeNumRange,
		describe: "must be negative",
		lower:    Unbounded[T](),
		upper:    Open(zero),
	}
}

type equalPredicate[T comparable] struct {
	code     string
	describe string
	other    T
	negate   bool
}

func (p equalPredicate[T]) Check(value T) *Violation {
	if (value == p.other) != p.negate {
		return nil
	}
	return &Violation{Code: p.code, Expected: p.describe}
}

func (p equalPredicate[T]) Describe() string { return p.describe }

// EqualTo checks that a value equals the given one.
func EqualTo[T Numeric](other T) Predicate[T] {
	return equalPredicate[T]{
		code:     CodeNumEqual,
		describe: fmt.Sprintf("must be equal to %v", other),
		other:    other,
	}
}

// NotEqualTo checks that a value differs from the given one.
func NotEqualTo[T Numeric](other T) Predicate[T] {
	return equalPredicate[T]{
		code:     CodeNumNotEqual,
		describe: fmt.Sprintf("must not be equal to %v", other),
		other:    other,
		negate:   true,
	}
}

// NonZero checks that a value is not the zero value of its type.
func NonZero[T Numeric]() Predicate[T] {
	var zero T
	return equalPredicate[T]{
		code:     CodeNumNotEqual,
		describe: "must not be zero",
		other:    zero,
		negate:   true,
	}
}
