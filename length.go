package refinement

import "unicode/utf8"

// lengthPredicate bounds the rune count of a string value. Counting runes
// rather than bytes keeps the bound meaningful for multi-byte text.
type lengthPredicate[T ~string] struct {
	describe string
	lower    Bound[int]
	upper    Bound[int]
}

func (p lengthPredicate[T]) Check(value T) *Violation {
	n := utf8.RuneCountInString(string(value))
	if p.lower.admitsLower(n) && p.upper.admitsUpper(n) {
		return nil
	}
	return &Violation{Code: CodeLengthRange, Expected: p.describe}
}

func (p lengthPredicate[T]) Describe() string { return p.describe }

// Length checks that a string's character count lies within the given
// bounds. Each side is independently open, closed, or unbounded.
func Length[T ~string](lower, upper Bound[int]) Predicate[T] {
	return lengthPredicate[T]{
		describe: "length must be within " + interval(lower, upper),
		lower:    lower,
		upper:    upper,
	}
}

// LengthBetween checks that a string's character count lies within the
// closed interval [lower, upper].
func LengthBetween[T ~string](lower, upper int) Predicate[T] {
	return Length[T](Closed(lower), Closed(upper))
}

// countPredicate bounds the element count of a slice value.
type countPredicate[S ~[]E, E any] struct {
	describe string
	lower    Bound[int]
	upper    Bound[int]
}

func (p countPredicate[S, E]) Check(value S) *Violation {
	n := len(value)
	if p.lower.admitsLower(n) && p.upper.admitsUpper(n) {
		return nil
	}
	return &Violation{Code: CodeCountRange, Expected: p.describe}
}

func (p countPredicate[S, E]) Describe() string { return p.describe }

// Count checks that a slice's element count lies within the given bounds.
func Count[S ~[]E, E any](lower, upper Bound[int]) Predicate[S] {
	return countPredicate[S, E]{
		describe: "element count must be within " + interval(lower, upper),
		lower:    lower,
		upper:    upper,
	}
}

// CountBetween checks that a slice's element count lies within the closed
// interval [lower, upper].
func CountBetween[S ~[]E, E any](lower, upper int) Predicate[S] {
	return Count[S, E](Closed(lower), Closed(upper))
}

type emptyPredicate[T ~string] struct {
	negate bool
}

func (p emptyPredicate[T]) Check(value T) *Violation {
	if (len(value) == 0) != p.negate {
		return nil
	}
	if p.negate {
		return &Violation{Code: CodeNonEmpty, Expected: "must not be empty"}
	}
	return &Violation{Code: CodeEmpty, Expected: "must be empty"}
}

func (p emptyPredicate[T]) Describe() string {
	if p.negate {
		return "must not be empty"
	}
	return "must be empty"
}

// Empty checks that a string has no characters.
func Empty[T ~string]() Predicate[T] {
	return emptyPredicate[T]{}
}

// NonEmpty checks that a string has at least one character.
func NonEmpty[T ~string]() Predicate[T] {
	return emptyPredicate[T]{negate: true}
}
