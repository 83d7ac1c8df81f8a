package refinement

// Predicate is the contract every refinement check implements.
//
// Check inspects a candidate value and returns nil when the value satisfies
// the predicate, or a *Violation describing why it does not. Check must be
// pure: deterministic for a given predicate configuration and candidate,
// with no side effects and no mutation of the candidate.
//
// Describe returns a human-readable statement of the requirement (for
// example "must be within [1, 100]"). It must not depend on any particular
// candidate value.
type Predicate[T any] interface {
	Check(value T) *Violation
	Describe() string
}

// funcPredicate adapts a plain boolean check into a Predicate.
type funcPredicate[T any] struct {
	describe string
	check    func(T) bool
}

func (p funcPredicate[T]) Check(value T) *Violation {
	if p.check(value) {
		return nil
	}
	return &Violation{Code: CodeFunc, Expected: p.describe}
}

func (p funcPredicate[T]) Describe() string { return p.describe }

// Satisfies builds an ad-hoc predicate from a description and a boolean
// check function. The check must be pure and side-effect-free; violations
// produced by it carry the given description verbatim.
func Satisfies[T any](describe string, check func(T) bool) Predicate[T] {
	return funcPredicate[T]{describe: describe, check: check}
}
