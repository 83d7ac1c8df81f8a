//go:build refinement_unsafe

package refinement

// Unchecked wraps a value without running the predicate. The caller must
// have already established that the value satisfies the predicate through
// other means; nothing here verifies it, and every guarantee this package
// makes is void if that obligation is not met.
//
// Only available when building with the refinement_unsafe tag; default
// builds do not expose any way to skip the check.
func Unchecked[T any](pred Predicate[T], value T, opts ...Option) Refined[T] {
	var ctx Context
	for _, opt := range opts {
		opt(&ctx)
	}
	return Refined[T]{value: value, pred: pred, ctx: ctx, valid: true}
}

// ReplaceUnchecked swaps the inner value without re-validating. The caller
// obligation is the same as for Unchecked.
func (r Refined[T]) ReplaceUnchecked(value T) Refined[T] {
	r.value = value
	return r
}
