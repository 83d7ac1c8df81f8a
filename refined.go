package refinement

import "fmt"

// Context is caller-supplied auxiliary data attached to every violation
// raised during a container's construction. Label typically names the field
// or parameter being refined; Source, Offset and Length optionally carry
// positional information consumed by the diagnostics renderer.
type Context struct {
	Label  string
	Source string
	Offset int
	Length int
}

// IsZero reports whether no context was supplied.
func (c Context) IsZero() bool { return c == Context{} }

// Option configures the context of a checked construction.
type Option func(*Context)

// WithContext attaches a label (e.g. a field name) to the refinement.
func WithContext(label string) Option {
	return func(c *Context) { c.Label = label }
}

// WithSource attaches the source text the value came from, plus the byte
// offset and length of the value within it, for span-annotated diagnostics.
func WithSource(source string, offset, length int) Option {
	return func(c *Context) {
		c.Source = source
		c.Offset = offset
		c.Length = length
	}
}

// Refined owns a value that satisfied its predicate at the moment of the
// last checked construction or mutation. Instances are only reachable
// through the validated constructors in this package (plus the explicitly
// unsafe path behind the refinement_unsafe build tag), so holding a Refined
// is itself the proof that the check ran.
//
// The zero value is not refined; IsRefined reports the difference.
type Refined[T any] struct {
	value T
	pred  Predicate[T]
	ctx   Context
	valid bool
}

// Refine validates value against pred and, on success, wraps it. On failure
// it returns a *Error wrapping the predicate's Violation, a bounded
// rendering of the rejected value, and any context supplied via options.
// The value is never coerced or clamped; failure is always reported.
func Refine[T any](pred Predicate[T], value T, opts ...Option) (Refined[T], error) {
	var ctx Context
	for _, opt := range opts {
		opt(&ctx)
	}
	return refineWith(pred, value, ctx)
}

func refineWith[T any](pred Predicate[T], value T, ctx Context) (Refined[T], error) {
	if pred == nil {
		return Refined[T]{}, ErrNilPredicate
	}
	if v := pred.Check(value); v != nil {
		return Refined[T]{}, &Error{
			Violation: v,
			Value:     renderValue(value),
			Context:   ctx,
		}
	}
	return Refined[T]{value: value, pred: pred, ctx: ctx, valid: true}, nil
}

// MustRefine is like Refine but panics on failure. Intended for values known
// valid at program start, such as package-level constants.
func MustRefine[T any](pred Predicate[T], value T, opts ...Option) Refined[T] {
	refined, err := Refine(pred, value, opts...)
	if err != nil {
		panic(err)
	}
	return refined
}

// IsRefined reports whether the container was produced by a validated
// construction. The zero value and Bind holders report false.
func (r Refined[T]) IsRefined() bool { return r.valid }

// Value returns the inner value for reading. The refinement guarantee still
// applies to the container.
func (r Refined[T]) Value() T { return r.value }

// Unwrap takes the inner value out of the refinement boundary. After this
// point no invariant is tracked for the returned value.
func (r Refined[T]) Unwrap() T { return r.value }

// Predicate returns the predicate guarding this container.
func (r Refined[T]) Predicate() Predicate[T] { return r.pred }

// Context returns the context supplied at construction.
func (r Refined[T]) Context() Context { return r.ctx }

// Replace re-validates the new value against the container's predicate and
// returns a new container holding it. On failure the receiver is unaffected
// and the error is returned: the replacement either fully happens or not at
// all.
func (r Refined[T]) Replace(value T) (Refined[T], error) {
	return refineWith(r.pred, value, r.ctx)
}

// Map applies fn to the inner value and re-validates the result, returning
// a new container on success. The receiver is unaffected on failure.
func (r Refined[T]) Map(fn func(T) T) (Refined[T], error) {
	return refineWith(r.pred, fn(r.value), r.ctx)
}

// String formats the inner value.
func (r Refined[T]) String() string { return fmt.Sprint(r.value) }

// Equal reports whether two refined containers hold equal values. Holders
// that were never validated are never equal to anything.
func Equal[T comparable](a, b Refined[T]) bool {
	return a.valid && b.valid && a.value == b.value
}
