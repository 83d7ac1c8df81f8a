package refinement

import "fmt"

type truePredicate[T any] struct{}

func (truePredicate[T]) Check(T) *Violation { return nil }
func (truePredicate[T]) Describe() string   { return "anything" }

// True returns a predicate that every value satisfies.
func True[T any]() Predicate[T] { return truePredicate[T]{} }

type falsePredicate[T any] struct{}

func (falsePredicate[T]) Check(T) *Violation {
	return &Violation{Code: CodeFalse, Expected: "nothing"}
}

func (falsePredicate[T]) Describe() string { return "nothing" }

// False returns a predicate that no value satisfies.
func False[T any]() Predicate[T] { return falsePredicate[T]{} }

type andPredicate[T any] struct {
	p, q Predicate[T]
}

func (a andPredicate[T]) Check(value T) *Violation {
	// Short-circuit: q is never evaluated when p fails, and only the first
	// failure is surfaced.
	if v := a.p.Check(value); v != nil {
		return v
	}
	return a.q.Check(value)
}

func (a andPredicate[T]) Describe() string {
	return a.p.Describe() + " and " + a.q.Describe()
}

// And returns a predicate satisfied when both p and q are satisfied. The
// check short-circuits: if p fails, q is not evaluated and p's violation is
// returned as-is.
func And[T any](p, q Predicate[T]) Predicate[T] {
	return andPredicate[T]{p: p, q: q}
}

type orPredicate[T any] struct {
	p, q Predicate[T]
}

func (o orPredicate[T]) Check(value T) *Violation {
	pv := o.p.Check(value)
	if pv == nil {
		return nil
	}
	qv := o.q.Check(value)
	if qv == nil {
		return nil
	}
	return &Violation{
		Code:     CodeOr,
		Expected: o.Describe(),
		Children: []*Violation{pv, qv},
	}
}

func (o orPredicate[T]) Describe() string {
	return o.p.Describe() + " or " + o.q.Describe()
}

// Or returns a predicate satisfied when at least one of p and q is
// satisfied. When both fail, the violation aggregates both branch
// violations as children, preserving which branch failed and why.
func Or[T any](p, q Predicate[T]) Predicate[T] {
	return orPredicate[T]{p: p, q: q}
}

type notPredicate[T any] struct {
	p Predicate[T]
}

func (n notPredicate[T]) Check(value T) *Violation {
	if n.p.Check(value) != nil {
		return nil
	}
	return &Violation{Code: CodeNot, Expected: n.Describe()}
}

func (n notPredicate[T]) Describe() string {
	return "must not satisfy: " + n.p.Describe()
}

// Not returns a predicate satisfied when p is not. The inner violation is
// discarded on success; on failure the violation states that the negation
// was not satisfied.
func Not[T any](p Predicate[T]) Predicate[T] {
	return notPredicate[T]{p: p}
}

type xorPredicate[T any] struct {
	p, q Predicate[T]
}

func (x xorPredicate[T]) Check(value T) *Violation {
	pv := x.p.Check(value)
	qv := x.q.Check(value)

	if (pv == nil) != (qv == nil) {
		return nil
	}

	violation := &Violation{Code: CodeXor, Expected: x.Describe()}
	if pv != nil {
		violation.Children = []*Violation{pv, qv}
	}
	return violation
}

func (x xorPredicate[T]) Describe() string {
	return fmt.Sprintf("exactly one of (%s) and (%s)", x.p.Describe(), x.q.Describe())
}

// Xor returns a predicate satisfied when exactly one of p and q is
// satisfied. When both fail, the violation aggregates both branch
// violations; when both succeed, it carries no children.
func Xor[T any](p, q Predicate[T]) Predicate[T] {
	return xorPredicate[T]{p: p, q: q}
}

// Imply returns a predicate satisfied when p implies q, i.e. Or(Not(p), q).
func Imply[T any](p, q Predicate[T]) Predicate[T] {
	return Or(Not(p), q)
}

// Nand returns Not(And(p, q)).
func Nand[T any](p, q Predicate[T]) Predicate[T] {
	return Not(And(p, q))
}

// Nor returns Not(Or(p, q)).
func Nor[T any](p, q Predicate[T]) Predicate[T] {
	return Not(Or(p, q))
}

// Xnor returns Not(Xor(p, q)).
func Xnor[T any](p, q Predicate[T]) Predicate[T] {
	return Not(Xor(p, q))
}
