// Package refinement wraps raw values in containers that can only be
// constructed when the value satisfies a caller-supplied predicate, pushing
// validation to the boundary and eliminating re-validation afterwards:
// parse, don't validate.
//
// A Predicate pairs a pure Check function with a human-readable description
// of its requirement. The package ships primitive predicate families
// (numeric bounds, length bounds, string classes, pattern matching) and a
// combinator algebra (And, Or, Not plus derived forms) that compose freely;
// combinators implement the same Predicate contract and are
// indistinguishable from primitives to any consumer.
//
// # Architecture
//
// Each source file groups one predicate family (numeric.go, length.go,
// strings.go, logic.go); refined.go holds the generic container, errors.go
// and violation.go the structured failure model, codec.go the optional
// (de)serialization boundary. Predicates carry no mutable state — pattern
// predicates own a regular expression compiled once at construction and
// shared read-only — so everything here is safe for concurrent use without
// synchronization.
//
// # Usage
//
//	name := refinement.And(refinement.LengthBetween[string](1, 32), refinement.ASCII[string]())
//
//	user, err := refinement.Refine(name, "nekit", refinement.WithContext("username"))
//	if err != nil {
//	    // err is a *refinement.Error carrying the violation tree,
//	    // a bounded rendering of the rejected value, and the context.
//	}
//	_ = user.Value() // "nekit", guaranteed to satisfy the predicate
//
// Mutation goes through Replace or Map, which re-validate and return a new
// container, leaving the receiver untouched on failure.
//
// # Error Handling
//
// Checked construction returns *Error, which wraps a *Violation tree
// mirroring the combinator nesting that produced it. Use errors.As (or the
// AsError helper) to recover the structured form; the diagnose subpackage
// renders it as a plain message or a styled terminal report.
//
// # Unsafe Escape
//
// Building with the refinement_unsafe tag exposes Unchecked and
// ReplaceUnchecked, which skip validation entirely. Default builds compile
// them out, so the construction invariant cannot be bypassed accidentally.
package refinement
