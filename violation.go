package refinement

// Violation codes, namespaced by predicate family. Codes are stable
// machine-readable identifiers; the Expected text is the human-readable
// counterpart.
const (
	CodeFunc = "func"

	CodeNumRange    = "num::range"
	CodeNumEqual    = "num::eq"
	CodeNumNotEqual = "num::ne"

	CodeLengthRange = "length::range"
	CodeCountRange  = "count::range"
	CodeEmpty       = "empty::is"
	CodeNonEmpty    = "empty::not"

	CodeASCII        = "str::ascii"
	CodeAlphabetic   = "str::alphabetic"
	CodeAlphanumeric = "str::alphanumeric"
	CodeDigits       = "str::digits"
	CodeLowercase    = "str::lowercase"
	CodeUppercase    = "str::uppercase"
	CodePrefix       = "str::starts_with"
	CodeSuffix       = "str::ends_with"
	CodeContains     = "str::contains"
	CodeMatches      = "str::matches"

	CodeOr    = "logic::or"
	CodeNot   = "logic::not"
	CodeXor   = "logic::xor"
	CodeFalse = "logic::false"
)

// Violation is structured evidence of why a predicate check failed.
//
// Composite predicates produce violations with Children, forming a tree
// that mirrors the combinator nesting which produced it: Or retains one
// child per failed branch, And surfaces only the first failing branch's
// violation (short-circuit), so an And violation is the inner violation
// itself, not a wrapper.
type Violation struct {
	// Code identifies the predicate family that failed, e.g. "num::range".
	Code string

	// Expected is the failed predicate's requirement, e.g. "must be within [1, 100]".
	Expected string

	// Children holds per-branch violations for composite failures.
	Children []*Violation
}

// Error implements the error interface, returning the requirement that was
// not met.
func (v *Violation) Error() string { return v.Expected }

// Leaf reports whether the violation has no child branches.
func (v *Violation) Leaf() bool { return len(v.Children) == 0 }
