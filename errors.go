package refinement

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Common construction errors.
var (
	// ErrNilPredicate is returned when a nil predicate is passed to Refine.
	ErrNilPredicate = errors.New("refinement: nil predicate")

	// ErrUnbound is returned when a container without a bound predicate is
	// asked to unmarshal or marshal a value.
	ErrUnbound = errors.New("refinement: container has no bound predicate")

	// ErrNoValue is returned when a decode produced no value to refine,
	// e.g. an empty YAML document.
	ErrNoValue = errors.New("refinement: no value to refine")
)

// maxValueRender bounds the rendered length of offending values so errors
// stay readable for arbitrarily large inputs.
const maxValueRender = 64

// Error is returned by checked construction and mutation when the predicate
// does not hold. It wraps the structured Violation, a bounded-size rendering
// of the rejected value, and the optional caller-supplied context.
type Error struct {
	Violation *Violation
	Value     string
	Context   Context
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s (got %s)", e.Violation.Expected, e.Value)
	if e.Context.Label != "" {
		msg = e.Context.Label + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Violation }

// AsError extracts a refinement *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr, true
	}
	return nil, false
}

// renderValue produces a bounded, printable description of a rejected value.
// Strings are quoted; everything else uses its default formatting.
func renderValue(value any) string {
	var s string
	switch v := value.(type) {
	case string:
		s = fmt.Sprintf("%q", v)
	default:
		s = fmt.Sprintf("%v", v)
	}
	return truncate(s, maxValueRender)
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
