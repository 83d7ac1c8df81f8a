package refinement

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// classPredicate checks that every rune of a string belongs to a character
// class. Empty strings satisfy every class vacuously; combine with NonEmpty
// to exclude them.
type classPredicate[T ~string] struct {
	code     string
	describe string
	valid    func(rune) bool
}

func (p classPredicate[T]) Check(value T) *Violation {
	for _, r := range string(value) {
		if !p.valid(r) {
			return &Violation{Code: p.code, Expected: p.describe}
		}
	}
	return nil
}

func (p classPredicate[T]) Describe() string { return p.describe }

// ASCII checks that every character is in the 0-127 range.
func ASCII[T ~string]() Predicate[T] {
	return classPredicate[T]{
		code:     CodeASCII,
		describe: "must contain only ASCII characters",
		valid:    func(r rune) bool { return r < utf8.RuneSelf },
	}
}

// Alphabetic checks that every character is a letter.
func Alphabetic[T ~string]() Predicate[T] {
	return classPredicate[T]{
		code:     CodeAlphabetic,
		describe: "must contain only letters",
		valid:    unicode.IsLetter,
	}
}

// Alphanumeric checks that every character is a letter or a digit.
func Alphanumeric[T ~string]() Predicate[T] {
	return classPredicate[T]{
		code:     CodeAlphanumeric,
		describe: "must contain only letters and digits",
		valid:    func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) },
	}
}

// Digits checks that every character is a digit.
func Digits[T ~string]() Predicate[T] {
	return classPredicate[T]{
		code:     CodeDigits,
		describe: "must contain only digits",
		valid:    unicode.IsDigit,
	}
}

// Lowercase checks that no character is an uppercase letter.
func Lowercase[T ~string]() Predicate[T] {
	return classPredicate[T]{
		code:     CodeLowercase,
		describe: "must not contain uppercase letters",
		valid:    func(r rune) bool { return !unicode.IsUpper(r) },
	}
}

// Uppercase checks that no character is a lowercase letter.
func Uppercase[T ~string]() Predicate[T] {
	return classPredicate[T]{
		code:     CodeUppercase,
		describe: "must not contain lowercase letters",
		valid:    func(r rune) bool { return !unicode.IsLower(r) },
	}
}

type affixPredicate[T ~string] struct {
	code     string
	describe string
	affix    string
	check    func(s, affix string) bool
}

func (p affixPredicate[T]) Check(value T) *Violation {
	if p.check(string(value), p.affix) {
		return nil
	}
	return &Violation{Code: p.code, Expected: p.describe}
}

func (p affixPredicate[T]) Describe() string { return p.describe }

// HasPrefix checks that a string starts with the given prefix.
func HasPrefix[T ~string](prefix string) Predicate[T] {
	return affixPredicate[T]{
		code:     CodePrefix,
		describe: fmt.Sprintf("must start with %q", prefix),
		affix:    prefix,
		check:    strings.HasPrefix,
	}
}

// HasSuffix checks that a string ends with the given suffix.
func HasSuffix[T ~string](suffix string) Predicate[T] {
	return affixPredicate[T]{
		code:     CodeSuffix,
		describe: fmt.Sprintf("must end with %q", suffix),
		affix:    suffix,
		check:    strings.HasSuffix,
	}
}

// Contains checks that a string contains the given substring.
func Contains[T ~string](substring string) Predicate[T] {
	return affixPredicate[T]{
		code:     CodeContains,
		describe: fmt.Sprintf("must contain %q", substring),
		affix:    substring,
		check:    strings.Contains,
	}
}

// patternPredicate matches the full text of a string against a compiled
// regular expression. The expression is compiled exactly once, at predicate
// construction; the compiled form is immutable and safe for concurrent use.
type patternPredicate[T ~string] struct {
	describe string
	pattern  *regexp.Regexp
}

func (p patternPredicate[T]) Check(value T) *Violation {
	if p.pattern.MatchString(string(value)) {
		return nil
	}
	return &Violation{Code: CodeMatches, Expected: p.describe}
}

func (p patternPredicate[T]) Describe() string { return p.describe }

// Matches checks that a string's full text matches the given expression.
// An invalid expression fails here, at predicate construction, never at
// check time.
func Matches[T ~string](expr string) (Predicate[T], error) {
	// Anchor so the whole input must match, not just a substring.
	pattern, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("refinement: invalid pattern %q: %w", expr, err)
	}
	return patternPredicate[T]{
		describe: fmt.Sprintf("must match pattern %q", expr),
		pattern:  pattern,
	}, nil
}

// MustMatch is like Matches but panics on an invalid expression. Intended
// for package-level predicate variables with fixed expressions.
func MustMatch[T ~string](expr string) Predicate[T] {
	pred, err := Matches[T](expr)
	if err != nil {
		panic(err)
	}
	return pred
}
