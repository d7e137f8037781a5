package locparsec

import (
	"iter"
	"regexp"
	"strings"
)

// Literal matches the string `s` at the start of the input.  When the
// whole input is a strict prefix of `s` it yields Partial([id]),
// because more input could still complete the match.  Any other
// mismatch yields nothing.
func Literal(id, s string) Parser[string] {
	return func(input string) iter.Seq[Outcome[string]] {
		return func(yield func(Outcome[string]) bool) {
			switch {
			case strings.HasPrefix(input, s):
				yield(Complete[string]{Value: s, Remainder: input[len(s):]})
			case len(input) < len(s) && strings.HasPrefix(s, input):
				yield(Partial[string]{Path: Path{id}})
			}
		}
	}
}

// Pattern compiles `expr` into a parser anchored at the start of the
// input.  Matching is leftmost-longest, so the longest text the
// expression allows is consumed.  When the input is already empty and
// the expression can't match the empty string, the parser yields
// Partial([id]).
//
// The regexp engine can't tell whether a non-empty input is a prefix
// of some future match, so a pattern only reports Partial once the
// input is exhausted.
func Pattern(id, expr string) (Parser[string], error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return nil, &PatternError{ID: id, Expr: expr, Err: err}
	}
	re.Longest()
	return func(input string) iter.Seq[Outcome[string]] {
		return func(yield func(Outcome[string]) bool) {
			loc := re.FindStringIndex(input)
			switch {
			case loc != nil:
				yield(Complete[string]{Value: input[:loc[1]], Remainder: input[loc[1]:]})
			case input == "":
				yield(Partial[string]{Path: Path{id}})
			}
		}
	}, nil
}

// MustPattern is like Pattern but panics if the expression can't be
// compiled.  It's meant for grammars declared at package level.
func MustPattern(id, expr string) Parser[string] {
	p, err := Pattern(id, expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Empty always succeeds without consuming input, producing the zero
// value of T
func Empty[T any]() Parser[T] {
	var zero T
	return Unit(zero)
}

// Unit always succeeds without consuming input, producing `value`
func Unit[T any](value T) Parser[T] {
	return func(input string) iter.Seq[Outcome[T]] {
		return func(yield func(Outcome[T]) bool) {
			yield(Complete[T]{Value: value, Remainder: input})
		}
	}
}
