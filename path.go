package locparsec

import (
	"slices"
	"strings"
)

// Path is the trail of combinator identifiers attached to a Partial
// outcome.  The identifier of the combinator that detected the
// missing input comes first, and each enclosing combinator appends
// its own identifier as the outcome propagates outwards.
type Path []string

// Append returns a new path with id added at the outermost end.  The
// receiver is never modified.
func (p Path) Append(id string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, id)
}

// Innermost returns the identifier of the combinator that ran out of
// input, or the empty string for an empty path.
func (p Path) Innermost() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Outermost returns the identifier of the last enclosing combinator
// the partial outcome went through.
func (p Path) Outermost() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// String renders the path innermost first, e.g. `digits < literal < term`
func (p Path) String() string {
	return strings.Join(p, " < ")
}

// pathSet collects distinct paths preserving the order they were
// first seen in.
type pathSet []Path

func (s *pathSet) add(p Path) {
	for _, seen := range *s {
		if seen.Equal(p) {
			return
		}
	}
	*s = append(*s, p)
}

// propagate yields each collected path with id appended.  It returns
// false as soon as the consumer stops the iteration.
func propagate[T any](s pathSet, id string, yield func(Outcome[T]) bool) bool {
	for _, p := range s {
		if !yield(Partial[T]{Path: p.Append(id)}) {
			return false
		}
	}
	return true
}
