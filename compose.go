package locparsec

import "iter"

// Compose runs `parsers` left to right, feeding each one the
// remainder of the previous, and yields `combine` applied to the
// values of every combination of outcomes in which all of them
// complete.  Every outcome of every sub-parser is explored.
//
// Partial outcomes of a sub-parser are collected while its outcomes
// are being enumerated for a given prefix of completed sub-parses.
// Once it's exhausted, each distinct path is yielded as a Partial with
// `id` appended.  Sub-parsers that yield nothing end their branch
// silently.
//
// `combine` receives a slice it owns.  Sequences of parsers with
// different value types can be built with Erase.
func Compose[E, T any](id string, parsers []Parser[E], combine func(values []E) T) Parser[T] {
	s := &sequence[E, T]{
		id:      id,
		parts:   append([]Parser[E](nil), parsers...),
		combine: combine,
	}
	return func(input string) iter.Seq[Outcome[T]] {
		return func(yield func(Outcome[T]) bool) {
			s.step(0, input, make([]E, 0, len(s.parts)), yield)
		}
	}
}

type sequence[E, T any] struct {
	id      string
	parts   []Parser[E]
	combine func([]E) T
}

// step enumerates the outcomes of parts[i:] on `input`, with `values`
// holding what parts[:i] produced.  Each level only writes values[i],
// so sibling branches can share the backing array.
func (s *sequence[E, T]) step(i int, input string, values []E, yield func(Outcome[T]) bool) bool {
	if i == len(s.parts) {
		args := make([]E, len(values))
		copy(args, values)
		return yield(Complete[T]{Value: s.combine(args), Remainder: input})
	}
	var partials pathSet
	for out := range s.parts[i](input) {
		switch o := out.(type) {
		case Complete[E]:
			if !s.step(i+1, o.Remainder, append(values[:i], o.Value), yield) {
				return false
			}
		case Partial[E]:
			partials.add(o.Path)
		}
	}
	return propagate(partials, s.id, yield)
}

// Map is a single part Compose: it transforms the value of every
// complete outcome of `p` with `fn`, and appends `id` to its partial
// outcomes.
func Map[A, B any](id string, p Parser[A], fn func(A) B) Parser[B] {
	return Compose(id, []Parser[A]{p}, func(v []A) B { return fn(v[0]) })
}

// Pair sequences two parsers and keeps both values
func Pair[A, B any](id string, first Parser[A], second Parser[B]) Parser[Tuple[A, B]] {
	return Compose(id, []Parser[any]{Erase(first), Erase(second)}, func(v []any) Tuple[A, B] {
		return Tuple[A, B]{First: as[A](v[0]), Second: as[B](v[1])}
	})
}

// Between sequences three parsers and keeps only the value of the
// one in the middle, e.g. for expressions between parentheses.
func Between[B, T, A any](id string, before Parser[B], p Parser[T], after Parser[A]) Parser[T] {
	return Compose(id, []Parser[any]{Erase(before), Erase(p), Erase(after)}, func(v []any) T {
		return as[T](v[1])
	})
}

// as recovers a typed value from an erased one.  Nil interface values
// come back as the zero value of T.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}
