package locparsec

import "iter"

// Parser is the signature of every combinator in this package.  It
// takes the input text and returns the lazy sequence of outcomes of
// all the derivations it can find.  Invoking the same parser on the
// same input always produces the same sequence, so it can be ranged
// over as many times as needed.
type Parser[T any] func(input string) iter.Seq[Outcome[T]]

// Erase turns a Parser[T] into a Parser[any] so parsers of different
// value types can be sequenced together by Compose.
func Erase[T any](p Parser[T]) Parser[any] {
	return func(input string) iter.Seq[Outcome[any]] {
		return func(yield func(Outcome[any]) bool) {
			for out := range p(input) {
				if !yield(convert(out, func(v T) any { return v })) {
					return
				}
			}
		}
	}
}

// Choice yields every outcome of each alternative over the same
// input, in the order the alternatives were given.  It never stops
// at the first match, which is what allows ambiguous grammars to be
// enumerated.  Partial outcomes pass through untouched since picking
// a branch doesn't consume any input.
func Choice[T any](alternatives ...Parser[T]) Parser[T] {
	return func(input string) iter.Seq[Outcome[T]] {
		return func(yield func(Outcome[T]) bool) {
			for _, alternative := range alternatives {
				for out := range alternative(input) {
					if !yield(out) {
						return
					}
				}
			}
		}
	}
}

// Some matches `p` one or more times.  Each accumulated sequence is
// yielded as soon as it's matched, shortest first, before longer
// repetitions are attempted from its remainder.  Partial outcomes of
// `p` are propagated with `id` appended at any repetition depth.
//
// A repetition of `p` that doesn't consume any input is yielded but
// not repeated again, so Some terminates on any finite input.
func Some[T any](id string, p Parser[T]) Parser[[]T] {
	return func(input string) iter.Seq[Outcome[[]T]] {
		return func(yield func(Outcome[[]T]) bool) {
			repeat(id, p, input, nil, yield)
		}
	}
}

func repeat[T any](id string, p Parser[T], input string, acc []T, yield func(Outcome[[]T]) bool) bool {
	var partials pathSet
	for out := range p(input) {
		switch o := out.(type) {
		case Complete[T]:
			// every yielded slice is fresh, nothing appends to it
			// after the consumer gets it
			matched := make([]T, len(acc), len(acc)+1)
			copy(matched, acc)
			matched = append(matched, o.Value)
			if !yield(Complete[[]T]{Value: matched, Remainder: o.Remainder}) {
				return false
			}
			if len(o.Remainder) < len(input) {
				if !repeat(id, p, o.Remainder, matched, yield) {
					return false
				}
			}
		case Partial[T]:
			partials.add(o.Path)
		}
	}
	return propagate(partials, id, yield)
}

// Many matches `p` zero or more times.  It yields every repetition
// Some finds followed by the empty match, which is always present
// and leaves the input untouched.
func Many[T any](id string, p Parser[T]) Parser[[]T] {
	return Choice(Some(id, p), Unit([]T{}))
}

// Ref is a parser that is bound after it's referenced, which is
// needed by recursive grammars.  Set must be called once the grammar
// is built and before any input is parsed.  Left recursion through a
// Ref never consumes input and won't terminate; avoiding it is up to
// the grammar.
type Ref[T any] struct {
	name   string
	target Parser[T]
}

// NewRef creates an unbound reference.  `name` only shows up in the
// panic raised when an unbound reference is used.
func NewRef[T any](name string) *Ref[T] {
	return &Ref[T]{name: name}
}

// Set binds the reference to `p`
func (r *Ref[T]) Set(p Parser[T]) {
	r.target = p
}

// Parser returns a parser that forwards to the bound target
func (r *Ref[T]) Parser() Parser[T] {
	return func(input string) iter.Seq[Outcome[T]] {
		if r.target == nil {
			panic("locparsec: reference `" + r.name + "` used before Set")
		}
		return r.target(input)
	}
}
