package locparsec

import "fmt"

// Outcome is the result of a single derivation attempted by a
// parser.  The only implementations are Complete[T] and Partial[T].
type Outcome[T any] interface {
	// IsComplete tells Complete outcomes apart from Partial ones
	IsComplete() bool

	String() string

	// sealed prevents outcomes of other value types from
	// satisfying Outcome[T]
	sealed(T)
}

// Complete is a successful derivation.  Remainder is always a suffix
// of the input the parser was invoked with.
type Complete[T any] struct {
	Value     T
	Remainder string
}

func (Complete[T]) IsComplete() bool { return true }
func (Complete[T]) sealed(T)         {}

func (o Complete[T]) String() string {
	return fmt.Sprintf("Complete(%v, %q)", o.Value, o.Remainder)
}

// Partial is a derivation that could not finish because the input
// was exhausted.  It carries no value and no remainder.
type Partial[T any] struct {
	Path Path
}

func (Partial[T]) IsComplete() bool { return false }
func (Partial[T]) sealed(T)         {}

func (o Partial[T]) String() string {
	return fmt.Sprintf("Partial(%s)", o.Path)
}

// convert re-types an outcome whose value goes through fn.  Partial
// outcomes keep their path untouched.
func convert[A, B any](out Outcome[A], fn func(A) B) Outcome[B] {
	switch o := out.(type) {
	case Complete[A]:
		return Complete[B]{Value: fn(o.Value), Remainder: o.Remainder}
	case Partial[A]:
		return Partial[B]{Path: o.Path}
	default:
		panic(fmt.Sprintf("unknown outcome type %T", out))
	}
}
