package locparsec

import "fmt"

// Tuple is the value produced by Pair
type Tuple[A, B any] struct {
	First  A
	Second B
}

func (t Tuple[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.First, t.Second)
}
