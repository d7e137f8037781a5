// Package locparsec is a backtracking parser combinator engine.
//
// A Parser[T] is a function from an input string to a lazy sequence
// of outcomes.  Every outcome is either Complete, carrying a value
// and the unconsumed remainder of the input, or Partial, carrying the
// Path of combinator identifiers that were waiting for more input
// when it ran out.  A parser that mismatches decisively yields
// nothing at all.
//
// Grammars are built once by composing primitives:
//
//	digits  := locparsec.MustPattern("digits", `[0-9]+`)
//	plus    := locparsec.Literal("plus", "+")
//	sum     := locparsec.Compose("sum", []locparsec.Parser[string]{digits, plus, digits},
//		func(v []string) string { return v[0] + v[2] })
//
// Sequencing and alternation explore every derivation, so ambiguous
// grammars enumerate all of their parses.  The search is driven by
// the consumer: ranging over the sequence returned by Outcomes and
// breaking out of the loop stops it.
//
// Identifiers given to Compose, Some and friends are what shows up in
// a Partial's Path.  Paths read innermost first: ["digits", "sum"]
// means the input ran out while parsing digits inside sum.
package locparsec
