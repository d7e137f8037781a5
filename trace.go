package locparsec

import (
	"iter"

	"github.com/tliron/commonlog"
)

// Trace wraps `p` and logs at debug level every invocation and every
// outcome it yields.  Outcomes are passed through unchanged, so a
// traced parser can stand in for p anywhere in a grammar.
func Trace[T any](id string, p Parser[T]) Parser[T] {
	return func(input string) iter.Seq[Outcome[T]] {
		return func(yield func(Outcome[T]) bool) {
			log := logger()
			if !log.AllowLevel(commonlog.Debug) {
				for out := range p(input) {
					if !yield(out) {
						return
					}
				}
				return
			}
			log.Debugf("%s: enter %q", id, input)
			count := 0
			for out := range p(input) {
				count++
				log.Debugf("%s: %s", id, out)
				if !yield(out) {
					log.Debugf("%s: stopped after %d outcome(s)", id, count)
					return
				}
			}
			log.Debugf("%s: exhausted after %d outcome(s)", id, count)
		}
	}
}
