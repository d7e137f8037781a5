package locparsec

import (
	"fmt"
	"iter"
	"slices"
	"unicode/utf8"
)

// Outcomes returns the lazy sequence of outcomes of `p` over
// `input`.  Nothing is parsed until the sequence is ranged over, and
// breaking out of the loop stops the search.
func Outcomes[T any](p Parser[T], input string) iter.Seq[Outcome[T]] {
	return p(input)
}

// Run parses `input` with `p` and collects every outcome in the order
// they were found.  It doesn't return for grammars with infinitely
// many derivations; use Take for those.
func Run[T any](p Parser[T], input string) []Outcome[T] {
	return slices.Collect(p(input))
}

// Take collects at most `n` outcomes from `seq`
func Take[T any](seq iter.Seq[Outcome[T]], n int) []Outcome[T] {
	var outcomes []Outcome[T]
	if n <= 0 {
		return outcomes
	}
	for out := range seq {
		outcomes = append(outcomes, out)
		if len(outcomes) == n {
			break
		}
	}
	return outcomes
}

// Parse applies a common policy on top of the outcomes of `p`: it
// returns the value of the first complete outcome, which must have
// consumed the whole input when `driver.require_eof` is set.
//
// When no outcome is accepted, the partial outcomes seen decide the
// error.  If there were any, an *IncompleteError reports the shortest
// of their paths.  Otherwise a *ParsingError points at the end of the
// longest complete derivation, i.e. the first character no derivation
// could consume.  Inner parsers may have looked further than that
// before backtracking: for "1+x" the error is at the '+', since "+x"
// can't continue any derivation.  A nil `cfg` means NewConfig().
func Parse[T any](p Parser[T], input string, cfg *Config) (T, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	var (
		zero        T
		requireEOF  = cfg.GetBool("driver.require_eof")
		limit       = cfg.GetInt("driver.max_outcomes")
		logOutcomes = cfg.GetBool("driver.log_outcomes")
		log         = logger()

		partials  pathSet
		furthest  = input
		completes int
		seen      int
	)
	for out := range p(input) {
		seen++
		if logOutcomes {
			log.Debugf("outcome %d: %s", seen, out)
		}
		switch o := out.(type) {
		case Complete[T]:
			if !requireEOF || o.Remainder == "" {
				return o.Value, nil
			}
			completes++
			if len(o.Remainder) < len(furthest) {
				furthest = o.Remainder
			}
		case Partial[T]:
			partials.add(o.Path)
		}
		if limit > 0 && seen >= limit {
			log.Debugf("giving up after %d outcome(s)", seen)
			break
		}
	}

	if len(partials) > 0 {
		shortest := partials[0]
		for _, path := range partials[1:] {
			if len(path) < len(shortest) {
				shortest = path
			}
		}
		return zero, &IncompleteError{
			Path:       shortest,
			Candidates: partials,
			Location:   Locate(input, ""),
		}
	}
	if completes > 0 {
		r, _ := utf8.DecodeRuneInString(furthest)
		return zero, &ParsingError{
			Message:  fmt.Sprintf("unexpected %q", r),
			Location: Locate(input, furthest),
		}
	}
	return zero, &ParsingError{
		Message:  "no derivation matched the input",
		Location: Locate(input, input),
	}
}
