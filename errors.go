package locparsec

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is wrapped by errors reporting that no derivation
	// covered the input
	ErrNoMatch = errors.New("no match")

	// ErrIncomplete is wrapped by errors reporting that the input
	// ended while a derivation was still in progress
	ErrIncomplete = errors.New("incomplete input")
)

// ParsingError is returned by Parse when no acceptable derivation was
// found and none of them ran out of input either.  Location is where
// the longest complete derivation stopped.
type ParsingError struct {
	Message  string
	Location Location
}

// Error returns the human readable representation of a parsing error
func (e *ParsingError) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message, e.Location)
}

func (e *ParsingError) Unwrap() error { return ErrNoMatch }

// IncompleteError is returned by Parse when the input ran out before
// any derivation could finish.  Path is the shortest of the distinct
// paths in Candidates.
type IncompleteError struct {
	Path       Path
	Candidates []Path
	Location   Location
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("expected more input while parsing %s @ %s", e.Path, e.Location)
}

func (e *IncompleteError) Unwrap() error { return ErrIncomplete }

// PatternError is returned when a Pattern expression doesn't compile
type PatternError struct {
	ID   string
	Expr string
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern `%s` (%q): %s", e.ID, e.Expr, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
