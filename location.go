package locparsec

import "fmt"

// Location is a position within the input text.  Line and Column are
// zero based and count runes, Cursor is the rune offset from the start
// of the input.
type Location struct {
	Line   int
	Column int
	Cursor int
}

// String returns the one based `line:column` form of the location
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line+1, l.Column+1)
}

// Locate returns where `remainder` starts within `input`.  Since
// complete outcomes only ever carry suffixes of their input, the
// consumed text is the first len(input)-len(remainder) bytes.
func Locate(input, remainder string) Location {
	consumed := len(input) - len(remainder)
	if consumed < 0 {
		consumed = 0
	}
	var l Location
	for _, c := range input[:consumed] {
		l.Cursor++
		l.Column++
		if c == '\n' {
			l.Column = 0
			l.Line++
		}
	}
	return l
}
