package locparsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	for _, test := range []struct {
		Name      string
		Input     string
		Remainder string
		Expected  Location
		String    string
	}{
		{
			Name:      "nothing consumed",
			Input:     "abc",
			Remainder: "abc",
			Expected:  Location{},
			String:    "1:1",
		},
		{
			Name:      "everything consumed",
			Input:     "abc",
			Remainder: "",
			Expected:  Location{Column: 3, Cursor: 3},
			String:    "1:4",
		},
		{
			Name:      "across lines",
			Input:     "ab\ncd",
			Remainder: "d",
			Expected:  Location{Line: 1, Column: 1, Cursor: 4},
			String:    "2:2",
		},
		{
			Name:      "counts runes rather than bytes",
			Input:     "é+1",
			Remainder: "+1",
			Expected:  Location{Column: 1, Cursor: 1},
			String:    "1:2",
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			loc := Locate(test.Input, test.Remainder)
			assert.Equal(t, test.Expected, loc)
			assert.Equal(t, test.String, loc.String())
		})
	}
}
