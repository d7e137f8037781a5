package locparsec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	for _, test := range []struct {
		Name     string
		Literal  string
		Input    string
		Expected []Outcome[string]
	}{
		{
			Name:     "matches at the start of the input",
			Literal:  "ab",
			Input:    "abc",
			Expected: []Outcome[string]{Complete[string]{Value: "ab", Remainder: "c"}},
		},
		{
			Name:     "consumes the whole input",
			Literal:  "ab",
			Input:    "ab",
			Expected: []Outcome[string]{Complete[string]{Value: "ab", Remainder: ""}},
		},
		{
			Name:     "strict prefix of the literal is partial",
			Literal:  "ab",
			Input:    "a",
			Expected: []Outcome[string]{Partial[string]{Path: Path{"lit"}}},
		},
		{
			Name:     "exhausted input is partial",
			Literal:  "ab",
			Input:    "",
			Expected: []Outcome[string]{Partial[string]{Path: Path{"lit"}}},
		},
		{
			Name:    "decisive mismatch yields nothing",
			Literal: "ab",
			Input:   "ax",
		},
		{
			Name:    "longer input that doesn't start with the literal yields nothing",
			Literal: "ab",
			Input:   "xab",
		},
		{
			Name:     "empty literal always matches",
			Literal:  "",
			Input:    "xy",
			Expected: []Outcome[string]{Complete[string]{Value: "", Remainder: "xy"}},
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			assert.Equal(t, test.Expected, Run(Literal("lit", test.Literal), test.Input))
		})
	}
}

func TestPattern(t *testing.T) {
	for _, test := range []struct {
		Name     string
		Expr     string
		Input    string
		Expected []Outcome[string]
	}{
		{
			Name:     "greedy match",
			Expr:     `[0-9]+`,
			Input:    "123+4",
			Expected: []Outcome[string]{Complete[string]{Value: "123", Remainder: "+4"}},
		},
		{
			Name:     "longest alternative wins",
			Expr:     `a|ab`,
			Input:    "abc",
			Expected: []Outcome[string]{Complete[string]{Value: "ab", Remainder: "c"}},
		},
		{
			Name:  "anchored at the start of the input",
			Expr:  `[0-9]+`,
			Input: "x1",
		},
		{
			Name:     "exhausted input is partial",
			Expr:     `[0-9]+`,
			Input:    "",
			Expected: []Outcome[string]{Partial[string]{Path: Path{"pat"}}},
		},
		{
			Name:     "patterns matching the empty string complete on empty input",
			Expr:     `[0-9]*`,
			Input:    "",
			Expected: []Outcome[string]{Complete[string]{Value: "", Remainder: ""}},
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			p, err := Pattern("pat", test.Expr)
			require.NoError(t, err)
			assert.Equal(t, test.Expected, Run(p, test.Input))
		})
	}

	t.Run("malformed expressions fail at construction", func(t *testing.T) {
		p, err := Pattern("broken", `[0-9`)
		require.Error(t, err)
		assert.Nil(t, p)

		var perr *PatternError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "broken", perr.ID)
		assert.Equal(t, "[0-9", perr.Expr)

		assert.Panics(t, func() { MustPattern("broken", `(`) })
	})
}

func TestEmptyAndUnit(t *testing.T) {
	assert.Equal(t,
		[]Outcome[int]{Complete[int]{Value: 0, Remainder: "abc"}},
		Run(Empty[int](), "abc"))

	assert.Equal(t,
		[]Outcome[string]{Complete[string]{Value: "v", Remainder: ""}},
		Run(Unit("v"), ""))
}
