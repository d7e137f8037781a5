package locparsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	t.Run("complete outcomes carry value and remainder", func(t *testing.T) {
		var out Outcome[int] = Complete[int]{Value: 42, Remainder: "+1"}
		assert.True(t, out.IsComplete())
		assert.Equal(t, `Complete(42, "+1")`, out.String())
	})

	t.Run("partial outcomes carry a path only", func(t *testing.T) {
		var out Outcome[int] = Partial[int]{Path: Path{"digits", "literal"}}
		assert.False(t, out.IsComplete())
		assert.Equal(t, "Partial(digits < literal)", out.String())
	})

	t.Run("convert keeps partial paths and maps complete values", func(t *testing.T) {
		double := func(v int) string { return string(rune('a' + v*2)) }

		c := convert[int, string](Complete[int]{Value: 1, Remainder: "x"}, double)
		assert.Equal(t, Complete[string]{Value: "c", Remainder: "x"}, c)

		p := convert[int, string](Partial[int]{Path: Path{"a"}}, double)
		assert.Equal(t, Partial[string]{Path: Path{"a"}}, p)
	})
}

func TestPath(t *testing.T) {
	t.Run("append never modifies the receiver", func(t *testing.T) {
		base := Path{"literal"}
		product := base.Append("product")
		group := base.Append("group")

		assert.Equal(t, Path{"literal"}, base)
		assert.Equal(t, Path{"literal", "product"}, product)
		assert.Equal(t, Path{"literal", "group"}, group)
	})

	t.Run("reads innermost first", func(t *testing.T) {
		p := Path{"literal", "product", "term"}
		assert.Equal(t, "literal", p.Innermost())
		assert.Equal(t, "term", p.Outermost())
		assert.Equal(t, "literal < product < term", p.String())
	})

	t.Run("empty path", func(t *testing.T) {
		var p Path
		assert.Equal(t, "", p.Innermost())
		assert.Equal(t, "", p.Outermost())
		assert.Equal(t, "", p.String())
	})

	t.Run("path set keeps distinct paths in first seen order", func(t *testing.T) {
		var s pathSet
		s.add(Path{"b"})
		s.add(Path{"a"})
		s.add(Path{"b"})
		s.add(Path{"b", "c"})
		assert.Equal(t, pathSet{{"b"}, {"a"}, {"b", "c"}}, s)
	})
}
