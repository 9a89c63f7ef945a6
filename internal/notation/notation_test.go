package notation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regexast/regexlib"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want regexlib.Expr
	}{
		{"Empty", regexlib.Empty{}},
		{"Range('a', 'z')", regexlib.Range{Lo: 'a', Hi: 'z'}},
		{`Range('\x00', '\U0010ffff')`, regexlib.AnyChar()},
		{"Range('é', 'é')", regexlib.Lit('é')},
		{
			"Concatenate(Range('a', 'a'), Range('b', 'b'))",
			regexlib.Concatenate{Left: regexlib.Lit('a'), Right: regexlib.Lit('b')},
		},
		{
			"Alternate(Empty, Alternate(Range('b', 'b'), Range('c', 'c')))",
			regexlib.Alternate{
				Left:  regexlib.Empty{},
				Right: regexlib.Alternate{Left: regexlib.Lit('b'), Right: regexlib.Lit('c')},
			},
		},
		{
			"Repeat(Range('x', 'x'), 2, 5, nongreedy)",
			regexlib.Repeat{Child: regexlib.Lit('x'), Min: 2, Max: 5, Mode: regexlib.NonGreedy},
		},
		{
			"Repeat(Empty, 0, inf, greedy)",
			regexlib.Repeat{Child: regexlib.Empty{}, Min: 0, Max: regexlib.Unbounded, Mode: regexlib.Greedy},
		},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, text := range []string{
		"",
		"Range('a')",
		"Concatenate(Empty)",
		"Repeat(Empty, 1, 2, lazy)",
		"Alternate(Empty, Empty) Empty",
		"Leaf",
	} {
		_, err := Parse(text)
		assert.Error(t, err, "Parse(%q)", text)
	}
}

// Every tree printed by String must read back unchanged.
func TestRoundTripString(t *testing.T) {
	trees := []regexlib.Expr{
		regexlib.MustParse("a(b|.)c|"),
		regexlib.MustParse("((x))|(|y)"),
		regexlib.Range{Lo: 'z', Hi: 'a'},
		regexlib.Lit('\''),
		regexlib.Lit('\n'),
		regexlib.Repeat{
			Child: regexlib.Alternate{Left: regexlib.Lit('a'), Right: regexlib.Empty{}},
			Min:   1,
			Max:   regexlib.Unbounded,
			Mode:  regexlib.NonGreedy,
		},
	}
	for _, e := range trees {
		got, err := Parse(e.String())
		require.NoError(t, err, e.String())
		assert.Equal(t, e, got)
	}
}
