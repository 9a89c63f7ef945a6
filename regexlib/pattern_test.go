package regexlib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------- Pattern

func TestPattern(t *testing.T) {
	a, b, c := Lit('a'), Lit('b'), Lit('c')
	tests := []struct {
		e    Expr
		want string
	}{
		{Empty{}, ""},
		{a, "a"},
		{AnyChar(), "."},
		{cat(a, cat(b, c)), "abc"},
		{cat(cat(a, b), c), "(ab)c"},
		{alt(a, alt(b, c)), "a|b|c"},
		{alt(alt(a, b), c), "(a|b)|c"},
		{cat(alt(a, b), c), "(a|b)c"},
		{cat(a, alt(b, c)), "a(b|c)"},
		{alt(Empty{}, a), "|a"},
	}
	for _, tt := range tests {
		got, ok := Pattern(tt.e)
		require.True(t, ok, "%v", tt.e)
		assert.Equal(t, tt.want, got)
	}
}

func TestPatternUnsupported(t *testing.T) {
	for _, e := range []Expr{
		Range{Lo: 'a', Hi: 'z'},
		Lit('('),
		Lit('|'),
		cat(Lit('a'), Empty{}),
		Repeat{Child: Lit('a'), Min: 0, Max: Unbounded},
		alt(Lit('a'), Repeat{Child: Lit('b'), Min: 1, Max: 2}),
		Lit(0xD800),
		Lit(-1),
		Lit(MaxChar + 1),
		cat(Lit('a'), Lit(0xDFFF)),
	} {
		_, ok := Pattern(e)
		assert.False(t, ok, "%v", e)
	}
}

// Parsing the rendered pattern must give back the same tree.
func TestPatternRoundTrip(t *testing.T) {
	pats := []string{
		"", "a", ".", "abc", "a|b|c", "(ab)|c", "a(b)c", "a(b|c)d", "(a|b)(c|d)",
		"x((ab)c)y", "|", "a||b", "(|a)b", "ab(c(d|e)f)g|h.", "((a|b)|c)|d",
	}
	for _, pat := range pats {
		e := mustParse(t, pat)
		text, ok := Pattern(e)
		require.True(t, ok, "pattern %q", pat)
		again := mustParse(t, text)
		if diff := cmp.Diff(e, again); diff != "" {
			t.Fatalf("%q rendered as %q (-want +got):\n%s", pat, text, diff)
		}
	}
}

// ------------------------------------------------------------------- String

func TestString(t *testing.T) {
	e := alt(cat(Lit('a'), AnyChar()), Empty{})
	assert.Equal(t, `Alternate(Concatenate(Range('a', 'a'), Range('\x00', '\U0010ffff')), Empty)`, e.String())

	r := Repeat{Child: Lit('x'), Min: 1, Max: Unbounded, Mode: NonGreedy}
	assert.Equal(t, "Repeat(Range('x', 'x'), 1, inf, nongreedy)", r.String())
	r.Max, r.Mode = 3, Greedy
	assert.Equal(t, "Repeat(Range('x', 'x'), 1, 3, greedy)", r.String())
}

// ------------------------------------------------------------------- Walk

func TestWalk(t *testing.T) {
	e := Repeat{Child: mustParse(t, "a(b|c)"), Max: Unbounded}

	var kinds []string
	Walk(e, func(n Expr) bool {
		kinds = append(kinds, strings.SplitN(n.String(), "(", 2)[0])
		return true
	})
	assert.Equal(t, []string{"Repeat", "Concatenate", "Range", "Alternate", "Range", "Range"}, kinds)

	count := 0
	Walk(e, func(n Expr) bool {
		count++
		_, isRepeat := n.(Repeat)
		return !isRepeat
	})
	assert.Equal(t, 1, count)

	assert.Equal(t, 4, Depth(e))
	assert.Equal(t, 1, Depth(Empty{}))
}

// ------------------------------------------------------------------- DOT

func TestExportDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportDOT(&buf, mustParse(t, "a|.")))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph AST {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `n0 [label="alt"];`)
	assert.Contains(t, out, `n1 [label="'a'"];`)
	assert.Contains(t, out, `n2 [label="any"];`)
	assert.Contains(t, out, "n0 -> n1;")
	assert.Contains(t, out, "n0 -> n2;")
}

func TestExportDOTRepeat(t *testing.T) {
	var buf bytes.Buffer
	e := Repeat{Child: Range{Lo: '0', Hi: '9'}, Min: 2, Max: Unbounded, Mode: Greedy}
	require.NoError(t, ExportDOT(&buf, e))
	assert.Contains(t, buf.String(), `n0 [label="repeat{2,∞} greedy"];`)
	assert.Contains(t, buf.String(), `n1 [label="'0'-'9'"];`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestExportDOTWriteError(t *testing.T) {
	err := ExportDOT(failingWriter{}, Lit('a'))
	assert.ErrorIs(t, err, assert.AnError)
}
