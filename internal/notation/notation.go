// Package notation reads the textual tree notation printed by the String
// methods of regexlib expressions, e.g.
//
//	Concatenate(Range('a', 'a'), Repeat(Range('0', '9'), 1, inf, greedy))
package notation

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"

	"regexast/regexlib"
)

type node struct {
	Empty  bool        `parser:"  @'Empty'"`
	Range  *rangeArgs  `parser:"| 'Range' '(' @@ ')'"`
	Concat *pairArgs   `parser:"| 'Concatenate' '(' @@ ')'"`
	Alt    *pairArgs   `parser:"| 'Alternate' '(' @@ ')'"`
	Repeat *repeatArgs `parser:"| 'Repeat' '(' @@ ')'"`
}

type rangeArgs struct {
	Lo string `parser:"@Char ','"`
	Hi string `parser:"@Char"`
}

type pairArgs struct {
	Left  *node `parser:"@@ ','"`
	Right *node `parser:"@@"`
}

type repeatArgs struct {
	Child *node  `parser:"@@ ','"`
	Min   int    `parser:"@Int ','"`
	Max   *int   `parser:"( @Int | 'inf' ) ','"`
	Mode  string `parser:"@( 'greedy' | 'nongreedy' )"`
}

var grammar = participle.MustBuild[node](participle.Unquote("String", "Char"))

// Parse reads one expression in tree notation.
func Parse(text string) (regexlib.Expr, error) {
	n, err := grammar.ParseString("notation", text)
	if err != nil {
		return nil, fmt.Errorf("notation: %w", err)
	}
	return n.expr()
}

// MustParse is like Parse but panics on error. Meant for tests and tables.
func MustParse(text string) regexlib.Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return e
}

func (n *node) expr() (regexlib.Expr, error) {
	switch {
	case n.Empty:
		return regexlib.Empty{}, nil
	case n.Range != nil:
		lo, err := char(n.Range.Lo)
		if err != nil {
			return nil, err
		}
		hi, err := char(n.Range.Hi)
		if err != nil {
			return nil, err
		}
		return regexlib.Range{Lo: lo, Hi: hi}, nil
	case n.Concat != nil:
		left, right, err := n.Concat.exprs()
		if err != nil {
			return nil, err
		}
		return regexlib.Concatenate{Left: left, Right: right}, nil
	case n.Alt != nil:
		left, right, err := n.Alt.exprs()
		if err != nil {
			return nil, err
		}
		return regexlib.Alternate{Left: left, Right: right}, nil
	case n.Repeat != nil:
		child, err := n.Repeat.Child.expr()
		if err != nil {
			return nil, err
		}
		r := regexlib.Repeat{Child: child, Min: n.Repeat.Min, Max: regexlib.Unbounded}
		if n.Repeat.Max != nil {
			r.Max = *n.Repeat.Max
		}
		if n.Repeat.Mode == "nongreedy" {
			r.Mode = regexlib.NonGreedy
		}
		return r, nil
	}
	return nil, fmt.Errorf("notation: empty node")
}

func (p *pairArgs) exprs() (regexlib.Expr, regexlib.Expr, error) {
	left, err := p.Left.expr()
	if err != nil {
		return nil, nil, err
	}
	right, err := p.Right.expr()
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// char decodes a captured character literal to its single rune.
func char(s string) (rune, error) {
	if len(s) > 0 && s[0] == '\'' {
		u, err := strconv.Unquote(s)
		if err != nil {
			return 0, fmt.Errorf("notation: bad character literal %s: %w", s, err)
		}
		s = u
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("notation: %q is not a single character", s)
	}
	return r, nil
}
