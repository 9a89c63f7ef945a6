package regexlib

import (
	"strings"
	"unicode/utf8"
)

// Pattern renders e back into pattern syntax such that Parse returns a tree
// equal to e. ok is false when e has no spelling in the dialect: Repeat
// nodes, ranges other than single characters and '.', literal syntax
// characters, runes that are not valid Unicode scalar values, and
// Concatenate nodes with an Empty operand.
func Pattern(e Expr) (string, bool) {
	var b strings.Builder
	if !writePattern(&b, e) {
		return "", false
	}
	return b.String(), true
}

func writePattern(b *strings.Builder, e Expr) bool {
	switch n := e.(type) {
	case Empty:
		return true
	case Range:
		if n == AnyChar() {
			b.WriteByte('.')
			return true
		}
		if n.Lo != n.Hi || isSyntax(n.Lo) || !utf8.ValidRune(n.Lo) {
			return false
		}
		b.WriteRune(n.Lo)
		return true
	case Concatenate:
		if isEmpty(n.Left) || isEmpty(n.Right) {
			return false
		}
		// A run of characters coalesces right-nested, so it can be
		// written flat. Anything else needs explicit groups.
		if atomSpine(n) {
			return writePattern(b, n.Left) && writePattern(b, n.Right)
		}
		return writeOperand(b, n.Left) && writeOperand(b, n.Right)
	case Alternate:
		if _, nested := n.Left.(Alternate); nested {
			if !writeGroup(b, n.Left) {
				return false
			}
		} else if !writePattern(b, n.Left) {
			return false
		}
		b.WriteByte('|')
		return writePattern(b, n.Right)
	}
	return false
}

// writeOperand writes one side of a Concatenate, grouping compound nodes.
func writeOperand(b *strings.Builder, e Expr) bool {
	switch e.(type) {
	case Concatenate, Alternate:
		return writeGroup(b, e)
	}
	return writePattern(b, e)
}

func writeGroup(b *strings.Builder, e Expr) bool {
	b.WriteByte('(')
	if !writePattern(b, e) {
		return false
	}
	b.WriteByte(')')
	return true
}

// atomSpine reports whether c is a right-nested chain of Concatenates whose
// leaves are all Ranges.
func atomSpine(c Concatenate) bool {
	for {
		if _, ok := c.Left.(Range); !ok {
			return false
		}
		switch r := c.Right.(type) {
		case Range:
			return true
		case Concatenate:
			c = r
		default:
			return false
		}
	}
}

func isSyntax(c rune) bool {
	switch c {
	case '.', '|', '(', ')':
		return true
	}
	return false
}

func isEmpty(e Expr) bool {
	_, ok := e.(Empty)
	return ok
}
