package regexlib

import (
	"strconv"
	"strings"
)

// The String methods print the textual notation of a tree, e.g.
//
//	Alternate(Concatenate(Range('a', 'a'), Range('b', 'b')), Empty)
//
// internal/notation reads the same syntax back.

func (Empty) String() string { return "Empty" }

func (r Range) String() string {
	return "Range(" + strconv.QuoteRune(r.Lo) + ", " + strconv.QuoteRune(r.Hi) + ")"
}

func (c Concatenate) String() string { return binary("Concatenate", c.Left, c.Right) }

func (a Alternate) String() string { return binary("Alternate", a.Left, a.Right) }

func (r Repeat) String() string {
	var b strings.Builder
	b.WriteString("Repeat(")
	b.WriteString(r.Child.String())
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(r.Min))
	b.WriteString(", ")
	if r.Max == Unbounded {
		b.WriteString("inf")
	} else {
		b.WriteString(strconv.Itoa(r.Max))
	}
	b.WriteString(", ")
	b.WriteString(r.Mode.String())
	b.WriteString(")")
	return b.String()
}

func (m RepeatMode) String() string {
	if m == NonGreedy {
		return "nongreedy"
	}
	return "greedy"
}

func binary(name string, left, right Expr) string {
	return name + "(" + left.String() + ", " + right.String() + ")"
}
