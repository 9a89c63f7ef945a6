package regexlib

import (
	"fmt"
	"io"
	"strconv"
)

// ExportDOT writes a Graphviz digraph of the tree rooted at e to w.
func ExportDOT(w io.Writer, e Expr) error {
	d := &dotWriter{w: w}
	d.printf("digraph AST {\n")
	d.printf("    node [shape=box, fontname=monospace];\n")
	d.node(e)
	d.printf("}\n")
	return d.err
}

type dotWriter struct {
	w    io.Writer
	next int
	err  error
}

func (d *dotWriter) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

// node emits e and its subtree and returns the id it was given.
func (d *dotWriter) node(e Expr) int {
	id := d.next
	d.next++

	var children []Expr
	var label string
	switch n := e.(type) {
	case Empty:
		label = "ε"
	case Range:
		switch {
		case n == AnyChar():
			label = "any"
		case n.Lo == n.Hi:
			label = strconv.QuoteRune(n.Lo)
		default:
			label = strconv.QuoteRune(n.Lo) + "-" + strconv.QuoteRune(n.Hi)
		}
	case Concatenate:
		label = "concat"
		children = []Expr{n.Left, n.Right}
	case Alternate:
		label = "alt"
		children = []Expr{n.Left, n.Right}
	case Repeat:
		hi := "∞"
		if n.Max != Unbounded {
			hi = strconv.Itoa(n.Max)
		}
		label = fmt.Sprintf("repeat{%d,%s} %s", n.Min, hi, n.Mode)
		children = []Expr{n.Child}
	default:
		label = "?"
	}
	d.printf("    n%d [label=%s];\n", id, strconv.Quote(label))

	for _, c := range children {
		child := d.node(c)
		d.printf("    n%d -> n%d;\n", id, child)
	}
	return id
}
