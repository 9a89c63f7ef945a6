// Package render turns pattern trees into serialisable documents and
// line-oriented text.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"regexast/regexlib"
)

// Node is the document form of one tree node.
type Node struct {
	Kind     string  `yaml:"kind" json:"kind"`
	Lo       string  `yaml:"lo,omitempty" json:"lo,omitempty"`
	Hi       string  `yaml:"hi,omitempty" json:"hi,omitempty"`
	Min      *int    `yaml:"min,omitempty" json:"min,omitempty"`
	Max      string  `yaml:"max,omitempty" json:"max,omitempty"`
	Mode     string  `yaml:"mode,omitempty" json:"mode,omitempty"`
	Children []*Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// Build converts e into its document form.
func Build(e regexlib.Expr) *Node {
	switch n := e.(type) {
	case regexlib.Empty:
		return &Node{Kind: "empty"}
	case regexlib.Range:
		return &Node{Kind: "range", Lo: string(n.Lo), Hi: string(n.Hi)}
	case regexlib.Concatenate:
		return &Node{Kind: "concatenate", Children: []*Node{Build(n.Left), Build(n.Right)}}
	case regexlib.Alternate:
		return &Node{Kind: "alternate", Children: []*Node{Build(n.Left), Build(n.Right)}}
	case regexlib.Repeat:
		count := n.Min
		limit := "inf"
		if n.Max != regexlib.Unbounded {
			limit = strconv.Itoa(n.Max)
		}
		return &Node{
			Kind:     "repeat",
			Min:      &count,
			Max:      limit,
			Mode:     n.Mode.String(),
			Children: []*Node{Build(n.Child)},
		}
	}
	return &Node{Kind: fmt.Sprintf("unknown(%T)", e)}
}

// YAML encodes the document form of e.
func YAML(e regexlib.Expr) ([]byte, error) {
	out, err := yaml.Marshal(Build(e))
	if err != nil {
		return nil, fmt.Errorf("render: yaml: %w", err)
	}
	return out, nil
}

// JSON encodes the document form of e, indented.
func JSON(e regexlib.Expr) ([]byte, error) {
	out, err := json.MarshalIndent(Build(e), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: json: %w", err)
	}
	return append(out, '\n'), nil
}

// Indent prints one node per line, children indented by two spaces:
//
//	alternate
//	  range 'a'
//	  empty
func Indent(e regexlib.Expr) string {
	var b strings.Builder
	indent(&b, e, 0)
	return b.String()
}

func indent(b *strings.Builder, e regexlib.Expr, level int) {
	b.WriteString(strings.Repeat("  ", level))
	var children []regexlib.Expr
	switch n := e.(type) {
	case regexlib.Empty:
		b.WriteString("empty")
	case regexlib.Range:
		b.WriteString("range ")
		if n == regexlib.AnyChar() {
			b.WriteString("any")
		} else if n.Lo == n.Hi {
			b.WriteString(strconv.QuoteRune(n.Lo))
		} else {
			b.WriteString(strconv.QuoteRune(n.Lo) + "-" + strconv.QuoteRune(n.Hi))
		}
	case regexlib.Concatenate:
		b.WriteString("concatenate")
		children = []regexlib.Expr{n.Left, n.Right}
	case regexlib.Alternate:
		b.WriteString("alternate")
		children = []regexlib.Expr{n.Left, n.Right}
	case regexlib.Repeat:
		limit := "inf"
		if n.Max != regexlib.Unbounded {
			limit = strconv.Itoa(n.Max)
		}
		fmt.Fprintf(b, "repeat %d..%s %s", n.Min, limit, n.Mode)
		children = []regexlib.Expr{n.Child}
	default:
		fmt.Fprintf(b, "unknown %T", e)
	}
	b.WriteByte('\n')
	for _, c := range children {
		indent(b, c, level+1)
	}
}
