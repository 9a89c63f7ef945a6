package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	"regexast/internal/render"
	"regexast/regexlib"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse PATTERN",
		Short: "Print the syntax tree of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.parser().Parse(args[0])
			if err != nil {
				fmt.Fprint(a.stderr, describe(err))
				return errFailed
			}
			a.log.Printf("parsed %q: depth %d", args[0], regexlib.Depth(e))
			return writeTree(a.stdout, e, a.cfg.Output.Format)
		},
	}
}

// writeTree prints e in one of the config.Formats.
func writeTree(w io.Writer, e regexlib.Expr, format string) error {
	var out []byte
	switch format {
	case "tree":
		out = []byte(render.Indent(e))
	case "notation":
		out = []byte(e.String() + "\n")
	case "pattern":
		text, ok := regexlib.Pattern(e)
		if !ok {
			return fmt.Errorf("%v cannot be written as a pattern", e)
		}
		out = []byte(text + "\n")
	case "dot":
		return regexlib.ExportDOT(w, e)
	case "yaml":
		var err error
		if out, err = render.YAML(e); err != nil {
			return err
		}
	case "json":
		var err error
		if out, err = render.JSON(e); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	_, err := w.Write(out)
	return err
}

// describe formats a parse error. Syntax errors get the pattern echoed with
// a caret under the offending character:
//
//	error: unclosed group at offset 1
//	  a(b
//	   ^
func describe(err error) string {
	var se *regexlib.SyntaxError
	if !errors.As(err, &se) {
		return "error: " + err.Error() + "\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "error: %v at offset %d\n", se.Unwrap(), se.Pos)
	fmt.Fprintf(&b, "  %s\n", se.Pattern)
	fmt.Fprintf(&b, "  %s^\n", strings.Repeat(" ", uniseg.StringWidth(se.Pattern[:se.Pos])))
	return b.String()
}
