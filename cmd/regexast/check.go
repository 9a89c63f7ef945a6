package main

import (
	"fmt"
	"reflect"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"regexast/internal/notation"
	"regexast/internal/render"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check PATTERN EXPECTED",
		Short: "Compare the tree of a pattern with a tree in notation",
		Example: `  regexast check 'ab|c' \
    "Alternate(Concatenate(Range('a', 'a'), Range('b', 'b')), Range('c', 'c'))"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := notation.Parse(args[1])
			if err != nil {
				return err
			}
			got, err := a.parser().Parse(args[0])
			if err != nil {
				fmt.Fprint(a.stderr, describe(err))
				return errFailed
			}
			if reflect.DeepEqual(want, got) {
				fmt.Fprintln(a.stdout, "ok")
				return nil
			}

			diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(render.Indent(want)),
				B:        difflib.SplitLines(render.Indent(got)),
				FromFile: "want",
				ToFile:   "got",
				Context:  2,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stderr, "mismatch for %q:\n%s", args[0], diff)
			return errFailed
		},
	}
}
