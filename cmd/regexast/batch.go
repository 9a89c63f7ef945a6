package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"regexast/regexlib"
)

// batchItem is one pattern read from a pattern file.
type batchItem struct {
	file    string
	line    int
	pattern string

	tree regexlib.Expr
	err  error
}

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch GLOB...",
		Short: "Parse every line of the matching pattern files",
		Long: `batch expands each GLOB (doublestar syntax, e.g. "patterns/**/*.txt"),
reads one pattern per non-blank line and prints one result per line:

  FILE:LINE: TREE           on success, TREE in notation
  FILE:LINE: error: ...     on a syntax error

The exit status is 1 if any pattern failed to parse.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expand(args)
			if err != nil {
				return err
			}
			var items []*batchItem
			for _, f := range files {
				read, err := readPatterns(f)
				if err != nil {
					return err
				}
				items = append(items, read...)
			}
			a.log.Printf("batch: %d patterns from %d files, %d workers", len(items), len(files), a.cfg.Batch.Workers)

			a.parseAll(items)

			failed := 0
			for _, it := range items {
				if it.err != nil {
					failed++
					fmt.Fprintf(a.stdout, "%s:%d: error: %v\n", it.file, it.line, it.err)
					continue
				}
				fmt.Fprintf(a.stdout, "%s:%d: %v\n", it.file, it.line, it.tree)
			}
			if failed > 0 {
				fmt.Fprintf(a.stderr, "%d of %d patterns failed\n", failed, len(items))
				return errFailed
			}
			return nil
		},
	}
}

// parseAll fills in tree or err for every item, using at most
// cfg.Batch.Workers goroutines. Results stay in input order.
func (a *app) parseAll(items []*batchItem) {
	p := a.parser()
	var g errgroup.Group
	g.SetLimit(a.cfg.Batch.Workers)
	for _, it := range items {
		it := it
		g.Go(func() error {
			it.tree, it.err = p.Parse(it.pattern)
			return nil
		})
	}
	_ = g.Wait()
}

// expand resolves globs to a duplicate-free file list, in glob order.
func expand(globs []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, glob := range globs {
		if !doublestar.ValidatePathPattern(glob) {
			return nil, fmt.Errorf("invalid glob %q", glob)
		}
		matches, err := doublestar.FilepathGlob(glob, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", glob, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", glob)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

// maxPatternLine bounds one line of a pattern file. Long alternation chains
// easily pass bufio's 64 KiB default.
const maxPatternLine = 16 << 20

func readPatterns(path string) ([]*batchItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var items []*batchItem
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxPatternLine)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, &batchItem{file: path, line: n, pattern: line})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return items, nil
}
