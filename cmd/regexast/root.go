package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"regexast/internal/config"
	"regexast/regexlib"
)

// errFailed is returned once the failure has already been reported on
// stderr; main only turns it into the exit status.
var errFailed = errors.New("failed")

type app struct {
	cfgFile string
	verbose bool
	format  string

	cfg    *config.Config
	log    *log.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "regexast",
		Short: "Parse regular-expression patterns into syntax trees",
		Long: `regexast parses patterns written in a small regex dialect into
abstract syntax trees and prints them.

Syntax: literal characters, '.' (any character), '|' (alternation)
and '(' ')' (grouping). Everything else is a literal.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", fmt.Sprintf("output format %v", config.Formats))

	root.AddCommand(a.parseCmd(), a.checkCmd(), a.batchCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log = log.New(io.Discard, "regexast: ", 0)
	if a.verbose {
		a.log.SetOutput(a.stderr)
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Output.Format = a.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.log.Printf("config: max_depth=%d format=%s workers=%d",
		cfg.Parse.MaxDepth, cfg.Output.Format, cfg.Batch.Workers)
	return nil
}

func (a *app) parser() *regexlib.Parser {
	return &regexlib.Parser{MaxDepth: a.cfg.Parse.MaxDepth}
}
