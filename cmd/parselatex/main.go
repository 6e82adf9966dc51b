/*
File    : parselatex/cmd/parselatex/main.go

The CLI entry point. Teacher's main/main.go dispatches "repl vs. file vs.
server" by hand-inspecting os.Args; here the same three-way shape (parse
one expression, run the REPL, inspect with a raw dump) is expressed as
github.com/spf13/cobra subcommands instead, per SPEC_FULL.md §A.3.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/artcompiler/parselatex/diag"
	"github.com/artcompiler/parselatex/environment"
	"github.com/artcompiler/parselatex/model"
	"github.com/artcompiler/parselatex/parser"
	"github.com/artcompiler/parselatex/printer"
	"github.com/artcompiler/parselatex/repl"
)

// VERSION, AUTHOR, LICENSE mirror the teacher's main/main.go constants.
const (
	VERSION = "v0.1.0"
	AUTHOR  = "parselatex contributors"
	LICENSE = "MIT"
)

// BANNER is the ASCII art logo shown at REPL startup.
const BANNER = `
  ▄▄▄▄▄  ▄▄▄    ▄▄▄  ▄▄▄ ▄▄▄▄▄▄  ▄▄▄▄▄▄▄▄▄   ▄▄▄▄▄▄
  ██▀▀██ ██▀█  ▄█▀▀ ██▀▀ ██▀▀▀▀  ██▀▀ ██ ▀▀  ██▀▀▀▀▀
  ██▄▄██ ██ ▀▄██▀   ▀███ ████    ██   ██     ▀███▄▄▄
  ██▀▀▀  ██  ▀██    ▀▀▀█ ██▀▀    ██   ██        ▀▀▀█
  ██     ██   ▀█   ▀▄▄█▀ ██▄▄▄▄  ██   ██    ▄▄▄▄▄▄█▀
`

const LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

var (
	cfgFile          string
	allowThousands   bool
	thousandsSep     string
	decimalSep       string
	decimalPlaces    int
	strictMode       bool
	compareGrouping  bool
	keepTextWhite    bool
	ignoreTextOption bool
	chemistry        bool
	rawOutput        bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "parselatex",
		Short: "Parse LaTeX math notation into an abstract syntax tree",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML file of parser.Options to load before applying flags")
	root.PersistentFlags().BoolVar(&allowThousands, "allow-thousands", false, "allow a thousands separator in numeric literals")
	root.PersistentFlags().StringVar(&thousandsSep, "thousands-sep", "", "thousands separator character (default \",\")")
	root.PersistentFlags().StringVar(&decimalSep, "decimal-sep", "", "decimal separator character (default \".\")")
	root.PersistentFlags().IntVar(&decimalPlaces, "decimal-places", 0, "round NUM literals to this many decimal places")
	root.PersistentFlags().BoolVar(&strictMode, "strict", false, "keep numeric literals as typed instead of canonicalizing them (non-canonical literals are not rejected)")
	root.PersistentFlags().BoolVar(&compareGrouping, "compare-grouping", false, "disable flattening of + chains")
	root.PersistentFlags().BoolVar(&keepTextWhite, "keep-text-whitespace", false, "preserve whitespace inside \\text{...}")
	root.PersistentFlags().BoolVar(&ignoreTextOption, "ignore-text", false, "treat \\text{...} as whitespace")
	root.PersistentFlags().BoolVar(&chemistry, "chemistry", false, "pre-populate the environment with the periodic table")

	root.AddCommand(newParseCmd(), newReplCmd(), newInspectCmd())
	return root
}

// loadOptions builds parser.Options from --config (if given), then
// overlays any flags the user actually set, so a config file supplies
// defaults a flag can still override (SPEC_FULL.md §A.2).
func loadOptions(cmd *cobra.Command) (parser.Options, error) {
	opts := parser.DefaultOptions()

	if cfgFile != "" {
		data, err := os.ReadFile(cfgFile)
		if err != nil {
			return opts, fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parsing config %s: %w", cfgFile, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("allow-thousands") {
		opts.AllowThousandsSeparator = allowThousands
	}
	if flags.Changed("thousands-sep") {
		opts.SetThousandsSeparator = thousandsSep
	}
	if flags.Changed("decimal-sep") {
		opts.SetDecimalSeparator = decimalSep
	}
	if flags.Changed("decimal-places") {
		opts.DecimalPlaces = decimalPlaces
	}
	if flags.Changed("strict") {
		opts.Strict = strictMode
	}
	if flags.Changed("compare-grouping") {
		opts.CompareGrouping = compareGrouping
	}
	if flags.Changed("keep-text-whitespace") {
		opts.KeepTextWhitespace = keepTextWhite
	}
	if flags.Changed("ignore-text") {
		opts.IgnoreText = ignoreTextOption
	}
	return opts, nil
}

func newEnvironment() *environment.Environment {
	return environment.New(chemistry)
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <expr>",
		Short: "Parse one LaTeX expression and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			node, err := parser.Parse(opts, args[0], newEnvironment())
			if err != nil {
				return diagError(err)
			}
			fmt.Print(printer.Print(node))
			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-parse-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, "parselatex >>> ")
			r.Opts = opts
			r.Raw = rawOutput
			r.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <expr>",
		Short: "Parse one expression and dump its AST with intern-pool statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			m, err := model.CreateInEnv(opts, args[0], newEnvironment())
			if err != nil {
				return diagError(err)
			}
			id := m.Intern(m.Node)
			cyanColor.Printf("session %s, pool size %d, root id %d\n", m.SessionID, m.PoolSize(), id)
			if rawOutput {
				yellowColor.Print(printer.Raw(m.Node))
			} else {
				yellowColor.Print(printer.Print(m.Node))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&rawOutput, "raw", false, "dump with go-spew instead of the summarized tree printer")
	return cmd
}

func diagError(err error) error {
	if de, ok := err.(*diag.Error); ok {
		return de
	}
	return err
}
