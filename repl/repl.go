/*
File    : parselatex/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop for
parselatex. Each line the user types is parsed as LaTeX math instead of
Go-Mix source, and the resulting AST is echoed instead of an evaluated
value (evaluation is out of scope for this module). The REPL shape itself
— a readline-backed prompt with a colored banner, command history, and
panic-recovering line execution — is unchanged from the teacher's
repl/repl.go.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/artcompiler/parselatex/diag"
	"github.com/artcompiler/parselatex/environment"
	"github.com/artcompiler/parselatex/parser"
	"github.com/artcompiler/parselatex/printer"
)

// Color definitions for REPL output, unchanged in role from the teacher's
// palette: blue for separators, green for the banner, yellow for
// successful results, red for diagnostics, cyan for instructions.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the configuration and parse settings for one interactive
// session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	// Opts governs every line's parse (separators, strict mode, ...).
	Opts parser.Options
	// Raw selects go-spew's field dump over the summarized tree printer.
	Raw bool
}

// NewRepl creates a Repl with the given banner/version/author/line/
// license/prompt and default parse Options.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to parselatex!")
	cyanColor.Fprintf(writer, "%s\n", "Type a LaTeX math expression and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main read-parse-print loop until the user exits or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New(false)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, env)
	}
}

// executeWithRecovery parses one line and prints either its AST or the
// diagnostic that aborted parsing. Parse itself never panics past its own
// boundary (a *diag.Error comes back as an ordinary error), but the
// recover guards against an internal-error panic that escaped anyway.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	node, err := parser.Parse(r.Opts, line, env)
	if err != nil {
		if de, ok := err.(*diag.Error); ok {
			redColor.Fprintf(writer, "%s\n", de.Error())
		} else {
			redColor.Fprintf(writer, "%s\n", err.Error())
		}
		return
	}

	if r.Raw {
		yellowColor.Fprintf(writer, "%s", printer.Raw(node))
		return
	}
	yellowColor.Fprintf(writer, "%s", printer.Print(node))
}
