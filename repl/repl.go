/*
File    : lox-go/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements the interactive read-eval-print loop spec.md
// §4.6/§6 describes: read one line, run it through the full pipeline,
// print diagnostics or side effects, keep going regardless of errors.
// Grounded on the teacher's repl/repl.go (readline.New/rl.Readline/
// rl.SaveHistory loop, fatih/color banner and diagnostics), generalized
// from Go-Mix's single Eval(node)-returns-an-object shape to this
// language's scan -> parse -> resolve -> interpret pipeline, where each
// stage reports its own diagnostics and a bad line never kills the
// session (spec.md §7's "each line is an independent try").
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lox-go/eval"
	"github.com/akashmaji946/lox-go/parser"
	"github.com/akashmaji946/lox-go/resolver"
	"github.com/akashmaji946/lox-go/scanner"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text plus the prompt
// readline displays.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a Repl with the given banner chrome.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBanner writes the startup banner and quick-start hints to w.
func (r *Repl) PrintBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' or press Ctrl-D to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Run starts the main loop over stdin (via readline) writing output and
// diagnostics to w. It returns once the session ends (".exit" or EOF).
func (r *Repl) Run(w io.Writer) error {
	r.PrintBanner(w)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: w})
	if err != nil {
		return err
	}
	defer rl.Close()

	interp := eval.New(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good bye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good bye!\n"))
			return nil
		}
		rl.SaveHistory(line)

		runLine(w, interp, line)
	}
}

// runLine executes one REPL line through the whole pipeline. Every
// diagnostic stage (scan, parse, resolve, runtime) is isolated: a
// failure prints in red and the loop moves on, never aborting the
// session (spec.md §4.6, §7).
func runLine(w io.Writer, interp *eval.Interpreter, line string) {
	toks, scanErrs := scanner.New(line).ScanTokens()
	if len(scanErrs) > 0 {
		for _, e := range scanErrs {
			redColor.Fprintf(w, "%s\n", e)
		}
		return
	}

	p := parser.New(toks)
	stmts, err := p.Parse()
	if err != nil {
		for _, pe := range p.Errors() {
			redColor.Fprintf(w, "%s\n", pe)
		}
		return
	}

	depths, err := resolver.New().Resolve(stmts)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	interp.SetDepths(depths)

	if err := interp.Interpret(stmts); err != nil {
		redColor.Fprintf(w, "%s\n", err)
	}
}
