// ==============================================================================================
// FILE: internal/repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop. Connects a user input stream to the
//          lexer -> parser -> evaluator pipeline and keeps a persistent
//          session scope, adapted from the teacher's repl/repl.go banner and
//          dot-command interface.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/seedscript/seed/internal/hostio"
	"github.com/seedscript/seed/internal/interp"
	"github.com/seedscript/seed/internal/lexer"
	"github.com/seedscript/seed/internal/parser"
)

const (
	prompt       = "seed> "
	contPrompt   = "  ... "
	logo         = `
┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃  ___  ___  ___  ____                               ┃
┃ / __|/ _ \/ _ \|  _ \                               ┃
┃ \__ \  __/  __/| | | |                              ┃
┃ |___/\___|\___||_| |_|                              ┃
┃                                                      ┃
┃ the seed language REPL                               ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
`
)

// ANSI color codes for terminal output, carried from the teacher's REPL.
// Vars, not consts, so Start can blank them out under --no-color.
var (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	gray   = "\033[37m"
	bold   = "\033[1m"
)

// Start launches the REPL. Since seed blocks are indentation-delimited
// across several lines, a single "command" is everything typed up to a
// blank line, then parsed and run as one program against the persistent
// session scope. noColor strips the ANSI codes used for the banner and
// error highlighting.
func Start(in io.Reader, out io.Writer, log *logrus.Logger, noColor bool) {
	if noColor {
		reset, red, green, yellow, gray, bold = "", "", "", "", "", ""
	}
	scanner := bufio.NewScanner(in)
	host := hostio.New(out, out, in)
	ev := interp.New(host, log)
	scope := ev.NewRootScope()
	debugMode := false

	fmt.Fprint(out, logo)
	printHelp(out)

	for {
		fmt.Fprint(out, prompt)
		var buf strings.Builder
		for {
			if !scanner.Scan() {
				return
			}
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				break
			}
			if buf.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ".") {
				switch strings.TrimSpace(line) {
				case ".exit":
					fmt.Fprintln(out, yellow+"bye"+reset)
					return
				case ".clear":
					scope = ev.NewRootScope()
					fmt.Fprintln(out, green+"session reset"+reset)
				case ".debug":
					debugMode = !debugMode
					setDebug(log, debugMode)
					fmt.Fprintf(out, gray+"debug mode: %v\n"+reset, debugMode)
				case ".help":
					printHelp(out)
				default:
					fmt.Fprintf(out, red+"unknown command: %s\n"+reset, line)
				}
				buf.Reset()
				continue
			}
			buf.WriteString(line)
			buf.WriteByte('\n')
			fmt.Fprint(out, contPrompt)
		}
		src := buf.String()
		if strings.TrimSpace(src) == "" {
			continue
		}
		run(out, ev, scope, src)
	}
}

func run(out io.Writer, ev *interp.Evaluator, scope *interp.Scope, src string) {
	l := lexer.New(src)
	p := parser.New(l)
	program, perr := p.ParseProgram()
	if perr != nil {
		fmt.Fprintf(out, red+bold+"parse error at %d:%d: %s\n"+reset, perr.Line, perr.Column, perr.Message)
		return
	}
	if err := ev.Run(program, scope); err != nil {
		fmt.Fprintf(out, red+bold+"runtime error: %s\n"+reset, err.Error())
	}
}

func setDebug(log *logrus.Logger, on bool) {
	if on {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.PanicLevel)
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, gray+"Commands:")
	fmt.Fprintln(out, "  .exit   quit the REPL")
	fmt.Fprintln(out, "  .clear  reset the session scope")
	fmt.Fprintln(out, "  .debug  toggle verbose evaluator tracing")
	fmt.Fprintln(out, "  .help   show this message")
	fmt.Fprintln(out, "Enter a blank line to run what you've typed."+reset)
	fmt.Fprintln(out)
}
