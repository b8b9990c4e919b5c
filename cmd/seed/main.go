// ==============================================================================================
// FILE: cmd/seed/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: The seed CLI entry point. A cobra root command: one positional
//          source-file argument (or none, for the REPL), with --debug
//          tracing and an optional --watch re-run mode. Exit codes and
//          stderr formats follow spec.md §6 exactly.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seedscript/seed/internal/hostio"
	"github.com/seedscript/seed/internal/interp"
	"github.com/seedscript/seed/internal/lexer"
	"github.com/seedscript/seed/internal/parser"
	"github.com/seedscript/seed/internal/repl"
)

// Exit codes, spec.md §6: 0 success, 1 parse/runtime error, 2 I/O or usage error.
const (
	exitOK         = 0
	exitScriptFail = 1
	exitUsage      = 2
)

var (
	debug   bool
	watch   bool
	noColor bool
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	log.SetOutput(os.Stderr)

	root := &cobra.Command{
		Use:     "seed [file]",
		Short:   "Run or explore seed programs",
		Version: "0.1.0",
		Long: heredoc.Doc(`
			seed runs programs written in the seed language: an
			indentation-sensitive scripting language with English-keyword
			statements (set, show, repeat, define, try/otherwise).

			Run a file:   seed run path/to/program.seed
			Bare file:    seed path/to/program.seed
			No arguments: start an interactive REPL.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log.SetLevel(logrus.DebugLevel)
			}
			if len(args) == 0 {
				repl.Start(os.Stdin, os.Stdout, log, noColor)
				return nil
			}
			return runPath(args[0], log)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose evaluator tracing on stderr")
	root.PersistentFlags().BoolVar(&watch, "watch", false, "re-run the file whenever it changes on disk")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored REPL output")

	runCmd := &cobra.Command{
		Use:           "run <file>",
		Short:         "Run a seed source file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log.SetLevel(logrus.DebugLevel)
			}
			return runPath(args[0], log)
		},
	}
	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		if ce, ok := err.(*cliError); ok {
			return ce.code
		}
		fmt.Fprintf(os.Stderr, "usage error: %s\n", err)
		return exitUsage
	}
	return exitOK
}

// cliError carries the process exit code a RunE returned alongside its
// error, since cobra only propagates the error itself.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }

func runPath(path string, log *logrus.Logger) error {
	if watch {
		return runWatch(path, log)
	}
	if code := execFile(path, log); code != exitOK {
		return &cliError{code: code, err: fmt.Errorf("seed exited with status %d", code)}
	}
	return nil
}

// execFile reads, lexes, parses, and runs one source file, returning the
// process exit code per spec.md §6.
func execFile(path string, log *logrus.Logger) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage error: %s\n", err)
		return exitUsage
	}

	l := lexer.New(string(data))
	p := parser.New(l)
	program, perr := p.ParseProgram()
	if perr != nil {
		fmt.Fprintf(os.Stderr, "parse error at %d:%d: %s\n", perr.Line, perr.Column, perr.Message)
		return exitScriptFail
	}

	host := hostio.New(os.Stdout, os.Stderr, os.Stdin)
	ev := interp.New(host, log)
	scope := ev.NewRootScope()
	if err := ev.Run(program, scope); err != nil {
		fmt.Fprintf(os.Stderr, "runtime error: %s\n", err.Error())
		return exitScriptFail
	}
	return exitOK
}

// runWatch re-runs path on every filesystem write event, printing each run's
// result but never exiting non-zero on a single failed run — matching the
// expectation that a --watch session stays alive across edits. It exits
// non-zero only if the watcher itself cannot be established.
func runWatch(path string, log *logrus.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return &cliError{code: exitUsage, err: err}
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return &cliError{code: exitUsage, err: err}
	}

	fmt.Fprintf(os.Stderr, "watching %s (ctrl-c to stop)\n", path)
	execFile(path, log)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				execFile(path, log)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(watchErr).Debug("watch error")
		}
	}
}
