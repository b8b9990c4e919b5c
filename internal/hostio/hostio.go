// ==============================================================================================
// FILE: internal/hostio/hostio.go
// ==============================================================================================
// PACKAGE: hostio
// PURPOSE: The host I/O collaborator spec.md §1/§6 places out of scope for
//          the core: show, warn, ask. A thin stdio layer the evaluator
//          reaches through interp.HostIO, kept separate so it can be
//          substituted in tests (the REPL's web/wasm sibling would swap this
//          for a buffered writer the way the teacher's wasm_main.go does).
// ==============================================================================================

package hostio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Host is the default stdio-backed implementation of interp.HostIO.
type Host struct {
	Out    io.Writer
	ErrOut io.Writer
	In     *bufio.Reader
}

// New builds a Host over the given streams.
func New(out, errOut io.Writer, in io.Reader) *Host {
	return &Host{Out: out, ErrOut: errOut, In: bufio.NewReader(in)}
}

// Show writes s followed by a newline to stdout (spec.md §6).
func (h *Host) Show(s string) {
	fmt.Fprintln(h.Out, s)
}

// Warn writes "warning: " then s then a newline to stderr (spec.md §6).
func (h *Host) Warn(s string) {
	fmt.Fprintln(h.ErrOut, "warning: "+s)
}

// Ask writes prompt (no newline) to stdout, flushes implicitly (Fprint
// issues a single unbuffered write), reads one line from stdin, and returns
// it with trailing CR/LF trimmed (spec.md §6). A read failure is reported to
// the caller, which renders it as the Error value "stdin read failed".
func (h *Host) Ask(prompt string) (string, error) {
	fmt.Fprint(h.Out, prompt)
	line, err := h.In.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
