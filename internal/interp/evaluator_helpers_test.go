// ==============================================================================================
// FILE: internal/interp/evaluator_helpers_test.go
// ==============================================================================================
// PURPOSE: Shared test scaffolding: a recording HostIO fake and a
//          run-source-to-completion helper used by the unit, integration,
//          and sanity suites in this package.
// ==============================================================================================

package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedscript/seed/internal/lexer"
	"github.com/seedscript/seed/internal/parser"
)

// fakeHost records Show/Warn output and serves canned answers to Ask, in
// order, so tests can script a conversation without real stdio.
type fakeHost struct {
	shown   []string
	warned  []string
	answers []string
}

func (h *fakeHost) Show(s string) { h.shown = append(h.shown, s) }
func (h *fakeHost) Warn(s string) { h.warned = append(h.warned, s) }
func (h *fakeHost) Ask(prompt string) (string, error) {
	if len(h.answers) == 0 {
		return "", nil
	}
	a := h.answers[0]
	h.answers = h.answers[1:]
	return a, nil
}

// run parses and executes src against a fresh root scope, failing the test
// on a parse error. It returns the final scope (for asserting bindings) and
// the runtime error (if any); Show/Warn output is recorded on host.
func run(t *testing.T, src string, host *fakeHost) (*Scope, error) {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog, perr := p.ParseProgram()
	require.Nil(t, perr, "unexpected parse error: %v", perr)

	ev := New(host, nil)
	scope := ev.NewRootScope()
	err := ev.Run(prog, scope)
	return scope, err
}
