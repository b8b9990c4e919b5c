// ==============================================================================================
// FILE: internal/repl/repl_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for basic REPL session behavior: blank-line-triggered
//          evaluation, session scope persistence across commands, and the
//          dot-commands.
// ==============================================================================================

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func runSession(input string) string {
	in := strings.NewReader(input)
	var out bytes.Buffer
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	Start(in, &out, log, true)
	return out.String()
}

func TestREPL_EvaluatesOnBlankLine(t *testing.T) {
	output := runSession("show 1 + 2\n\n.exit\n")
	if !strings.Contains(output, "3") {
		t.Errorf("expected output to contain \"3\", got:\n%s", output)
	}
}

func TestREPL_SessionScopePersistsAcrossCommands(t *testing.T) {
	input := "set x to 50\n\nshow x + 10\n\n.exit\n"
	output := runSession(input)
	if !strings.Contains(output, "60") {
		t.Errorf("expected persisted binding to produce 60, got:\n%s", output)
	}
}

func TestREPL_ClearResetsSessionScope(t *testing.T) {
	input := "set x to 1\n\n.clear\nshow x\n\n.exit\n"
	output := runSession(input)
	if !strings.Contains(output, "undefined variable") {
		t.Errorf("expected .clear to drop prior bindings, got:\n%s", output)
	}
}

func TestREPL_UnknownDotCommandReportsError(t *testing.T) {
	output := runSession(".bogus\n.exit\n")
	if !strings.Contains(output, "unknown command") {
		t.Errorf("expected unknown-command message, got:\n%s", output)
	}
}
