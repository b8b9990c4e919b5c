// ==============================================================================================
// FILE: cmd/seed-wasm/main.go
// BUILD: GOOS=js GOARCH=wasm go build -o main.wasm ./cmd/seed-wasm
// ==============================================================================================
// PACKAGE: main
// PURPOSE: Browser bridge exposing the seed interpreter to JavaScript,
//          adapted from the teacher's wasm/wasm_main.go. Where the teacher
//          patched its global Builtins table to redirect "show"/"ask" into a
//          buffer, seed's interp.HostIO interface makes that substitution a
//          constructor argument instead of a runtime patch.
// ==============================================================================================

package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/sirupsen/logrus"

	"github.com/seedscript/seed/internal/interp"
	"github.com/seedscript/seed/internal/lexer"
	"github.com/seedscript/seed/internal/parser"
)

// bufferedHost implements interp.HostIO by capturing show/warn output into
// an in-memory buffer instead of touching the real stdio streams, and
// cannot block on stdin (there is no synchronous input in a browser event
// loop), so ask writes a placeholder note into the buffer and returns an
// empty string — the same tradeoff the teacher's overrideBuiltinsForWeb
// documents.
type bufferedHost struct {
	buf strings.Builder
}

func (h *bufferedHost) Show(s string) { h.buf.WriteString(s + "\n") }
func (h *bufferedHost) Warn(s string) { h.buf.WriteString("warning: " + s + "\n") }
func (h *bufferedHost) Ask(prompt string) (string, error) {
	h.buf.WriteString("[input not supported in the browser demo]\n")
	return "", nil
}

func main() {
	c := make(chan struct{})
	js.Global().Set("runSeed", js.FuncOf(runCode))
	fmt.Println("seed WASM engine loaded.")
	<-c
}

// runCode is the JS -> Go bridge: runSeed(source) -> {logs, error}, where
// "error" is present only when parsing or running failed.
func runCode(this js.Value, p []js.Value) interface{} {
	if len(p) == 0 {
		return map[string]interface{}{"error": []interface{}{"runSeed requires one string argument"}}
	}
	source := p[0].String()

	l := lexer.New(source)
	prog, perr := parser.New(l).ParseProgram()
	if perr != nil {
		return map[string]interface{}{
			"error": []interface{}{fmt.Sprintf("parse error at %d:%d: %s", perr.Line, perr.Column, perr.Message)},
		}
	}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	host := &bufferedHost{}
	ev := interp.New(host, log)
	scope := ev.NewRootScope()

	if err := ev.Run(prog, scope); err != nil {
		return map[string]interface{}{
			"error": []interface{}{"runtime error: " + err.Error()},
			"logs":  host.buf.String(),
		}
	}

	return map[string]interface{}{
		"logs": host.buf.String(),
	}
}
