// ==============================================================================================
// FILE: internal/interp/builtins.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: The Builtin surface (spec.md §4.5): a small registry of builtin
//          callables, initially just "ask", in the teacher's
//          object.Builtins []struct{...} shape so adding one is a one-line
//          append.
// ==============================================================================================

package interp

// Builtins returns the program-start builtin registry, bound to ev's host
// I/O collaborator. Extending the builtin surface means appending another
// entry here — spec.md §4.5 calls this "trivially extensible".
func Builtins(ev *Evaluator) []*Builtin {
	return []*Builtin{
		{
			Name:  "ask",
			Arity: 1,
			Fn: func(args []Value) Value {
				prompt := args[0].Stringify()
				line, err := ev.Host.Ask(prompt)
				if err != nil {
					return NewError("stdin read failed")
				}
				return String{Value: line}
			},
		},
	}
}
