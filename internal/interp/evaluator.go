// ==============================================================================================
// FILE: internal/interp/evaluator.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: The tree-walking Evaluator (spec.md §4.4): a pair of mutually
//          recursive walks, EvalExpr (produces a Value) and ExecStmt (drives
//          side effects and threads an ExecState through blocks).
// ==============================================================================================

package interp

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/seedscript/seed/internal/ast"
)

// HostIO is the three-function host I/O collaborator spec.md §6 places out
// of scope for the core. internal/hostio.Host implements it; the evaluator
// only depends on this interface, never on the hostio package itself.
type HostIO interface {
	Show(s string)
	Warn(s string)
	Ask(prompt string) (string, error)
}

// ExecState is the carrier threaded through block execution (spec.md §4.4,
// §9 "Exception-like control flow"). A block terminates early as soon as any
// of Returned, Broke, Cont, or Failed is set. Failed/FailMessage model the
// second runtime-error channel from spec.md §7 (a statement-level halt with
// a message, as opposed to an Error value in expression position).
type ExecState struct {
	Returned    bool
	ReturnValue Value
	Broke       bool
	Cont        bool
	Failed      bool
	FailMessage string
}

// Evaluator owns the host I/O collaborator and an internal trace logger.
// Host I/O is the only side-effecting dependency; everything else is pure
// over the Scope passed in.
type Evaluator struct {
	Host HostIO
	Log  *logrus.Logger
}

// New creates an Evaluator. A nil log defaults to a new logger set to the
// Panic level, so tracing is opt-in (wired to --debug by
// the CLI) without requiring every caller to construct one.
func New(host HostIO, log *logrus.Logger) *Evaluator {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &Evaluator{Host: host, Log: log}
}

// NewRootScope builds the program's root scope and registers the builtin
// surface (spec.md §4.5: "ask" registered as a locked binding, arity 1).
func (e *Evaluator) NewRootScope() *Scope {
	root := NewScope(nil)
	for _, b := range Builtins(e) {
		root.DefineLocal(b.Name, b, true)
	}
	return root
}

// Run executes a whole program against scope, returning the runtime error
// (if any) exactly as spec.md §6's "runtime error: <message>" contract
// expects the CLI to report it.
func (e *Evaluator) Run(prog *ast.Program, scope *Scope) error {
	state := &ExecState{}
	e.ExecBlock(prog.Root, scope, state)
	if state.Failed {
		return errors.New(state.FailMessage)
	}
	return nil
}

// ExecBlock runs every statement in block against scope in order, stopping
// as soon as state signals unwinding or failure.
func (e *Evaluator) ExecBlock(block *ast.Block, scope *Scope, state *ExecState) {
	for _, stmt := range block.Statements {
		e.ExecStmt(stmt, scope, state)
		if state.Returned || state.Broke || state.Cont || state.Failed {
			return
		}
	}
}

func (e *Evaluator) fail(state *ExecState, msg string) {
	state.Failed = true
	state.FailMessage = msg
}

// ------------------------------------------------------------------------------------------
// STATEMENTS
// ------------------------------------------------------------------------------------------

func (e *Evaluator) ExecStmt(stmt ast.Stmt, scope *Scope, state *ExecState) {
	switch s := stmt.(type) {
	case *ast.ShowStmt:
		v := e.EvalExpr(s.Value, scope)
		if IsError(v) {
			e.fail(state, v.(Error).Message)
			return
		}
		e.Host.Show(v.Stringify())

	case *ast.WarnStmt:
		v := e.EvalExpr(s.Value, scope)
		if IsError(v) {
			e.fail(state, v.(Error).Message)
			return
		}
		e.Host.Warn(v.Stringify())

	case *ast.SetStmt:
		v := e.EvalExpr(s.Value, scope)
		if IsError(v) {
			e.fail(state, v.(Error).Message)
			return
		}
		if ok, msg := scope.Set(s.Name.Literal, v, false); !ok {
			e.fail(state, msg)
		}

	case *ast.LockStmt:
		v := e.EvalExpr(s.Value, scope)
		if IsError(v) {
			e.fail(state, v.(Error).Message)
			return
		}
		if ok, msg := scope.Set(s.Name.Literal, v, true); !ok {
			e.fail(state, msg)
		}

	case *ast.IfStmt:
		e.execIf(s, scope, state)

	case *ast.LoopForeverStmt:
		e.execLoopForever(s, scope, state)

	case *ast.RepeatStmt:
		e.execRepeat(s, scope, state)

	case *ast.DefineStmt:
		e.execDefine(s, scope)

	case *ast.ReturnStmt:
		if s.Value == nil {
			state.ReturnValue = Null{}
		} else {
			v := e.EvalExpr(s.Value, scope)
			if IsError(v) {
				e.fail(state, v.(Error).Message)
				return
			}
			state.ReturnValue = v
		}
		state.Returned = true

	case *ast.BreakStmt:
		state.Broke = true

	case *ast.ContinueStmt:
		state.Cont = true

	case *ast.ExprStmt:
		v := e.EvalExpr(s.Expr, scope)
		if IsError(v) {
			e.fail(state, v.(Error).Message)
		}

	case *ast.TryStmt:
		e.execTry(s, scope, state)

	default:
		e.fail(state, "unknown statement node")
	}
}

func (e *Evaluator) execIf(s *ast.IfStmt, scope *Scope, state *ExecState) {
	cond := e.EvalExpr(s.Cond, scope)
	if IsError(cond) {
		e.fail(state, cond.(Error).Message)
		return
	}
	if Truthy(cond) {
		e.ExecBlock(s.Then, scope, state)
	} else if s.Else != nil {
		e.ExecBlock(s.Else, scope, state)
	}
}

func (e *Evaluator) execLoopForever(s *ast.LoopForeverStmt, scope *Scope, state *ExecState) {
	for {
		e.ExecBlock(s.Body, scope, state)
		if state.Failed || state.Returned {
			return
		}
		if state.Broke {
			state.Broke = false
			return
		}
		if state.Cont {
			state.Cont = false
		}
	}
}

func (e *Evaluator) execRepeat(s *ast.RepeatStmt, scope *Scope, state *ExecState) {
	from := e.EvalExpr(s.From, scope)
	if IsError(from) {
		e.fail(state, from.(Error).Message)
		return
	}
	to := e.EvalExpr(s.To, scope)
	if IsError(to) {
		e.fail(state, to.(Error).Message)
		return
	}
	fromInt, ok1 := from.(Int)
	toInt, ok2 := to.(Int)
	if !ok1 || !ok2 {
		e.fail(state, "repeat bounds must be Int")
		return
	}
	for i := fromInt.Value; i <= toInt.Value; i++ {
		scope.DefineLocal(s.Var.Literal, Int{Value: i}, false)
		e.ExecBlock(s.Body, scope, state)
		if state.Failed || state.Returned {
			return
		}
		if state.Broke {
			state.Broke = false
			return
		}
		if state.Cont {
			state.Cont = false
		}
	}
}

func (e *Evaluator) execDefine(s *ast.DefineStmt, scope *Scope) {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Literal
	}
	fn := &Function{Name: s.Name.Literal, Params: params, Body: s.Body, Closure: scope}
	scope.DefineLocal(s.Name.Literal, fn, true)
	e.Log.WithField("function", fn.Name).Debug("defined function")
}

// execTry implements spec.md §4.4's Try(body, otherwise): the body runs
// against a scratch ExecState; a failure there runs otherwise (if present)
// against the *same* scope (side effects of the failed body are not rolled
// back, per spec.md §9); the outer state reflects whichever branch ran.
func (e *Evaluator) execTry(s *ast.TryStmt, scope *Scope, state *ExecState) {
	inner := &ExecState{}
	e.ExecBlock(s.Body, scope, inner)
	if inner.Failed {
		e.Log.WithField("error", inner.FailMessage).Debug("try body failed, running otherwise")
		if s.Otherwise != nil {
			e.ExecBlock(s.Otherwise, scope, state)
		}
		return
	}
	state.Returned = inner.Returned
	state.ReturnValue = inner.ReturnValue
	state.Broke = inner.Broke
	state.Cont = inner.Cont
}

// ------------------------------------------------------------------------------------------
// EXPRESSIONS
// ------------------------------------------------------------------------------------------

func (e *Evaluator) EvalExpr(expr ast.Expr, scope *Scope) Value {
	switch node := expr.(type) {
	case *ast.IntLiteral:
		return Int{Value: node.Value}
	case *ast.StringLiteral:
		return String{Value: node.Value}
	case *ast.Ident:
		return scope.Get(node.Name)
	case *ast.Group:
		return e.EvalExpr(node.Inner, scope)
	case *ast.Unary:
		return e.evalUnary(node, scope)
	case *ast.Binary:
		return e.evalBinary(node, scope)
	case *ast.Conditional:
		return e.evalConditional(node, scope)
	case *ast.Call:
		return e.evalCall(node, scope)
	default:
		return NewError("unknown expression node")
	}
}

func (e *Evaluator) evalUnary(node *ast.Unary, scope *Scope) Value {
	if node.Op == "not" {
		right := e.EvalExpr(node.Right, scope)
		if IsError(right) {
			return right
		}
		return Bool{Value: !Truthy(right)}
	}
	right := e.EvalExpr(node.Right, scope)
	if IsError(right) {
		return right
	}
	i, ok := right.(Int)
	if !ok {
		return NewError("unary - requires Int")
	}
	return Int{Value: -i.Value}
}

func (e *Evaluator) evalConditional(node *ast.Conditional, scope *Scope) Value {
	cond := e.EvalExpr(node.Cond, scope)
	if IsError(cond) {
		return cond
	}
	if Truthy(cond) {
		return e.EvalExpr(node.Then, scope)
	}
	return e.EvalExpr(node.Else, scope)
}

// evalBinary implements spec.md §4.4's Binary rules. "and"/"or" are handled
// first and separately because they short-circuit: the right operand must
// not be evaluated at all when the left already decides the result.
func (e *Evaluator) evalBinary(node *ast.Binary, scope *Scope) Value {
	switch node.Op {
	case "and":
		left := e.EvalExpr(node.Left, scope)
		if IsError(left) {
			return left
		}
		if !Truthy(left) {
			return Bool{Value: false}
		}
		right := e.EvalExpr(node.Right, scope)
		if IsError(right) {
			return right
		}
		return Bool{Value: Truthy(right)}
	case "or":
		left := e.EvalExpr(node.Left, scope)
		if IsError(left) {
			return left
		}
		if Truthy(left) {
			return Bool{Value: true}
		}
		right := e.EvalExpr(node.Right, scope)
		if IsError(right) {
			return right
		}
		return Bool{Value: Truthy(right)}
	}

	left := e.EvalExpr(node.Left, scope)
	if IsError(left) {
		return left
	}
	right := e.EvalExpr(node.Right, scope)
	if IsError(right) {
		return right
	}

	switch node.Op {
	case "+":
		if l, ok := left.(Int); ok {
			if r, ok := right.(Int); ok {
				return Int{Value: l.Value + r.Value}
			}
		}
		return String{Value: left.Stringify() + right.Stringify()}
	case "-":
		l, r, ok := bothInt(left, right)
		if !ok {
			return NewError("operator \"-\" requires Int operands")
		}
		return Int{Value: l - r}
	case "*":
		l, r, ok := bothInt(left, right)
		if !ok {
			return NewError("operator \"*\" requires Int operands")
		}
		return Int{Value: l * r}
	case "/":
		l, r, ok := bothInt(left, right)
		if !ok {
			return NewError("operator \"/\" requires Int operands")
		}
		if r == 0 {
			return NewError("division by zero")
		}
		return Int{Value: l / r} // truncates toward zero (Go native int64 "/")
	case "==":
		return Bool{Value: Equal(left, right)}
	case "!=":
		return Bool{Value: !Equal(left, right)}
	case "<", "<=", ">", ">=":
		return evalRelational(node.Op, left, right)
	default:
		return NewError("unknown operator %q", node.Op)
	}
}

func bothInt(left, right Value) (int64, int64, bool) {
	l, lok := left.(Int)
	r, rok := right.(Int)
	if !lok || !rok {
		return 0, 0, false
	}
	return l.Value, r.Value, true
}

// evalRelational implements spec.md §4.4's ordering rule: defined for Int
// pairs and String pairs (lexicographic over bytes), an error otherwise.
func evalRelational(op string, left, right Value) Value {
	switch l := left.(type) {
	case Int:
		r, ok := right.(Int)
		if !ok {
			return NewError("comparison %q requires matching Int or String operands", op)
		}
		return Bool{Value: compareOrdered(op, l.Value < r.Value, l.Value == r.Value, l.Value > r.Value)}
	case String:
		r, ok := right.(String)
		if !ok {
			return NewError("comparison %q requires matching Int or String operands", op)
		}
		return Bool{Value: compareOrdered(op, l.Value < r.Value, l.Value == r.Value, l.Value > r.Value)}
	default:
		return NewError("comparison %q requires matching Int or String operands", op)
	}
}

func compareOrdered(op string, lt, eq, gt bool) bool {
	switch op {
	case "<":
		return lt
	case "<=":
		return lt || eq
	case ">":
		return gt
	case ">=":
		return gt || eq
	}
	return false
}

// evalCall implements spec.md §4.4's Call rule: callee then arguments
// evaluate left-to-right; the first Error short-circuits the rest.
func (e *Evaluator) evalCall(node *ast.Call, scope *Scope) Value {
	callee := e.EvalExpr(node.Callee, scope)
	if IsError(callee) {
		return callee
	}
	args := make([]Value, 0, len(node.Args))
	for _, a := range node.Args {
		v := e.EvalExpr(a, scope)
		if IsError(v) {
			return v
		}
		args = append(args, v)
	}
	switch fn := callee.(type) {
	case *Builtin:
		if len(args) != fn.Arity {
			return NewError("arity mismatch: %s expects %d argument(s), got %d", fn.Name, fn.Arity, len(args))
		}
		return fn.Fn(args)
	case *Function:
		return e.callFunction(fn, args)
	default:
		return NewError("value is not callable")
	}
}

func (e *Evaluator) callFunction(fn *Function, args []Value) Value {
	if len(args) != len(fn.Params) {
		return NewError("arity mismatch: %s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	callScope := NewScope(fn.Closure)
	for i, p := range fn.Params {
		callScope.DefineLocal(p, args[i], false)
	}
	state := &ExecState{}
	e.ExecBlock(fn.Body, callScope, state)
	if state.Failed {
		return NewError(state.FailMessage)
	}
	if state.Returned {
		return state.ReturnValue
	}
	return Null{}
}
