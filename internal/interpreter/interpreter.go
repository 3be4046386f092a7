// Package interpreter implements the tree-walking evaluator: it executes
// an AST directly, maintaining the environment chain and hosting the
// callables (native and user-defined) that the language exposes.
package interpreter

import (
	"io"

	"github.com/kristofer/ember/internal/ast"
	"github.com/kristofer/ember/internal/environment"
	"github.com/kristofer/ember/internal/token"
	"github.com/kristofer/ember/internal/values"
)

// Value is the runtime value type the interpreter produces and consumes.
type Value = values.Value

// Interpreter walks a program's statements, threading a chain of
// environments and writing print output to Out. The globals environment
// (holding "clock" and top-level vars) is distinct from the current
// environment, which moves as blocks and calls push and pop scopes; a
// name that is not found locally is still visible if it is a global, even
// when the local chain is rooted at a closure captured far from globals.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	Out     io.Writer
	isREPL  bool
}

// New creates an Interpreter that writes print output to out. isREPL
// enables the REPL's one extra ergonomic: a bare expression statement's
// value is echoed (see execExpressionStmt).
func New(out io.Writer, isREPL bool) *Interpreter {
	globals := environment.New()
	globals.Define("clock", NativeClock{})
	return &Interpreter{globals: globals, env: globals, Out: out, isREPL: isREPL}
}

// Interpret runs a full program. A returnSignal reaching this level (a
// "return" outside of any function call) is reported as a runtime error
// rather than silently accepted — spec.md §5 leaves this as an open
// choice and this is the conformant one.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.execStmt(stmt); err != nil {
			if r, ok := asReturn(err); ok {
				return &RuntimeError{Token: r.returnToken, Message: "Can't return from top-level code."}
			}
			return err
		}
	}
	return nil
}

func (in *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return in.execExpressionStmt(s)
	case *ast.PrintStmt:
		return in.execPrintStmt(s)
	case *ast.VarStmt:
		return in.execVarStmt(s)
	case *ast.BlockStmt:
		return in.execBlock(s.Statements, environment.NewChild(in.env))
	case *ast.IfStmt:
		return in.execIfStmt(s)
	case *ast.WhileStmt:
		return in.execWhileStmt(s)
	case *ast.FunctionStmt:
		in.env.Define(s.Name.Lexeme, newUserFunction(s, in.env))
		return nil
	case *ast.ReturnStmt:
		return in.execReturnStmt(s)
	default:
		panic("interpreter: unhandled statement type")
	}
}

func (in *Interpreter) execExpressionStmt(s *ast.ExpressionStmt) error {
	v, err := in.eval(s.Expression)
	if err != nil {
		return err
	}
	if in.isREPL {
		switch s.Expression.(type) {
		case *ast.Assign, *ast.Call:
			// assignments and calls are not echoed: an assignment's
			// effect is the updated binding, and a call's output is
			// whatever it prints itself.
		default:
			io.WriteString(in.Out, values.Stringify(v)+"\n")
		}
	}
	return nil
}

func (in *Interpreter) execPrintStmt(s *ast.PrintStmt) error {
	v, err := in.eval(s.Expression)
	if err != nil {
		return err
	}
	io.WriteString(in.Out, values.Stringify(v)+"\n")
	return nil
}

func (in *Interpreter) execVarStmt(s *ast.VarStmt) error {
	var v Value
	if s.Initializer != nil {
		var err error
		v, err = in.eval(s.Initializer)
		if err != nil {
			return err
		}
	}
	in.env.Define(s.Name.Lexeme, v)
	return nil
}

// execBlock runs stmts in env, restoring the interpreter's previous
// current environment on every exit path (normal completion, a
// returnSignal, or a runtime error) — it is also the mechanism
// UserFunction.Call uses to run a function body in its call frame.
func (in *Interpreter) execBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execIfStmt(s *ast.IfStmt) error {
	cond, err := in.eval(s.Condition)
	if err != nil {
		return err
	}
	if values.IsTruthy(cond) {
		return in.execStmt(s.Then)
	}
	if s.Else != nil {
		return in.execStmt(s.Else)
	}
	return nil
}

func (in *Interpreter) execWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		if !values.IsTruthy(cond) {
			return nil
		}
		if err := in.execStmt(s.Body); err != nil {
			return err
		}
	}
}

func (in *Interpreter) execReturnStmt(s *ast.ReturnStmt) error {
	var v Value
	if s.Value != nil {
		var err error
		v, err = in.eval(s.Value)
		if err != nil {
			return err
		}
	}
	return &returnSignal{value: v, returnToken: s.Keyword}
}

// eval evaluates a single expression to a value, or a RuntimeError.
func (in *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return in.eval(e.Expression)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Logical:
		return in.evalLogical(e)
	case *ast.Variable:
		v, err := in.env.Get(e.Name.Lexeme)
		if err != nil {
			return nil, newRuntimeError(e.Name, "%s", err.Error())
		}
		return v, nil
	case *ast.Assign:
		return in.evalAssign(e)
	case *ast.Call:
		return in.evalCall(e)
	default:
		panic("interpreter: unhandled expression type")
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.Bang:
		return !values.IsTruthy(right), nil
	}
	panic("interpreter: unhandled unary operator")
}

func (in *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == token.Or {
		if values.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !values.IsTruthy(left) {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalAssign(e *ast.Assign) (Value, error) {
	v, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if err := in.env.Assign(e.Name.Lexeme, v); err != nil {
		return nil, newRuntimeError(e.Name, "%s", err.Error())
	}
	return v, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	// Arguments are evaluated left to right before the callability or
	// arity of callee is even checked: evaluation order is user-visible
	// whenever an argument expression has a side effect.
	args := make([]Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		v, err := in.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(callable)
	if !ok {
		return nil, newRuntimeError(e.ClosingParen, "Can only call functions.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(e.ClosingParen, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}
