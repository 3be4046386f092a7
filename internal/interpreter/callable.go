package interpreter

import (
	"time"

	"github.com/kristofer/ember/internal/ast"
	"github.com/kristofer/ember/internal/environment"
	"github.com/kristofer/ember/internal/values"
)

// callable is implemented by every callable runtime value: native
// functions and user-defined functions alike. It extends values.Callable
// (which only needs Arity/Name, for printing "<fn NAME>") with the actual
// invocation contract, kept local to this package so that values never
// has to import interpreter.
type callable interface {
	values.Callable
	Call(in *Interpreter, args []Value) (Value, error)
}

// NativeClock is the language's one native function: arity 0, returns the
// current wall-clock time in milliseconds since the Unix epoch.
type NativeClock struct{}

func (NativeClock) Arity() int   { return 0 }
func (NativeClock) Name() string { return "clock" }

func (NativeClock) Call(_ *Interpreter, _ []Value) (Value, error) {
	return float64(time.Now().UnixMilli()), nil
}

// UserFunction is a function declared in the language. Its closure is the
// environment that was current when the Function statement executed, not
// the lexical environment where "fun" textually appears — that is what
// lets a function returned from an outer call still see that call's
// now-otherwise-gone locals.
type UserFunction struct {
	declaration *ast.FunctionStmt
	closure     *environment.Environment
}

func newUserFunction(decl *ast.FunctionStmt, closure *environment.Environment) *UserFunction {
	return &UserFunction{declaration: decl, closure: closure}
}

func (f *UserFunction) Arity() int   { return len(f.declaration.Params) }
func (f *UserFunction) Name() string { return f.declaration.Name.Lexeme }

// Call builds a fresh environment enclosing the closure, binds each
// parameter to its argument, and executes the function body in it. A
// returnSignal unwinding out of the body becomes the call's result;
// running off the end of the body without one yields nil.
func (f *UserFunction) Call(in *Interpreter, args []Value) (Value, error) {
	callEnv := environment.NewChild(f.closure)
	for i, param := range f.declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := in.execBlock(f.declaration.Body, callEnv)
	if r, ok := asReturn(err); ok {
		return r.value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}
