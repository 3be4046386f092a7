package interpreter

import (
	"fmt"

	"github.com/kristofer/ember/internal/token"
)

// RuntimeError is a fatal error raised while executing the AST: a type
// mismatch in an operator, an undefined variable, a call of a
// non-callable value, or an arity mismatch. It carries the token nearest
// the failure so the message can report a source line.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

func newRuntimeError(t token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: t, Message: fmt.Sprintf(format, args...)}
}
