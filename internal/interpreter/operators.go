package interpreter

import (
	"github.com/kristofer/ember/internal/ast"
	"github.com/kristofer/ember/internal/token"
	"github.com/kristofer/ember/internal/values"
)

// evalBinary evaluates both operands unconditionally (unlike Logical,
// this never short-circuits) and then dispatches on the operator. "+" is
// the one overloaded operator: number+number adds, string+string
// concatenates, anything else is a type error. "==" and "!=" accept any
// pair of operand types; every other operator requires two numbers.
func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.BangEqual:
		return !values.IsEqual(left, right), nil
	case token.EqualEqual:
		return values.IsEqual(left, right), nil
	case token.Plus:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	case token.Minus, token.Star, token.Slash, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.Minus:
			return ln - rn, nil
		case token.Star:
			return ln * rn, nil
		case token.Slash:
			return ln / rn, nil
		case token.Greater:
			return ln > rn, nil
		case token.GreaterEqual:
			return ln >= rn, nil
		case token.Less:
			return ln < rn, nil
		case token.LessEqual:
			return ln <= rn, nil
		}
	}
	panic("interpreter: unhandled binary operator")
}
