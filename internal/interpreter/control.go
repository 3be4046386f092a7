package interpreter

import "github.com/kristofer/ember/internal/token"

// returnSignal is the non-local control-flow marker produced by a return
// statement. It is not an error — it satisfies the error interface only
// so it can travel up through the same (Value, error) return channels
// every statement executor already uses, without a second plumbing path.
// execStmt and execBlock propagate it unchanged; UserFunction.Call is the
// only place that takes its value as a result, and Interpret turns one
// that reaches the top level into a RuntimeError.
//
// Routing it through a distinct type instead of Go's generic error keeps
// "a return happened" distinguishable from "something went wrong" at
// every call site that matters — see Interpret, which rejects a
// returnSignal that escapes all the way to the top level.
type returnSignal struct {
	value       Value
	returnToken token.Token // the "return" keyword, for top-level-escape diagnostics
}

func (r *returnSignal) Error() string {
	return "return outside of function"
}

// asReturn reports whether err is a returnSignal and, if so, returns it.
func asReturn(err error) (*returnSignal, bool) {
	r, ok := err.(*returnSignal)
	return r, ok
}
