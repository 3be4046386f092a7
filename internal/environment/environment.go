// Package environment implements the lexical scope chain the interpreter
// walks to resolve variable names.
package environment

import (
	"fmt"

	"github.com/kristofer/ember/internal/values"
)

// Environment is one scope: a map of names to values, plus a link to the
// scope it is nested inside. The chain is rooted at the interpreter's
// global environment. A closure holds a reference to the environment that
// was current when its function statement executed, not the environment
// where the function was textually written — this is what keeps a
// function's captured variables alive after the block that defined them
// has otherwise gone out of scope.
type Environment struct {
	values    map[string]values.Value
	enclosing *Environment
}

// New creates a top-level environment with no parent (the globals scope).
func New() *Environment {
	return &Environment{values: make(map[string]values.Value)}
}

// NewChild creates a scope nested inside enclosing, e.g. a block's or a
// function call's local frame.
func NewChild(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]values.Value), enclosing: enclosing}
}

// Define binds name to value in the current scope unconditionally. If the
// name already exists in this exact scope, the new binding shadows it —
// redeclaring "var x" in the same scope is allowed and simply overwrites.
func (e *Environment) Define(name string, value values.Value) {
	e.values[name] = value
}

// Get resolves name by walking from this scope outward through enclosing
// scopes. It fails if no scope in the chain defines the name.
func (e *Environment) Get(name string) (values.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign writes value into the nearest scope (starting here, walking
// outward) that already defines name. It fails if no scope defines it —
// assignment never implicitly creates a new binding.
func (e *Environment) Assign(name string, value values.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}
