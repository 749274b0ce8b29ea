package ast

import "strings"

// Environment is the L0 name -> expression binding environment (spec.md
// §3, §4.1). It is append-only within a single evaluate call and last-
// write-wins on merge/define, grounded on
// original_source/src/environment.rs's Environment.
type Environment struct {
	bindings map[string]Expr
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: map[string]Expr{}}
}

// Define binds id to x, overwriting any previous binding.
func (e *Environment) Define(id string, x Expr) {
	if e.bindings == nil {
		e.bindings = map[string]Expr{}
	}
	e.bindings[id] = x
}

// Lookup returns the expression bound to id, or false if unbound. Callers
// turn a false result into the fatal UndefinedIdentifier error (spec.md
// §7); this package has no opinion on error representation.
func (e *Environment) Lookup(id string) (Expr, bool) {
	x, ok := e.bindings[id]
	return x, ok
}

// Merge copies every binding of other into e, overwriting on conflict
// (last-write-wins).
func (e *Environment) Merge(other *Environment) {
	if other == nil {
		return
	}
	if e.bindings == nil {
		e.bindings = map[string]Expr{}
	}
	for k, v := range other.bindings {
		e.bindings[k] = v
	}
}

// Len reports the number of bindings.
func (e *Environment) Len() int { return len(e.bindings) }

func (e *Environment) String() string {
	parts := make([]string, 0, len(e.bindings))
	for k := range e.bindings {
		parts = append(parts, k)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
