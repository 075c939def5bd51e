// Released under an MIT license. See LICENSE.

// Package global provides the table of umlang's top-level definitions.
//
// A global passes through three states. It is absent until declared, then
// declared but uninitialized until set, and finally initialized.
package global

import (
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
)

// Status is the state of a name in the global table.
type Status int

// Global states.
const (
	Absent Status = iota
	Declared
	Initialized
)

// T (global) maps names to top-level values.
type T struct {
	bindings map[string]value.I
}

type global = T

// New creates an empty global table.
func New() *global {
	return &global{bindings: map[string]value.I{}}
}

// Declare introduces the name k. Declaring an existing name does nothing.
func (g *global) Declare(k string) {
	if _, ok := g.bindings[k]; !ok {
		g.bindings[k] = nil
	}
}

// Lookup returns the status of the name k and, if initialized, its value.
func (g *global) Lookup(k string) (value.I, Status) {
	v, ok := g.bindings[k]

	switch {
	case !ok:
		return nil, Absent
	case v == nil:
		return nil, Declared
	default:
		return v, Initialized
	}
}

// Set initializes or updates the declared name k.
// Setting a name that was never declared is an internal error.
func (g *global) Set(k string, v value.I) {
	if _, ok := g.bindings[k]; !ok {
		panic("attempted to set variable before declaring it: " + k)
	}

	if v == nil {
		panic("attempted to set " + k + " to nil")
	}

	g.bindings[k] = v
}

// String returns a string representation of Status. Useful for debugging.
func (s Status) String() string {
	switch s {
	case Absent:
		return "Absent"
	case Declared:
		return "Declared"
	case Initialized:
		return "Initialized"
	}

	return "Status(?)"
}
