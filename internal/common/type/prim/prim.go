// Released under an MIT license. See LICENSE.

// Package prim provides umlang's primitive procedure type.
package prim

import (
	"github.com/michaelmacinnis/umlang/internal/common"
	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
)

const name = "primitive"

// Proc is the Go implementation of a primitive.
// It is only called with exactly arity arguments.
type Proc func(args []value.I) (value.I, error)

// T (prim) is a procedure implemented in Go.
type T struct {
	Arity int
	Label string
	Proc
}

type prim = T

// New creates a new primitive called label taking arity arguments.
func New(label string, arity int, p Proc) *prim {
	return &prim{Arity: arity, Label: label, Proc: p}
}

// Equal returns true if v is the same primitive as p.
func (p *prim) Equal(v value.I) bool {
	return Is(v) && p == To(v)
}

// Literal returns the literal representation of the primitive p.
func (p *prim) Literal() string {
	return "#<" + name + " " + p.Label + ">"
}

// Name returns the type name for the primitive p.
func (p *prim) Name() string {
	return name
}

// String returns the text of the primitive p.
func (p *prim) String() string {
	return p.Literal()
}

// Structural returns false. Procedures have identity.
func (p *prim) Structural() bool {
	return false
}

// Is returns true if v is a primitive.
func Is(v value.I) bool {
	_, ok := v.(*prim)

	return ok
}

// To returns a primitive if v is a primitive; Otherwise it panics.
func To(v value.I) *prim {
	if t, ok := v.(*prim); ok {
		return t
	}

	panic(v.Name() + " is not a primitive")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t prim

	// The prim type is a value.
	_ = value.I(&t)

	// The prim type has a literal representation.
	_ = literal.I(&t)

	// The prim type is a stringer.
	_ = common.Stringer(&t)
}
