// Released under an MIT license. See LICENSE.

// Package closure provides umlang's user-defined function type.
package closure

import (
	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/common"
	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/common/struct/env"
	"github.com/michaelmacinnis/umlang/internal/reader/term"
)

const name = "closure"

// T (closure) pairs a function body with the environment where it was created.
type T struct {
	Body    ast.Expr
	Env     *env.T[value.I]
	Formals []string
}

type closure = T

// New creates a new closure capturing the lexical environment e.
func New(formals []string, body ast.Expr, e *env.T[value.I]) *closure {
	return &closure{Body: body, Env: e, Formals: formals}
}

// Equal returns true if v is the same closure as c.
func (c *closure) Equal(v value.I) bool {
	return Is(v) && c == To(v)
}

// Literal returns the literal representation of the closure c.
func (c *closure) Literal() string {
	fs := make([]term.T, len(c.Formals))
	for i, f := range c.Formals {
		fs[i] = term.Sym(f)
	}

	return "#<fn " + term.New(fs...).String() + " " +
		ast.Unparse(c.Body).String() + ">"
}

// Name returns the type name for the closure c.
func (c *closure) Name() string {
	return name
}

// String returns the text of the closure c.
func (c *closure) String() string {
	return c.Literal()
}

// Structural returns false. Closures have identity.
func (c *closure) Structural() bool {
	return false
}

// Functions specific to closure.

// Bind returns the captured environment extended with the formals bound to args.
// The caller must check that there is one argument for each formal.
func (c *closure) Bind(args []value.I) *env.T[value.I] {
	return c.Env.Extend(c.Formals, args)
}

// Is returns true if v is a closure.
func Is(v value.I) bool {
	_, ok := v.(*closure)

	return ok
}

// To returns a closure if v is a closure; Otherwise it panics.
func To(v value.I) *closure {
	if t, ok := v.(*closure); ok {
		return t
	}

	panic(v.Name() + " is not a closure")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a value.
	_ = value.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)

	// The closure type is a stringer.
	_ = common.Stringer(&t)
}
