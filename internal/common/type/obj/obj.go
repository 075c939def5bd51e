// Released under an MIT license. See LICENSE.

// Package obj provides umlang's object type.
//
// An object is a chain of methods built by repeated extension. Looking up a
// selector walks the chain from the most recent extension, so a later
// method shadows an earlier one with the same selector. Methods do not
// capture the object they belong to. Instead the receiver is passed as an
// implicit leading self argument when a method is called.
package obj

import (
	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/common"
	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/common/struct/env"
	"github.com/michaelmacinnis/umlang/internal/common/type/closure"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
)

const name = "obj"

// Self is the name of the implicit receiver parameter of every method.
const Self = "self"

// T (obj) maps selectors to methods.
type T struct {
	methods *env.T[*closure.T]
}

type obj = T

// New creates a new object with no methods.
func New() *obj {
	return &obj{}
}

// Method creates the closure for a method with the given formals and body.
// The closure takes self as an implicit first parameter and captures the
// lexical environment e, not the object it will be added to.
func Method(formals []string, body ast.Expr, e *env.T[value.I]) *closure.T {
	return closure.New(append([]string{Self}, formals...), body, e)
}

// Equal returns true if v is the same object as o. Objects compare by identity.
func (o *obj) Equal(v value.I) bool {
	t, ok := v.(*obj)

	return ok && o == t
}

// Extend returns a new object that responds to selector with method, and
// delegates every other selector to o.
func (o *obj) Extend(selector string, method *closure.T) *obj {
	return &obj{methods: o.methods.Bind(selector, method)}
}

// Literal returns the literal representation of the object o.
func (o *obj) Literal() string {
	return "#<" + name + ">"
}

// Lookup returns the most recently added method responding to selector.
func (o *obj) Lookup(selector string) (*closure.T, error) {
	m, ok := o.methods.Lookup(selector)
	if !ok {
		return nil, fault.MethodNotFound{Selector: selector}
	}

	return m, nil
}

// Name returns the type name for the object o.
func (o *obj) Name() string {
	return name
}

// Selectors returns the selectors o responds to, most recent first.
// Shadowed selectors appear more than once.
func (o *obj) Selectors() []string {
	return o.methods.Names()
}

// String returns the text of the object o.
func (o *obj) String() string {
	return o.Literal()
}

// Structural returns false. Objects have identity.
func (o *obj) Structural() bool {
	return false
}

// Is returns true if v is an object.
func Is(v value.I) bool {
	_, ok := v.(*obj)

	return ok
}

// To returns an object if v is an object or signals that an object was expected.
func To(v value.I) (*obj, error) {
	if t, ok := v.(*obj); ok {
		return t, nil
	}

	return nil, fault.ExpectedObject{Actual: v}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t obj

	// The obj type is a value.
	_ = value.I(&t)

	// The obj type has a literal representation.
	_ = literal.I(&t)

	// The obj type is a stringer.
	_ = common.Stringer(&t)
}
