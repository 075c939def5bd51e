// Released under an MIT license. See LICENSE.

// Package boolean provides umlang's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/umlang/internal/common"
	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False value.I = boolean(false)
	True  value.I = boolean(true)
)

// New creates a new boolean from the bool b.
func New(b bool) value.I {
	if b {
		return True
	}

	return False
}

// Equal returns true if v is a boolean with a matching value.
func (b boolean) Equal(v value.I) bool {
	return Is(v) && b == v.(boolean)
}

// Literal returns the literal representation of the boolean b.
func (b boolean) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b boolean) String() string {
	if b {
		return "#t"
	}

	return "#f"
}

// Structural returns true. Booleans have no identity.
func (b boolean) Structural() bool {
	return true
}

// Functions specific to boolean.

// Is returns true if v is a boolean.
func Is(v value.I) bool {
	_, ok := v.(boolean)

	return ok
}

// Value returns the truth value of v. Only booleans can be tested.
func Value(v value.I) (bool, error) {
	if b, ok := v.(boolean); ok {
		return bool(b), nil
	}

	return false, fault.ExpectedBoolean{Actual: v}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a value.
	_ = value.I(t)

	// The boolean type has a literal representation.
	_ = literal.I(t)

	// The boolean type is a stringer.
	_ = common.Stringer(t)
}
