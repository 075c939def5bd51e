// Released under an MIT license. See LICENSE.

// Package num provides umlang's number type.
package num

import (
	"github.com/michaelmacinnis/umlang/internal/common"
	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
	"github.com/michaelmacinnis/umlang/internal/reader/term"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num from the float64 f.
func New(f float64) value.I {
	return num(f)
}

// Equal returns true if v is the same number as the num n.
func (n num) Equal(v value.I) bool {
	return Is(v) && n == v.(num)
}

// Literal returns the literal representation of the num n.
func (n num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n num) Name() string {
	return name
}

// String returns the text of the num n.
func (n num) String() string {
	return term.FormatNumber(float64(n))
}

// Structural returns true. Numbers have no identity.
func (n num) Structural() bool {
	return true
}

// Functions specific to num.

// Is returns true if v is a num.
func Is(v value.I) bool {
	_, ok := v.(num)

	return ok
}

// Value returns the float64 for v or signals that a number was expected.
func Value(v value.I) (float64, error) {
	if n, ok := v.(num); ok {
		return float64(n), nil
	}

	return 0, fault.ExpectedNumber{Actual: v}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a value.
	_ = value.I(t)

	// The num type has a literal representation.
	_ = literal.I(t)

	// The num type is a stringer.
	_ = common.Stringer(t)
}
