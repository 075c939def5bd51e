// Released under an MIT license. See LICENSE.

// Package str provides umlang's string type.
package str

import (
	"strconv"

	"github.com/michaelmacinnis/umlang/internal/common"
	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str value.
func New(s string) value.I {
	return str(s)
}

// Equal returns true if v is a str with the same text.
func (s str) Equal(v value.I) bool {
	return Is(v) && s == v.(str)
}

// Literal returns the quoted representation of the str s.
func (s str) Literal() string {
	return strconv.Quote(string(s))
}

// Name returns the type name for the str s.
func (s str) Name() string {
	return name
}

// String returns the text of the str s.
func (s str) String() string {
	return string(s)
}

// Structural returns true. Strings have no identity.
func (s str) Structural() bool {
	return true
}

// Is returns true if v is a str.
func Is(v value.I) bool {
	_, ok := v.(str)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a value.
	_ = value.I(t)

	// The str type has a literal representation.
	_ = literal.I(t)

	// The str type is a stringer.
	_ = common.Stringer(t)
}
