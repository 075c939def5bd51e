// Released under an MIT license. See LICENSE.

// Package literal defines the interface for umlang values that can be written back out.
package literal

import (
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
)

// I (literal) is any value that has a printed representation.
type I interface {
	Literal() string
}

// String returns the literal string representation for a value, if possible.
func String(v value.I) string {
	l, ok := v.(I)
	if !ok {
		// Every umlang value should have a literal representation.
		panic(v.Name() + " does not have a literal representation")
	}

	return l.Literal()
}
