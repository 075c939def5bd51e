// Released under an MIT license. See LICENSE.

// Package value defines the interface for all umlang runtime values.
package value

// I (value) is the basic unit of data in umlang.
type I interface {
	// Equal reports host-level structural equality.
	Equal(v I) bool

	// Name returns the type name used in diagnostics.
	Name() string

	// Structural is false for values with identity. The = primitive
	// never reports such values as equal, whatever Equal says.
	Structural() bool
}
