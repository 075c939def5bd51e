// Released under an MIT license. See LICENSE.

// Package cell provides umlang's mutable cell type.
package cell

import (
	"github.com/michaelmacinnis/umlang/internal/common"
	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
)

const name = "cell"

// T (cell) is a single mutable slot.
type T struct {
	contents value.I
}

type cell = T

// New creates a new cell holding v.
func New(v value.I) *cell {
	return &cell{contents: v}
}

// Equal returns true if v is the same cell as c. Cells compare by identity.
func (c *cell) Equal(v value.I) bool {
	o, ok := v.(*cell)

	return ok && c == o
}

// Get returns the current contents of c.
func (c *cell) Get() value.I {
	return c.contents
}

// Literal returns the literal representation of the cell c.
func (c *cell) Literal() string {
	return "#<" + name + " " + literal.String(c.contents) + ">"
}

// Name returns the type name for the cell c.
func (c *cell) Name() string {
	return name
}

// Set replaces the contents of c with v and returns the previous contents.
func (c *cell) Set(v value.I) value.I {
	old := c.contents
	c.contents = v

	return old
}

// String returns the text of the cell c.
func (c *cell) String() string {
	return "#<" + name + " " + common.String(c.contents) + ">"
}

// Structural returns false. Cells have identity.
func (c *cell) Structural() bool {
	return false
}

// Is returns true if v is a cell.
func Is(v value.I) bool {
	_, ok := v.(*cell)

	return ok
}

// To returns a cell if v is a cell or signals that a cell was expected.
func To(v value.I) (*cell, error) {
	if t, ok := v.(*cell); ok {
		return t, nil
	}

	return nil, fault.ExpectedCell{Actual: v}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t cell

	// The cell type is a value.
	_ = value.I(&t)

	// The cell type has a literal representation.
	_ = literal.I(&t)

	// The cell type is a stringer.
	_ = common.Stringer(&t)
}
