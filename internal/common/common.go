// Released under an MIT license. See LICENSE.

// Package common defines common interfaces.
package common

import (
	"fmt"

	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
)

type Stringer = fmt.Stringer

// String returns the display string for a value, if possible.
func String(v value.I) string {
	s, ok := v.(Stringer)
	if !ok {
		panic(v.Name() + " cannot be displayed")
	}

	return s.String()
}
