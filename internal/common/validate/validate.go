// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to routines.
package validate

import (
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
)

// Fixed returns a fault if args does not hold exactly n arguments.
func Fixed(args []value.I, n int) error {
	if len(args) != n {
		return fault.BadArgumentCount{Expected: n, Actual: len(args)}
	}

	return nil
}
