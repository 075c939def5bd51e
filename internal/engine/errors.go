// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
)

// ErrNotOneExpression is returned by EvaluateString when the source text
// does not hold exactly one term.
var ErrNotOneExpression = errors.New("expected exactly one expression") //nolint:gochecknoglobals
