// Released under an MIT license. See LICENSE.

// Package primitive provides umlang's fixed set of primitive procedures.
package primitive

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/umlang/internal/common"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/common/struct/env"
	"github.com/michaelmacinnis/umlang/internal/common/type/boolean"
	"github.com/michaelmacinnis/umlang/internal/common/type/cell"
	"github.com/michaelmacinnis/umlang/internal/common/type/num"
	"github.com/michaelmacinnis/umlang/internal/common/type/prim"
	"github.com/michaelmacinnis/umlang/internal/common/type/str"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
)

// DivisionByZero is the value raised when dividing by zero.
const DivisionByZero = "division-by-zero"

// Table creates the primitive environment. Output from display and
// newline is written to w.
func Table(w io.Writer) *env.T[value.I] {
	ps := []*prim.T{
		// Arithmetic. Operands must be numbers.
		arithmetic("+", func(a, b float64) (float64, error) {
			return a + b, nil
		}),
		arithmetic("-", func(a, b float64) (float64, error) {
			return a - b, nil
		}),
		arithmetic("*", func(a, b float64) (float64, error) {
			return a * b, nil
		}),
		arithmetic("/", func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, fault.UserException{Value: str.New(DivisionByZero)}
			}

			return a / b, nil
		}),

		// Values with identity are never equal, even to themselves.
		prim.New("=", 2, func(args []value.I) (value.I, error) {
			a, b := args[0], args[1]

			return boolean.New(
				a.Structural() && b.Structural() && a.Equal(b),
			), nil
		}),

		// I/O.
		prim.New("display", 1, func(args []value.I) (value.I, error) {
			fmt.Fprint(w, common.String(args[0]))

			return num.New(0), nil
		}),
		prim.New("newline", 0, func(args []value.I) (value.I, error) {
			fmt.Fprint(w, "\n")

			return num.New(0), nil
		}),

		// Cells.
		prim.New("cell", 1, func(args []value.I) (value.I, error) {
			return cell.New(args[0]), nil
		}),
		prim.New("get", 1, func(args []value.I) (value.I, error) {
			c, err := cell.To(args[0])
			if err != nil {
				return nil, err
			}

			return c.Get(), nil
		}),
		prim.New("set", 2, func(args []value.I) (value.I, error) {
			c, err := cell.To(args[0])
			if err != nil {
				return nil, err
			}

			return c.Set(args[1]), nil
		}),
	}

	var t *env.T[value.I]
	for _, p := range ps {
		t = t.Bind(p.Label, p)
	}

	return t
}

func arithmetic(label string, op func(a, b float64) (float64, error)) *prim.T {
	return prim.New(label, 2, func(args []value.I) (value.I, error) {
		a, err := num.Value(args[0])
		if err != nil {
			return nil, err
		}

		b, err := num.Value(args[1])
		if err != nil {
			return nil, err
		}

		r, err := op(a, b)
		if err != nil {
			return nil, err
		}

		return num.New(r), nil
	})
}
