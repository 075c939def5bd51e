// Released under an MIT license. See LICENSE.

package primitive

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/common/type/boolean"
	"github.com/michaelmacinnis/umlang/internal/common/type/cell"
	"github.com/michaelmacinnis/umlang/internal/common/type/closure"
	"github.com/michaelmacinnis/umlang/internal/common/type/num"
	"github.com/michaelmacinnis/umlang/internal/common/type/obj"
	"github.com/michaelmacinnis/umlang/internal/common/type/prim"
	"github.com/michaelmacinnis/umlang/internal/common/type/str"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
)

type harness struct {
	out *bytes.Buffer
	t   *testing.T
}

func setup(t *testing.T) *harness {
	return &harness{out: &bytes.Buffer{}, t: t}
}

func (h *harness) call(label string, args ...value.I) (value.I, error) {
	v, ok := Table(h.out).Lookup(label)
	require.True(h.t, ok, label)

	p := prim.To(v)
	require.Equal(h.t, p.Arity, len(args), label)

	return p.Proc(args)
}

func (h *harness) value(label string, args ...value.I) value.I {
	v, err := h.call(label, args...)
	require.NoError(h.t, err, label)

	return v
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	for label, want := range map[string]float64{
		"+": 8,
		"-": 4,
		"*": 12,
		"/": 3,
	} {
		v := h.value(label, num.New(6), num.New(2))
		require.True(t, v.Equal(num.New(want)), label)
	}

	v := h.value("/", num.New(3), num.New(4))
	require.Equal(t, "0.75", literal.String(v))
}

func TestArithmeticExpectsNumbers(t *testing.T) {
	h := setup(t)

	_, err := h.call("+", num.New(1), boolean.True)

	var en fault.ExpectedNumber

	require.ErrorAs(t, err, &en)
	require.Equal(t, boolean.True, en.Actual)
	require.EqualError(t, err, "expected number: #t")
}

func TestCells(t *testing.T) {
	h := setup(t)

	c := h.value("cell", num.New(1))
	require.True(t, cell.Is(c))

	require.True(t, h.value("get", c).Equal(num.New(1)))

	old := h.value("set", c, str.New("two"))
	require.True(t, old.Equal(num.New(1)))
	require.True(t, h.value("get", c).Equal(str.New("two")))

	_, err := h.call("get", num.New(1))

	var ec fault.ExpectedCell

	require.ErrorAs(t, err, &ec)
}

func TestDisplay(t *testing.T) {
	h := setup(t)

	for _, v := range []value.I{
		str.New("hello"),
		num.New(7),
		num.New(0.5),
		boolean.False,
		cell.New(str.New("x")),
	} {
		r := h.value("display", v)
		require.True(t, r.Equal(num.New(0)))
	}

	h.value("newline")

	require.Equal(t, "hello70.5#f#<cell x>\n", h.out.String())
}

func TestDivisionByZero(t *testing.T) {
	h := setup(t)

	_, err := h.call("/", num.New(1), num.New(0))

	exn, ok := fault.Raised(err)
	require.True(t, ok)
	require.True(t, exn.Equal(str.New(DivisionByZero)))
}

func TestEquality(t *testing.T) {
	h := setup(t)

	fn := func() value.I {
		return closure.New(nil, &ast.Num{Value: 1}, nil)
	}

	for _, tc := range []struct {
		a, b value.I
		want bool
	}{
		{num.New(1), num.New(1), true},
		{num.New(1), num.New(2), false},
		{num.New(1), str.New("1"), false},
		{str.New("a"), str.New("a"), true},
		{boolean.True, boolean.True, true},
		{boolean.True, boolean.False, false},
		{cell.New(num.New(1)), cell.New(num.New(1)), false},
		{fn(), fn(), false},
		{obj.New(), obj.New(), false},
	} {
		v := h.value("=", tc.a, tc.b)
		require.True(t, v.Equal(boolean.New(tc.want)), "%v = %v", tc.a, tc.b)
	}

	// Values with identity are not even equal to themselves.
	c := cell.New(num.New(1))
	require.True(t, h.value("=", c, c).Equal(boolean.False))
}
