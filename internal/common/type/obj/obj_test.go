// Released under an MIT license. See LICENSE.

package obj

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
)

func TestDelegation(t *testing.T) {
	m := Method([]string{"x"}, &ast.Num{Value: 1}, nil)
	n := Method(nil, &ast.Num{Value: 2}, nil)

	base := New().Extend(":m", m)
	o := base.Extend(":n", n)

	got, err := o.Lookup(":m")
	require.NoError(t, err)
	require.Same(t, m, got)

	// The base is unchanged.
	_, err = base.Lookup(":n")
	require.Error(t, err)

	// The most recent extension wins.
	shadow := Method(nil, &ast.Num{Value: 3}, nil)

	got, err = o.Extend(":m", shadow).Lookup(":m")
	require.NoError(t, err)
	require.Same(t, shadow, got)
}

func TestMethodTakesSelf(t *testing.T) {
	m := Method([]string{"x", "y"}, &ast.Ref{Name: "x"}, nil)

	if diff := cmp.Diff([]string{Self, "x", "y"}, m.Formals); diff != "" {
		t.Fatalf("formals mismatch (-want +got):\n%s", diff)
	}
}

func TestMethodNotFound(t *testing.T) {
	_, err := New().Lookup(":missing")

	var mnf fault.MethodNotFound

	require.ErrorAs(t, err, &mnf)
	require.Equal(t, ":missing", mnf.Selector)
	require.EqualError(t, err, "method not found: :missing")
}

func TestSelectors(t *testing.T) {
	m := Method(nil, &ast.Obj{}, nil)
	o := New().Extend(":a", m).Extend(":b", m).Extend(":a", m)

	if diff := cmp.Diff([]string{":a", ":b", ":a"}, o.Selectors()); diff != "" {
		t.Fatalf("selectors mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentity(t *testing.T) {
	a, b := New(), New()

	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
	require.False(t, a.Structural())
	require.Equal(t, "#<obj>", a.Literal())
}
