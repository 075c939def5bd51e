// Released under an MIT license. See LICENSE.

package env

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	e := Empty[int]()

	_, ok := e.Lookup("x")
	require.False(t, ok)
	require.Zero(t, e.Len())
	require.Empty(t, e.Names())
}

func TestExtendDoesNotModify(t *testing.T) {
	outer := New([]string{"x"}, []int{1})
	inner := outer.Bind("x", 2)

	v, ok := outer.Lookup("x")
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, ok = inner.Lookup("x")
	require.True(t, ok)
	require.Equal(t, 2, v)

	require.Equal(t, 1, outer.Len())
	require.Equal(t, 2, inner.Len())
}

func TestExtendLengthMismatch(t *testing.T) {
	require.Panics(t, func() {
		Empty[int]().Extend([]string{"x", "y"}, []int{1})
	})
}

func TestNames(t *testing.T) {
	e := New([]string{"a", "b"}, []int{1, 2}).Bind("c", 3)

	if diff := cmp.Diff([]string{"c", "b", "a"}, e.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestShadowing(t *testing.T) {
	e := New([]string{"x", "y", "x"}, []int{1, 2, 3})

	for k, want := range map[string]int{"x": 3, "y": 2} {
		got, ok := e.Lookup(k)
		require.True(t, ok, k)
		require.Equal(t, want, got, k)
	}

	_, ok := e.Lookup("z")
	require.False(t, ok)
}
