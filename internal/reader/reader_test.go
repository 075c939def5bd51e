// Released under an MIT license. See LICENSE.

package reader

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/umlang/internal/reader/term"
)

func form(open rune, ts ...term.T) *term.Form {
	return &term.Form{Open: open, Terms: ts}
}

func TestReadAll(t *testing.T) {
	ts, err := ReadAll("test", `{+ 1 {f "s\n"}} x ; comment
[a (b -2.5)]`)
	require.NoError(t, err)

	want := []term.T{
		form('{', term.Sym("+"), term.Num(1),
			form('{', term.Sym("f"), term.Str("s\n"))),
		term.Sym("x"),
		form('[', term.Sym("a"), form('(', term.Sym("b"), term.Num(-2.5))),
	}

	if diff := cmp.Diff(want, ts); diff != "" {
		t.Fatalf("terms mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAllEmpty(t *testing.T) {
	ts, err := ReadAll("test", "  ; nothing here")
	require.NoError(t, err)
	require.Empty(t, ts)
}

func TestReadAllTrailingAtom(t *testing.T) {
	ts, err := ReadAll("test", "42")
	require.NoError(t, err)

	if diff := cmp.Diff([]term.T{term.Num(42)}, ts); diff != "" {
		t.Fatalf("terms mismatch (-want +got):\n%s", diff)
	}
}

func TestDeepNesting(t *testing.T) {
	const depth = 100000

	src := strings.Repeat("{", depth) + "x" + strings.Repeat("}", depth)

	ts, err := ReadAll("test", src)
	require.NoError(t, err)
	require.Len(t, ts, 1)

	n := 0
	for x := ts[0]; ; n++ {
		f, ok := x.(*term.Form)
		if !ok {
			break
		}

		x = f.Terms[0]
	}

	require.Equal(t, depth, n)
}

func TestSyntaxErrors(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want string
	}{
		{"}", "test:1:1: unexpected close-brace"},
		{"{a)", "test:1:3: unexpected close-parenthesis"},
		{"(a]", "test:1:3: unexpected close-bracket"},
		{"\n  )", "test:2:3: unexpected close-parenthesis"},
		{"{a {b}", "test:1:1: missing close-brace at end of input"},
		{"[a", "test:1:1: missing close-bracket at end of input"},
		{`x "abc`, "test:1:3: missing close-quote at end of input in string"},
		{`"\q"`, `test:1:1: bad escape sequence in string: "\q"`},
	} {
		_, err := ReadAll("test", tc.src)

		var se *SyntaxError

		require.ErrorAs(t, err, &se, tc.src)
		require.EqualError(t, err, tc.want, tc.src)
	}
}

func TestScanIncremental(t *testing.T) {
	r := New("test")

	ts, err := r.Scan("{define x\n")
	require.NoError(t, err)
	require.Empty(t, ts)
	require.True(t, r.Pending())

	ts, err = r.Scan("  1} 2\n")
	require.NoError(t, err)
	require.False(t, r.Pending())

	want := []term.T{
		form('{', term.Sym("define"), term.Sym("x"), term.Num(1)),
		term.Num(2),
	}

	if diff := cmp.Diff(want, ts); diff != "" {
		t.Fatalf("terms mismatch (-want +got):\n%s", diff)
	}
}

func TestScanRecovers(t *testing.T) {
	r := New("test")

	ts, err := r.Scan("1 {2 ]\n")
	require.Error(t, err)

	// Terms completed before the error are kept.
	if diff := cmp.Diff([]term.T{term.Num(1)}, ts); diff != "" {
		t.Fatalf("terms mismatch (-want +got):\n%s", diff)
	}

	require.False(t, r.Pending())

	ts, err = r.Scan("3\n")
	require.NoError(t, err)

	if diff := cmp.Diff([]term.T{term.Num(3)}, ts); diff != "" {
		t.Fatalf("terms mismatch (-want +got):\n%s", diff)
	}
}
