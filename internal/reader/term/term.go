// Released under an MIT license. See LICENSE.

// Package term provides the generic bracketed trees produced by the umlang reader.
package term

import (
	"math"
	"strconv"
	"strings"
)

// T (term) is a symbol, number, string or form.
type T interface {
	String() string
	term()
}

// Form is a bracketed sequence of terms.
type Form struct {
	Open  rune // One of '(', '[' or '{'. Zero prints as '{'.
	Terms []T
}

// Num is a numeric atom.
type Num float64

// Str is a string atom.
type Str string

// Sym is a symbol atom.
type Sym string

// New creates a brace-delimited form.
func New(ts ...T) *Form {
	return &Form{Open: '{', Terms: ts}
}

// Close returns the closing bracket for the opening bracket r.
func Close(r rune) rune {
	switch r {
	case '(':
		return ')'
	case '[':
		return ']'
	}

	return '}'
}

// FormatNumber renders f the way umlang prints numbers:
// integral values have no fractional part.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Len returns the number of terms in the form f.
func (f *Form) Len() int {
	return len(f.Terms)
}

func (f *Form) String() string {
	open := f.Open
	if open == 0 {
		open = '{'
	}

	var b strings.Builder

	b.WriteRune(open)

	for i, t := range f.Terms {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(t.String())
	}

	b.WriteRune(Close(open))

	return b.String()
}

func (n Num) String() string {
	return FormatNumber(float64(n))
}

func (s Str) String() string {
	return strconv.Quote(string(s))
}

func (s Sym) String() string {
	return string(s)
}

// IsSelector returns true if t is a symbol naming a method, i.e. starts with ':'.
func IsSelector(t T) bool {
	s, ok := t.(Sym)

	return ok && strings.HasPrefix(string(s), ":") && len(s) > 1
}

func (*Form) term() {}
func (Num) term()   {}
func (Str) term()   {}
func (Sym) term()   {}
