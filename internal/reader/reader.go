// Released under an MIT license. See LICENSE.

// Package reader turns umlang source text into terms.
//
// The reader keeps the forms that are still open on an explicit stack, so
// the depth of nesting in the input does not affect the depth of the Go
// stack. Input may arrive in pieces. Each call to Scan returns the toplevel
// terms completed by that piece.
package reader

import (
	"strconv"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/umlang/internal/common/struct/loc"
	"github.com/michaelmacinnis/umlang/internal/common/struct/token"
	"github.com/michaelmacinnis/umlang/internal/reader/lexer"
	"github.com/michaelmacinnis/umlang/internal/reader/term"
)

// SyntaxError is a malformed piece of source text.
type SyntaxError struct {
	Message string
	Source  loc.T
}

func (e *SyntaxError) Error() string {
	return e.Source.String() + ": " + e.Message
}

// T (reader) encapsulates the umlang lexer and the forms being read.
type T struct {
	open []partial
	s    *lexer.T
}

type reader = T

type partial struct {
	form   *term.Form
	source loc.T
}

// New creates a new reader for name.
func New(name string) *T {
	return &T{s: lexer.New(name)}
}

// ReadAll reads every term in text. Label can be a file name or other
// identifier.
func ReadAll(label, text string) ([]term.T, error) {
	r := New(label)

	// A final delimiter so that a trailing atom is complete.
	ts, err := r.Scan(text + "\n")
	if err != nil {
		return nil, err
	}

	err = r.Incomplete()
	if err != nil {
		return nil, err
	}

	return ts, nil
}

// Pending returns true if a form or string has been started but not finished.
func (r *reader) Pending() bool {
	return len(r.open) > 0 || r.s.Pending()
}

// Reset discards any partially read input.
func (r *reader) Reset() {
	r.open = nil
	r.s.Reset()
}

// Scan reads text and returns every toplevel term that it completes.
// Any incomplete term is kept until more text arrives. If Scan encounters
// an error it discards any partially read input and returns the error along
// with the terms completed before the error.
func (r *reader) Scan(text string) ([]term.T, error) {
	r.s.Scan(text)

	var done []term.T

	for t := r.s.Token(); t != nil; t = r.s.Token() {
		v, err := r.term(t)
		if err != nil {
			r.Reset()

			return done, err
		}

		if v == nil {
			continue
		}

		if n := len(r.open); n > 0 {
			f := r.open[n-1].form
			f.Terms = append(f.Terms, v)
		} else {
			done = append(done, v)
		}
	}

	return done, nil
}

// Incomplete returns a syntax error if a form or string has been started
// but not finished, and nil otherwise.
func (r *reader) Incomplete() error {
	if !r.Pending() {
		return nil
	}

	if r.s.Pending() {
		return &SyntaxError{
			Message: "missing close-quote at end of input in string",
			Source:  r.s.Source(),
		}
	}

	return &SyntaxError{
		Message: "missing " + closer(term.Close(r.open[len(r.open)-1].form.Open)) +
			" at end of input",
		Source: r.open[len(r.open)-1].source,
	}
}

// term returns the term for t, or nil if t opens a form.
func (r *reader) term(t *token.T) (term.T, error) {
	switch c := t.Class(); c {
	case '(', '[', '{':
		r.open = append(r.open, partial{
			form:   &term.Form{Open: rune(c)},
			source: t.Source(),
		})

		return nil, nil //nolint:nilnil

	case ')', ']', '}':
		n := len(r.open)
		if n == 0 || term.Close(r.open[n-1].form.Open) != rune(c) {
			return nil, &SyntaxError{
				Message: "unexpected " + closer(rune(c)),
				Source:  t.Source(),
			}
		}

		f := r.open[n-1].form
		r.open = r.open[:n-1]

		return f, nil

	case token.Number:
		f, err := strconv.ParseFloat(t.Value(), 64)
		if err != nil {
			return nil, &SyntaxError{
				Message: "bad number: " + t.Value(),
				Source:  t.Source(),
			}
		}

		return term.Num(f), nil

	case token.String:
		text := t.Value()

		s, err := adapted.ActualBytes(text[1 : len(text)-1])
		if err != nil {
			return nil, &SyntaxError{
				Message: "bad escape sequence in string: " + text,
				Source:  t.Source(),
			}
		}

		return term.Str(s), nil

	case token.Symbol:
		return term.Sym(t.Value()), nil
	}

	panic("unexpected token class " + t.String())
}

func closer(r rune) string {
	switch r {
	case ')':
		return "close-parenthesis"
	case ']':
		return "close-bracket"
	}

	return "close-brace"
}
