// Released under an MIT license. See LICENSE.

// Package parser translates terms into umlang abstract syntax.
package parser

import (
	"strings"

	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/reader/term"
)

// Error is a well-formed term that is not a valid umlang expression.
type Error struct {
	Message string
	Term    term.T
}

func (e *Error) Error() string {
	return e.Message + ": " + e.Term.String()
}

// Base marks the base object expression in an obj form.
const Base = "#:base"

// Parse translates t into an expression.
func Parse(t term.T) (ast.Expr, error) {
	switch t := t.(type) {
	case term.Num:
		return &ast.Num{Value: float64(t)}, nil

	case term.Str:
		return &ast.Str{Value: string(t)}, nil

	case term.Sym:
		switch t {
		case "#t":
			return &ast.Bool{Value: true}, nil
		case "#f":
			return &ast.Bool{Value: false}, nil
		}

		return &ast.Ref{Name: string(t)}, nil

	case *term.Form:
		return form(t)
	}

	panic("unexpected term type")
}

// ParseProgram translates each term in ts into a toplevel clause.
func ParseProgram(ts []term.T) ([]ast.Clause, error) {
	program := make([]ast.Clause, 0, len(ts))

	for _, t := range ts {
		c, err := ParseToplevel(t)
		if err != nil {
			return nil, err
		}

		program = append(program, c)
	}

	return program, nil
}

// ParseToplevel translates t into a definition or an expression.
func ParseToplevel(t term.T) (ast.Clause, error) {
	f, ok := t.(*term.Form)
	if !ok || f.Len() == 0 || f.Terms[0] != term.Sym("define") {
		return Parse(t)
	}

	if f.Len() != 3 {
		return nil, bad("define", t)
	}

	name, ok := f.Terms[1].(term.Sym)
	if !ok {
		return nil, bad("define", t)
	}

	value, err := Parse(f.Terms[2])
	if err != nil {
		return nil, err
	}

	return &ast.Define{Name: string(name), Init: value}, nil
}

func all(ts []term.T) ([]ast.Expr, error) {
	es := make([]ast.Expr, len(ts))

	for i, t := range ts {
		e, err := Parse(t)
		if err != nil {
			return nil, err
		}

		es[i] = e
	}

	return es, nil
}

func bad(keyword string, t term.T) error {
	return &Error{Message: "bad '" + keyword + "' syntax", Term: t}
}

func call(f *term.Form) (ast.Expr, error) {
	if f.Len() == 0 {
		return nil, &Error{Message: "parse error", Term: f}
	}

	if f.Len() >= 2 && selector(f.Terms[1]) {
		receiver, err := Parse(f.Terms[0])
		if err != nil {
			return nil, err
		}

		args, err := all(f.Terms[2:])
		if err != nil {
			return nil, err
		}

		return &ast.Send{
			Receiver: receiver,
			Selector: string(f.Terms[1].(term.Sym)),
			Args:     args,
		}, nil
	}

	fn, err := Parse(f.Terms[0])
	if err != nil {
		return nil, err
	}

	args, err := all(f.Terms[1:])
	if err != nil {
		return nil, err
	}

	return &ast.Call{Fn: fn, Args: args}, nil
}

func catch(f *term.Form) (ast.Expr, error) {
	if f.Len() != 4 {
		return nil, bad("catch", f)
	}

	v, ok := f.Terms[2].(*term.Form)
	if !ok || v.Len() != 1 {
		return nil, bad("catch", f)
	}

	name, ok := v.Terms[0].(term.Sym)
	if !ok {
		return nil, bad("catch", f)
	}

	body, err := Parse(f.Terms[1])
	if err != nil {
		return nil, err
	}

	handler, err := Parse(f.Terms[3])
	if err != nil {
		return nil, err
	}

	return &ast.Catch{Body: body, Var: string(name), Handler: handler}, nil
}

func fn(f *term.Form) (ast.Expr, error) {
	if f.Len() != 3 {
		return nil, bad("fn", f)
	}

	formals, ok := names(f.Terms[1])
	if !ok {
		return nil, bad("fn", f)
	}

	body, err := Parse(f.Terms[2])
	if err != nil {
		return nil, err
	}

	return &ast.Fn{Formals: formals, Body: body}, nil
}

//nolint:cyclop
func form(f *term.Form) (ast.Expr, error) {
	if f.Len() == 0 {
		return call(f)
	}

	s, ok := f.Terms[0].(term.Sym)
	if !ok {
		return call(f)
	}

	switch s {
	case "catch":
		return catch(f)
	case "fn":
		return fn(f)
	case "if":
		return conditional(f)
	case "let":
		return let(f)
	case "obj":
		return object(f)
	case "seq":
		return seq(f)
	case "throw":
		return throw(f)
	}

	return call(f)
}

func conditional(f *term.Form) (ast.Expr, error) {
	if f.Len() != 4 {
		return nil, bad("if", f)
	}

	es, err := all(f.Terms[1:])
	if err != nil {
		return nil, err
	}

	return &ast.If{Test: es[0], Then: es[1], Else: es[2]}, nil
}

func let(f *term.Form) (ast.Expr, error) {
	if f.Len() != 3 {
		return nil, bad("let", f)
	}

	bindings, ok := f.Terms[1].(*term.Form)
	if !ok {
		return nil, bad("let", f)
	}

	names := make([]string, bindings.Len())
	inits := make([]term.T, bindings.Len())

	for i, b := range bindings.Terms {
		pair, ok := b.(*term.Form)
		if !ok || pair.Len() != 2 {
			return nil, bad("let", f)
		}

		name, ok := pair.Terms[0].(term.Sym)
		if !ok {
			return nil, bad("let", f)
		}

		names[i] = string(name)
		inits[i] = pair.Terms[1]
	}

	es, err := all(inits)
	if err != nil {
		return nil, err
	}

	body, err := Parse(f.Terms[2])
	if err != nil {
		return nil, err
	}

	return ast.NewLet(names, es, body), nil
}

// names returns the symbols in t, if t is a form containing only symbols.
func names(t term.T) ([]string, bool) {
	f, ok := t.(*term.Form)
	if !ok {
		return nil, false
	}

	ns := make([]string, f.Len())

	for i, t := range f.Terms {
		s, ok := t.(term.Sym)
		if !ok {
			return nil, false
		}

		ns[i] = string(s)
	}

	return ns, true
}

// object translates an obj form. Methods are added to the base from last
// to first so that the first method written is the most recent extension.
func object(f *term.Form) (ast.Expr, error) {
	clauses := f.Terms[1:]

	var base ast.Expr = &ast.Obj{}

	if n := len(clauses); n >= 2 && clauses[n-2] == term.Sym(Base) {
		b, err := Parse(clauses[n-1])
		if err != nil {
			return nil, err
		}

		base, clauses = b, clauses[:n-2]
	}

	for i := len(clauses) - 1; i >= 0; i-- {
		m, ok := clauses[i].(*term.Form)
		if !ok || m.Len() != 3 || !selector(m.Terms[0]) {
			return nil, bad("obj", f)
		}

		formals, ok := names(m.Terms[1])
		if !ok {
			return nil, bad("obj", f)
		}

		body, err := Parse(m.Terms[2])
		if err != nil {
			return nil, err
		}

		base = &ast.Extend{
			Selector: string(m.Terms[0].(term.Sym)),
			Formals:  formals,
			Body:     body,
			Base:     base,
		}
	}

	return base, nil
}

func selector(t term.T) bool {
	s, ok := t.(term.Sym)

	return ok && strings.HasPrefix(string(s), ":")
}

func seq(f *term.Form) (ast.Expr, error) {
	if f.Len() < 2 {
		return nil, bad("seq", f)
	}

	es, err := all(f.Terms[1:])
	if err != nil {
		return nil, err
	}

	return ast.NewSeq(es[0], es[1:]...), nil
}

func throw(f *term.Form) (ast.Expr, error) {
	if f.Len() != 2 {
		return nil, bad("throw", f)
	}

	exn, err := Parse(f.Terms[1])
	if err != nil {
		return nil, err
	}

	return &ast.Throw{Exn: exn}, nil
}
