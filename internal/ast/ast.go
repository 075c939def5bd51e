// Released under an MIT license. See LICENSE.

// Package ast provides umlang's abstract syntax.
//
// Expressions are immutable trees. Every expression is also a toplevel
// clause; Define is the only clause that is not an expression.
package ast

import (
	"github.com/michaelmacinnis/umlang/internal/reader/term"
)

// Clause is an expression or a definition.
type Clause interface {
	clause()
}

// Expr is an umlang expression.
type Expr interface {
	Clause
	expr()
}

// Bool is a boolean literal.
type Bool struct {
	Value bool
}

// Call is a function call.
type Call struct {
	Fn   Expr
	Args []Expr
}

// Catch evaluates Body. If Body throws, Handler is evaluated with Var
// bound to the thrown value.
type Catch struct {
	Body    Expr
	Var     string
	Handler Expr
}

// Define introduces or updates the global Name.
type Define struct {
	Name string
	Init Expr
}

// Extend extends the object produced by Base with a method responding to Selector.
type Extend struct {
	Selector string
	Formals  []string
	Body     Expr
	Base     Expr
}

// Fn is a function literal.
type Fn struct {
	Formals []string
	Body    Expr
}

// If is a conditional.
type If struct {
	Test Expr
	Then Expr
	Else Expr
}

// Let binds Names to the values of Inits, evaluated in the enclosing
// environment, and then evaluates Body.
type Let struct {
	Names []string
	Inits []Expr
	Body  Expr
}

// Num is a numeric literal.
type Num struct {
	Value float64
}

// Obj is the object with no methods.
type Obj struct{}

// Ref is a variable reference.
type Ref struct {
	Name string
}

// Send is a method call.
type Send struct {
	Receiver Expr
	Selector string
	Args     []Expr
}

// Seq evaluates Exprs in order. Its value is the value of the last one.
type Seq struct {
	Exprs []Expr
}

// Str is a string literal.
type Str struct {
	Value string
}

// Throw raises the value of Exn.
type Throw struct {
	Exn Expr
}

// NewLet creates a Let. There must be an initializer for each name.
func NewLet(names []string, inits []Expr, body Expr) *Let {
	if len(names) != len(inits) {
		panic("let requires an initializer for each name")
	}

	return &Let{Names: names, Inits: inits, Body: body}
}

// NewSeq creates a Seq with at least one expression.
func NewSeq(first Expr, rest ...Expr) *Seq {
	return &Seq{Exprs: append([]Expr{first}, rest...)}
}

// Unparse computes an approximation of the concrete syntax for e.
// It is not intended for round-tripping, just for showing what e means.
func Unparse(e Expr) term.T {
	switch e := e.(type) {
	case *Bool:
		if e.Value {
			return term.Sym("#t")
		}

		return term.Sym("#f")
	case *Call:
		ts := []term.T{Unparse(e.Fn)}

		return term.New(append(ts, unparseAll(e.Args)...)...)
	case *Catch:
		return term.New(
			term.Sym("catch"),
			Unparse(e.Body),
			term.New(term.Sym(e.Var)),
			Unparse(e.Handler),
		)
	case *Extend:
		ts := []term.T{term.Sym("obj")}

		var base Expr = e
		for {
			x, ok := base.(*Extend)
			if !ok {
				break
			}

			ts = append(ts, term.New(
				term.Sym(x.Selector),
				symbols(x.Formals),
				Unparse(x.Body),
			))
			base = x.Base
		}

		if _, ok := base.(*Obj); !ok {
			ts = append(ts, term.Sym("#:base"), Unparse(base))
		}

		return term.New(ts...)
	case *Fn:
		return term.New(term.Sym("fn"), symbols(e.Formals), Unparse(e.Body))
	case *If:
		return term.New(
			term.Sym("if"),
			Unparse(e.Test),
			Unparse(e.Then),
			Unparse(e.Else),
		)
	case *Let:
		bindings := make([]term.T, len(e.Names))
		for i, n := range e.Names {
			bindings[i] = term.New(term.Sym(n), Unparse(e.Inits[i]))
		}

		return term.New(term.Sym("let"), term.New(bindings...), Unparse(e.Body))
	case *Num:
		return term.Num(e.Value)
	case *Obj:
		return term.New(term.Sym("obj"))
	case *Ref:
		return term.Sym(e.Name)
	case *Send:
		ts := []term.T{Unparse(e.Receiver), term.Sym(e.Selector)}

		return term.New(append(ts, unparseAll(e.Args)...)...)
	case *Seq:
		ts := []term.T{term.Sym("seq")}

		return term.New(append(ts, unparseAll(e.Exprs)...)...)
	case *Str:
		return term.Str(e.Value)
	case *Throw:
		return term.New(term.Sym("throw"), Unparse(e.Exn))
	}

	panic("unexpected expression type")
}

// UnparseClause is Unparse extended to definitions.
func UnparseClause(c Clause) term.T {
	if d, ok := c.(*Define); ok {
		return term.New(term.Sym("define"), term.Sym(d.Name), Unparse(d.Init))
	}

	if e, ok := c.(Expr); ok {
		return Unparse(e)
	}

	panic("unexpected clause type")
}

func symbols(names []string) *term.Form {
	ts := make([]term.T, len(names))
	for i, n := range names {
		ts[i] = term.Sym(n)
	}

	return term.New(ts...)
}

func unparseAll(es []Expr) []term.T {
	ts := make([]term.T, len(es))
	for i, e := range es {
		ts[i] = Unparse(e)
	}

	return ts
}

func (*Bool) clause()   {}
func (*Call) clause()   {}
func (*Catch) clause()  {}
func (*Define) clause() {}
func (*Extend) clause() {}
func (*Fn) clause()     {}
func (*If) clause()     {}
func (*Let) clause()    {}
func (*Num) clause()    {}
func (*Obj) clause()    {}
func (*Ref) clause()    {}
func (*Send) clause()   {}
func (*Seq) clause()    {}
func (*Str) clause()    {}
func (*Throw) clause()  {}

func (*Bool) expr()   {}
func (*Call) expr()   {}
func (*Catch) expr()  {}
func (*Extend) expr() {}
func (*Fn) expr()     {}
func (*If) expr()     {}
func (*Let) expr()    {}
func (*Num) expr()    {}
func (*Obj) expr()    {}
func (*Ref) expr()    {}
func (*Send) expr()   {}
func (*Seq) expr()    {}
func (*Str) expr()    {}
func (*Throw) expr()  {}
