// Released under an MIT license. See LICENSE.

// Package interp provides the parts of umlang evaluation that do not depend
// on how an evaluator represents the control stack: name resolution, the
// invocation protocol and the toplevel program driver.
package interp

import (
	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/common/struct/env"
	"github.com/michaelmacinnis/umlang/internal/common/struct/global"
	"github.com/michaelmacinnis/umlang/internal/common/type/closure"
	"github.com/michaelmacinnis/umlang/internal/common/type/obj"
	"github.com/michaelmacinnis/umlang/internal/common/type/prim"
	"github.com/michaelmacinnis/umlang/internal/common/validate"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
)

// Env is a lexical environment of runtime values.
type Env = env.T[value.I]

// Evaluator is implemented by each of umlang's evaluators.
type Evaluator interface {
	// Evaluate computes the value of e in the lexical environment lexical.
	Evaluate(e ast.Expr, lexical *Env) (value.I, error)

	// CallMethod sends selector to receiver outside of any expression.
	CallMethod(receiver value.I, selector string, args []value.I) (value.I, error)
}

// Invocation is the result of applying the invocation protocol. A closure
// call yields the Body to evaluate in Env. A primitive call has already
// been performed and yields its Value.
type Invocation struct {
	Body  ast.Expr
	Env   *Env
	Value value.I
}

// T (interp) holds the state shared by evaluations: the global table and
// the primitive table.
type T struct {
	Globals    *global.T
	Primitives *Env
}

type interp = T

// New creates evaluation state with an empty global table.
func New(primitives *Env) *interp {
	return &interp{
		Globals:    global.New(),
		Primitives: primitives,
	}
}

// Invoke calls callee with args.
//
// A closure is not run. Instead its body and the environment to run it in
// are returned so that the evaluator can decide how to continue. A
// primitive is run immediately and any fault it signals is returned as is.
func Invoke(callee value.I, args []value.I) (Invocation, error) {
	switch c := callee.(type) {
	case *closure.T:
		if err := validate.Fixed(args, len(c.Formals)); err != nil {
			return Invocation{}, err
		}

		return Invocation{Body: c.Body, Env: c.Bind(args)}, nil
	case *prim.T:
		if err := validate.Fixed(args, c.Arity); err != nil {
			return Invocation{}, err
		}

		v, err := c.Proc(args)
		if err != nil {
			return Invocation{}, err
		}

		return Invocation{Value: v}, nil
	}

	return Invocation{}, fault.ExpectedClosure{Actual: callee}
}

// Method finds the method that responds to selector on receiver and
// returns it with the argument list it expects: receiver, then args.
func Method(receiver value.I, selector string, args []value.I) (value.I, []value.I, error) {
	o, err := obj.To(receiver)
	if err != nil {
		return nil, nil, err
	}

	m, err := o.Lookup(selector)
	if err != nil {
		return nil, nil, err
	}

	return m, append([]value.I{receiver}, args...), nil
}

// Resolve finds the value of the free reference k.
//
// The lexical environment is searched first, then the global table, and
// then the primitives. A global that has been declared but not yet
// initialized is an error distinct from a name that is not bound at all.
func (i *interp) Resolve(k string, lexical *Env) (value.I, error) {
	if v, ok := lexical.Lookup(k); ok {
		return v, nil
	}

	v, status := i.Globals.Lookup(k)

	switch status {
	case global.Initialized:
		return v, nil
	case global.Declared:
		return nil, fault.UninitializedGlobal{Name: k}
	case global.Absent:
	}

	if v, ok := i.Primitives.Lookup(k); ok {
		return v, nil
	}

	return nil, fault.UnboundVariable{Name: k}
}

// Run declares every definition in program and then evaluates each clause
// in order. Definitions update the global table. The result is the value of
// the last clause when that clause is an expression; ok is false if the
// program was empty or ended with a definition.
func (i *interp) Run(e Evaluator, program []ast.Clause) (v value.I, ok bool, err error) {
	for _, c := range program {
		if d, isDefine := c.(*ast.Define); isDefine {
			i.Globals.Declare(d.Name)
		}
	}

	for _, c := range program {
		switch c := c.(type) {
		case *ast.Define:
			r, err := e.Evaluate(c.Init, nil)
			if err != nil {
				return nil, false, err
			}

			i.Globals.Set(c.Name, r)

			v, ok = nil, false
		case ast.Expr:
			v, err = e.Evaluate(c, nil)
			if err != nil {
				return nil, false, err
			}

			ok = true
		default:
			panic("unexpected clause type")
		}
	}

	return v, ok, nil
}
