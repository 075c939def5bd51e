// Released under an MIT license. See LICENSE.

// Package recursive provides umlang's reference evaluator.
//
// The evaluator follows the structure of the expression tree, one case per
// kind of expression. It uses the Go call stack to remember what to do
// next, so deeply nested expressions and deep non-tail recursion consume
// Go stack. See package machine for an evaluator that does not.
package recursive

import (
	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/common/type/boolean"
	"github.com/michaelmacinnis/umlang/internal/common/type/closure"
	"github.com/michaelmacinnis/umlang/internal/common/type/num"
	"github.com/michaelmacinnis/umlang/internal/common/type/obj"
	"github.com/michaelmacinnis/umlang/internal/common/type/str"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
	"github.com/michaelmacinnis/umlang/internal/engine/interp"
)

// T (recursive) is a recursive evaluator.
type T struct {
	*interp.T
}

type recursive = T

// New creates a recursive evaluator sharing the state in i.
func New(i *interp.T) *recursive {
	return &recursive{T: i}
}

// CallMethod sends selector to receiver with args.
func (r *recursive) CallMethod(receiver value.I, selector string, args []value.I) (value.I, error) {
	m, all, err := interp.Method(receiver, selector, args)
	if err != nil {
		return nil, err
	}

	return r.invoke(m, all)
}

// Evaluate computes the value of e in the lexical environment lexical.
//
//nolint:funlen,gocyclo
func (r *recursive) Evaluate(e ast.Expr, lexical *interp.Env) (value.I, error) {
	switch e := e.(type) {
	case *ast.Bool:
		return boolean.New(e.Value), nil

	case *ast.Call:
		f, err := r.Evaluate(e.Fn, lexical)
		if err != nil {
			return nil, err
		}

		args, err := r.evaluateAll(e.Args, lexical)
		if err != nil {
			return nil, err
		}

		return r.invoke(f, args)

	case *ast.Catch:
		v, err := r.Evaluate(e.Body, lexical)
		if exn, ok := fault.Raised(err); ok {
			return r.Evaluate(e.Handler, lexical.Bind(e.Var, exn))
		}

		return v, err

	case *ast.Extend:
		method := obj.Method(e.Formals, e.Body, lexical)

		v, err := r.Evaluate(e.Base, lexical)
		if err != nil {
			return nil, err
		}

		base, err := obj.To(v)
		if err != nil {
			return nil, err
		}

		return base.Extend(e.Selector, method), nil

	case *ast.Fn:
		return closure.New(e.Formals, e.Body, lexical), nil

	case *ast.If:
		v, err := r.Evaluate(e.Test, lexical)
		if err != nil {
			return nil, err
		}

		b, err := boolean.Value(v)
		if err != nil {
			return nil, err
		}

		if b {
			return r.Evaluate(e.Then, lexical)
		}

		return r.Evaluate(e.Else, lexical)

	case *ast.Let:
		vs, err := r.evaluateAll(e.Inits, lexical)
		if err != nil {
			return nil, err
		}

		return r.Evaluate(e.Body, lexical.Extend(e.Names, vs))

	case *ast.Num:
		return num.New(e.Value), nil

	case *ast.Obj:
		return obj.New(), nil

	case *ast.Ref:
		return r.Resolve(e.Name, lexical)

	case *ast.Send:
		receiver, err := r.Evaluate(e.Receiver, lexical)
		if err != nil {
			return nil, err
		}

		args, err := r.evaluateAll(e.Args, lexical)
		if err != nil {
			return nil, err
		}

		return r.CallMethod(receiver, e.Selector, args)

	case *ast.Seq:
		last := len(e.Exprs) - 1
		for _, x := range e.Exprs[:last] {
			if _, err := r.Evaluate(x, lexical); err != nil {
				return nil, err
			}
		}

		return r.Evaluate(e.Exprs[last], lexical)

	case *ast.Str:
		return str.New(e.Value), nil

	case *ast.Throw:
		v, err := r.Evaluate(e.Exn, lexical)
		if err != nil {
			return nil, err
		}

		return nil, fault.UserException{Value: v}
	}

	panic("unexpected expression type")
}

func (r *recursive) evaluateAll(es []ast.Expr, lexical *interp.Env) ([]value.I, error) {
	vs := make([]value.I, 0, len(es))

	for _, e := range es {
		v, err := r.Evaluate(e, lexical)
		if err != nil {
			return nil, err
		}

		vs = append(vs, v)
	}

	return vs, nil
}

func (r *recursive) invoke(callee value.I, args []value.I) (value.I, error) {
	i, err := interp.Invoke(callee, args)
	if err != nil {
		return nil, err
	}

	if i.Body == nil {
		return i.Value, nil
	}

	return r.Evaluate(i.Body, i.Env)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t recursive

	// The recursive type is an evaluator.
	_ = interp.Evaluator(&t)
}
