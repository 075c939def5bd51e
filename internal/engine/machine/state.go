// Released under an MIT license. See LICENSE.

package machine

import (
	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/common/type/boolean"
	"github.com/michaelmacinnis/umlang/internal/common/type/closure"
	"github.com/michaelmacinnis/umlang/internal/common/type/num"
	"github.com/michaelmacinnis/umlang/internal/common/type/obj"
	"github.com/michaelmacinnis/umlang/internal/common/type/str"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
	"github.com/michaelmacinnis/umlang/internal/engine/interp"
)

// State is the complete state of a computation in progress.
type State interface {
	String() string

	next(m *machine) (State, error)
}

// The apply type is a machine about to give v to the top frame of k.
type apply struct {
	v value.I
	k *stack
}

// The eval type is a machine about to evaluate e in env. The value will be
// given to the top frame of k.
type eval struct {
	e   ast.Expr
	env *interp.Env
	k   *stack
}

// The unwind type is a machine propagating the thrown value exn. Frames
// are discarded until a catch frame is found.
type unwind struct {
	exn value.I
	k   *stack
}

// Final returns the result of the computation if s is a finished state.
func Final(s State) (value.I, bool) {
	if a, ok := s.(*apply); ok && a.k == done {
		return a.v, true
	}

	return nil, false
}

// Start returns the initial state for evaluating e in lexical.
func Start(e ast.Expr, lexical *interp.Env) State {
	return &eval{e: e, env: lexical, k: done}
}

func (s *apply) String() string {
	return "apply " + literal.String(s.v) + " | " + s.k.String()
}

func (s *apply) next(m *machine) (State, error) {
	if s.k == done {
		// The machine stops before reducing a final state.
		panic("no frame to apply a value to")
	}

	f, k := s.k.pop()

	return f.resume(m, s.v, k)
}

func (s *eval) String() string {
	return "eval " + ast.Unparse(s.e).String() + " | " + s.k.String()
}

// Literals and references produce a value immediately. Every other kind
// of expression pushes the frame that will resume it and starts on its
// first subexpression.
//
//nolint:funlen,gocyclo
func (s *eval) next(m *machine) (State, error) {
	k := s.k

	switch e := s.e.(type) {
	case *ast.Bool:
		return &apply{v: boolean.New(e.Value), k: k}, nil

	case *ast.Call:
		return &eval{
			e:   e.Fn,
			env: s.env,
			k:   k.push(&callFrame{args: e.Args, env: s.env}),
		}, nil

	case *ast.Catch:
		return &eval{
			e:   e.Body,
			env: s.env,
			k: k.push(&catchFrame{
				env:     s.env,
				handler: e.Handler,
				name:    e.Var,
			}),
		}, nil

	case *ast.Extend:
		return &eval{
			e:   e.Base,
			env: s.env,
			k: k.push(&extendFrame{
				method:   obj.Method(e.Formals, e.Body, s.env),
				selector: e.Selector,
			}),
		}, nil

	case *ast.Fn:
		return &apply{v: closure.New(e.Formals, e.Body, s.env), k: k}, nil

	case *ast.If:
		return &eval{
			e:   e.Test,
			env: s.env,
			k: k.push(&ifFrame{
				env:  s.env,
				then: e.Then,
				els:  e.Else,
			}),
		}, nil

	case *ast.Let:
		body, outer := e.Body, s.env
		names := e.Names

		return evalList(e.Inits, s.env, k, nil,
			func(vs []value.I, k *stack) (State, error) {
				return &eval{e: body, env: outer.Extend(names, vs), k: k}, nil
			},
		)

	case *ast.Num:
		return &apply{v: num.New(e.Value), k: k}, nil

	case *ast.Obj:
		return &apply{v: obj.New(), k: k}, nil

	case *ast.Ref:
		v, err := m.Resolve(e.Name, s.env)
		if err != nil {
			return nil, err
		}

		return &apply{v: v, k: k}, nil

	case *ast.Send:
		return &eval{
			e:   e.Receiver,
			env: s.env,
			k: k.push(&sendFrame{
				args:     e.Args,
				env:      s.env,
				selector: e.Selector,
			}),
		}, nil

	case *ast.Seq:
		if len(e.Exprs) > 1 {
			k = k.push(&seqFrame{env: s.env, rest: e.Exprs[1:]})
		}

		return &eval{e: e.Exprs[0], env: s.env, k: k}, nil

	case *ast.Str:
		return &apply{v: str.New(e.Value), k: k}, nil

	case *ast.Throw:
		return &eval{e: e.Exn, env: s.env, k: k.push(throwFrame{})}, nil
	}

	panic("unexpected expression type")
}

func (s *unwind) String() string {
	return "unwind " + literal.String(s.exn) + " | " + s.k.String()
}

func (s *unwind) next(_ *machine) (State, error) {
	if s.k == done {
		return nil, fault.UserException{Value: s.exn}
	}

	f, k := s.k.pop()
	if c, ok := f.(*catchFrame); ok {
		return &eval{e: c.handler, env: c.env.Bind(c.name, s.exn), k: k}, nil
	}

	return &unwind{exn: s.exn, k: k}, nil
}
