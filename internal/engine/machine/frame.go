// Released under an MIT license. See LICENSE.

package machine

import (
	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/common/type/boolean"
	"github.com/michaelmacinnis/umlang/internal/common/type/closure"
	"github.com/michaelmacinnis/umlang/internal/common/type/obj"
	"github.com/michaelmacinnis/umlang/internal/engine/interp"
)

// A frame is a suspended fragment of a computation. When a value is given
// to the frame on top of a stack, resume is called with that value and the
// rest of the stack, and returns the next state.
type frame interface {
	String() string

	resume(m *machine, v value.I, k *stack) (State, error)
}

// The completion type is called by a list frame with every value of the
// list, in order, once the last expression in the list has been evaluated.
type completion func(vs []value.I, k *stack) (State, error)

// The callFrame type waits for the function in a call.
//
// Resumes:
//
//	v:     Function
//	stack: callFrame(args, env) ...
//
// Result:
//
//	eval Arg_0 env | listFrame(..., invoke Function) ...
type callFrame struct {
	args []ast.Expr
	env  *interp.Env
}

// The catchFrame type marks an active catch. A value that arrives normally
// passes through unchanged. When a thrown value is unwinding, this is where
// it stops: see unwind.next.
type catchFrame struct {
	env     *interp.Env
	handler ast.Expr
	name    string
}

// The extendFrame type waits for the base object of an extension.
//
// Resumes:
//
//	v:     Base
//	stack: extendFrame(method, selector) ...
//
// Result:
//
//	apply Base+{selector: method} | ...
type extendFrame struct {
	method   *closure.T
	selector string
}

// The ifFrame type waits for the test of a conditional and then chooses
// a branch.
type ifFrame struct {
	env  *interp.Env
	then ast.Expr
	els  ast.Expr
}

// The listFrame type is part way through evaluating a list of expressions.
// Values so far are held most recent first.
//
// Resumes:
//
//	v:     Value_i
//	stack: listFrame(Value_i-1 ... Value_0, complete, env, Arg_i+1 ... Arg_N) ...
//
// Result:
//
//	eval Arg_i+1 env | listFrame(Value_i ... Value_0, ...) ...
//
// Or, if no expressions remain, the result of complete(Value_0 ... Value_N).
type listFrame struct {
	complete completion
	env      *interp.Env
	rest     []ast.Expr
	values   *values
}

// The sendFrame type waits for the receiver of a method call.
//
// Resumes:
//
//	v:     Receiver
//	stack: sendFrame(args, env, selector) ...
//
// Result:
//
//	eval Arg_0 env | listFrame(..., invoke Receiver.selector) ...
type sendFrame struct {
	args     []ast.Expr
	env      *interp.Env
	selector string
}

// The seqFrame type discards the value of an expression in a sequence and
// evaluates the rest. There is always at least one expression in rest.
type seqFrame struct {
	env  *interp.Env
	rest []ast.Expr
}

// The throwFrame type turns the value it receives into a thrown value.
type throwFrame struct{}

// The values type is an immutable list of values, most recent first.
type values struct {
	v    value.I
	next *values
}

func (f *callFrame) String() string {
	return "call"
}

func (f *callFrame) resume(m *machine, v value.I, k *stack) (State, error) {
	return evalList(f.args, f.env, k, nil,
		func(args []value.I, k *stack) (State, error) {
			return m.invoke(v, args, k)
		},
	)
}

func (f *catchFrame) String() string {
	return "catch"
}

func (f *catchFrame) resume(_ *machine, v value.I, k *stack) (State, error) {
	return &apply{v: v, k: k}, nil
}

func (f *extendFrame) String() string {
	return "extend"
}

func (f *extendFrame) resume(_ *machine, v value.I, k *stack) (State, error) {
	base, err := obj.To(v)
	if err != nil {
		return nil, err
	}

	return &apply{v: base.Extend(f.selector, f.method), k: k}, nil
}

func (f *ifFrame) String() string {
	return "if"
}

func (f *ifFrame) resume(_ *machine, v value.I, k *stack) (State, error) {
	b, err := boolean.Value(v)
	if err != nil {
		return nil, err
	}

	if b {
		return &eval{e: f.then, env: f.env, k: k}, nil
	}

	return &eval{e: f.els, env: f.env, k: k}, nil
}

func (f *listFrame) String() string {
	return "list"
}

func (f *listFrame) resume(_ *machine, v value.I, k *stack) (State, error) {
	vs := &values{v: v, next: f.values}

	if len(f.rest) == 0 {
		return f.complete(vs.slice(), k)
	}

	return evalList(f.rest, f.env, k, vs, f.complete)
}

func (f *sendFrame) String() string {
	return "send"
}

func (f *sendFrame) resume(m *machine, v value.I, k *stack) (State, error) {
	selector := f.selector

	return evalList(f.args, f.env, k, nil,
		func(args []value.I, k *stack) (State, error) {
			method, all, err := interp.Method(v, selector, args)
			if err != nil {
				return nil, err
			}

			return m.invoke(method, all, k)
		},
	)
}

func (f *seqFrame) String() string {
	return "seq"
}

func (f *seqFrame) resume(_ *machine, _ value.I, k *stack) (State, error) {
	if len(f.rest) > 1 {
		k = k.push(&seqFrame{env: f.env, rest: f.rest[1:]})
	}

	return &eval{e: f.rest[0], env: f.env, k: k}, nil
}

func (f throwFrame) String() string {
	return "throw"
}

func (f throwFrame) resume(_ *machine, v value.I, k *stack) (State, error) {
	return &unwind{exn: v, k: k}, nil
}

// evalList evaluates each expression in es, in order, and then calls
// complete with the values of the expressions. The values in acc, most
// recent first, precede the values of es.
func evalList(es []ast.Expr, env *interp.Env, k *stack, acc *values, complete completion) (State, error) {
	if len(es) == 0 {
		return complete(acc.slice(), k)
	}

	return &eval{
		e:   es[0],
		env: env,
		k: k.push(&listFrame{
			complete: complete,
			env:      env,
			rest:     es[1:],
			values:   acc,
		}),
	}, nil
}

// slice returns the values in vs, least recent first.
func (vs *values) slice() []value.I {
	n := 0
	for p := vs; p != nil; p = p.next {
		n++
	}

	s := make([]value.I, n)
	for p := vs; p != nil; p = p.next {
		n--
		s[n] = p.v
	}

	return s
}
