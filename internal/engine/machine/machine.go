// Released under an MIT license. See LICENSE.

// Package machine provides umlang's explicit-state evaluator.
//
// The machine represents the rest of the computation as data: a stack of
// frames, each recording what to do with the value it is waiting for. A
// computation is a sequence of states, and the machine reduces one state to
// the next in a loop until a value reaches an empty stack. Nothing in a
// reduction calls back into the evaluator, so the depth of the Go stack does
// not depend on the program being run. Deep programs only grow the frame
// stack.
//
// There are three kinds of state:
//
//	eval EXPR ENV | STACK    evaluate EXPR in ENV, give the value to STACK
//	apply VALUE | STACK      give VALUE to the frame on top of STACK
//	unwind VALUE | STACK     VALUE was thrown, pop frames until a catch
//
// Faults other than thrown values stop the machine immediately and are
// returned to the caller. They are never seen by a catch frame.
package machine

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/engine/fault"
	"github.com/michaelmacinnis/umlang/internal/engine/interp"
)

// T (machine) is an explicit-state evaluator.
type T struct {
	*interp.T

	// Trace, if not nil, receives every state before it is reduced.
	Trace io.Writer
}

type machine = T

// New creates a machine sharing the state in i.
func New(i *interp.T) *machine {
	return &machine{T: i}
}

// CallMethod sends selector to receiver with args.
func (m *machine) CallMethod(receiver value.I, selector string, args []value.I) (value.I, error) {
	method, all, err := interp.Method(receiver, selector, args)
	if err != nil {
		return nil, err
	}

	s, err := m.invoke(method, all, done)
	if err != nil {
		return nil, err
	}

	return m.Run(s)
}

// Evaluate computes the value of e in the lexical environment lexical.
func (m *machine) Evaluate(e ast.Expr, lexical *interp.Env) (value.I, error) {
	return m.Run(Start(e, lexical))
}

// Run reduces s until a value is delivered to an empty stack.
func (m *machine) Run(s State) (value.I, error) {
	for {
		if v, ok := Final(s); ok {
			return v, nil
		}

		if m.Trace != nil {
			fmt.Fprintln(m.Trace, s)
		}

		var err error

		s, err = m.Step(s)
		if err != nil {
			return nil, err
		}
	}
}

// Step reduces s to the next state.
func (m *machine) Step(s State) (State, error) {
	return s.next(m)
}

func (m *machine) invoke(callee value.I, args []value.I, k *stack) (State, error) {
	i, err := interp.Invoke(callee, args)
	if err != nil {
		// A primitive may raise a value just as throw does.
		if exn, ok := fault.Raised(err); ok {
			return &unwind{exn: exn, k: k}, nil
		}

		return nil, err
	}

	if i.Body == nil {
		return &apply{v: i.Value, k: k}, nil
	}

	// A call adds no frame. Calls in tail position run in constant space.
	return &eval{e: i.Body, env: i.Env, k: k}, nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t machine

	// The machine type is an evaluator.
	_ = interp.Evaluator(&t)

	// These types are states.
	_ = State(&apply{})
	_ = State(&eval{})
	_ = State(&unwind{})

	// These types are frames.
	_ = frame(&callFrame{})
	_ = frame(&catchFrame{})
	_ = frame(&extendFrame{})
	_ = frame(&ifFrame{})
	_ = frame(&listFrame{})
	_ = frame(&sendFrame{})
	_ = frame(&seqFrame{})
	_ = frame(throwFrame{})
}
