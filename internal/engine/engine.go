// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for umlang code.
package engine

import (
	"io"
	"os"

	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/common/struct/global"
	"github.com/michaelmacinnis/umlang/internal/engine/interp"
	"github.com/michaelmacinnis/umlang/internal/engine/machine"
	"github.com/michaelmacinnis/umlang/internal/engine/primitive"
	"github.com/michaelmacinnis/umlang/internal/engine/recursive"
	"github.com/michaelmacinnis/umlang/internal/reader"
	"github.com/michaelmacinnis/umlang/internal/reader/parser"
)

// Config selects an evaluator and where its output goes.
type Config struct {
	// Machine selects the explicit-state evaluator.
	Machine bool

	// Stdout receives the output of display and newline. Defaults to os.Stdout.
	Stdout io.Writer

	// Trace, if not nil, receives every machine state. Implies Machine.
	Trace io.Writer
}

// T (engine) is a facade in front of the machinery for evaluating umlang code.
// Each T has its own global table.
type T struct {
	evaluator interp.Evaluator
	state     *interp.T
}

type engine = T

// New creates a new T.
func New(cfg Config) *engine {
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	state := interp.New(primitive.Table(stdout))

	var e interp.Evaluator

	if cfg.Machine || cfg.Trace != nil {
		m := machine.New(state)
		m.Trace = cfg.Trace
		e = m
	} else {
		e = recursive.New(state)
	}

	return &engine{evaluator: e, state: state}
}

// CallMethod sends selector to receiver with args.
func (e *engine) CallMethod(receiver value.I, selector string, args ...value.I) (value.I, error) {
	return e.evaluator.CallMethod(receiver, selector, args)
}

// Evaluate computes the value of x in the empty lexical environment.
func (e *engine) Evaluate(x ast.Expr) (value.I, error) {
	return e.evaluator.Evaluate(x, nil)
}

// EvaluateProgram runs program. The result is the value of the last clause
// when that clause is an expression; ok is false if the program was empty
// or ended with a definition.
func (e *engine) EvaluateProgram(program []ast.Clause) (v value.I, ok bool, err error) {
	return e.state.Run(e.evaluator, program)
}

// EvaluateProgramString reads, translates and runs the program in src.
func (e *engine) EvaluateProgramString(src string) (value.I, bool, error) {
	return e.run("string", src)
}

// EvaluateString reads and translates exactly one expression from src,
// and evaluates it.
func (e *engine) EvaluateString(src string) (value.I, error) {
	ts, err := reader.ReadAll("string", src)
	if err != nil {
		return nil, err
	}

	if len(ts) != 1 {
		return nil, ErrNotOneExpression
	}

	x, err := parser.Parse(ts[0])
	if err != nil {
		return nil, err
	}

	return e.Evaluate(x)
}

// Global returns the value of the global name and its status.
func (e *engine) Global(name string) (value.I, global.Status) {
	return e.state.Globals.Lookup(name)
}

// Load reads, translates and runs the program read from r. Label can be a
// file name or other identifier.
func (e *engine) Load(label string, r io.Reader) (value.I, bool, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, false, err
	}

	return e.run(label, string(b))
}

// LoadFile runs the program in the file at path.
func (e *engine) LoadFile(path string) (value.I, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	return e.Load(path, f)
}

func (e *engine) run(label, src string) (value.I, bool, error) {
	ts, err := reader.ReadAll(label, src)
	if err != nil {
		return nil, false, err
	}

	program, err := parser.ParseProgram(ts)
	if err != nil {
		return nil, false, err
	}

	return e.EvaluateProgram(program)
}
