// Released under an MIT license. See LICENSE.

// Package fault provides the errors signalled while evaluating umlang code.
//
// The set of faults is closed. Every fault except UserException reports a
// misuse detected by the runtime and is fatal to the current evaluation.
// UserException carries a value raised by throw (or by a primitive) and is
// the only fault a catch expression can intercept.
package fault

import (
	"errors"
	"strconv"

	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
)

// I (fault) is implemented by every umlang evaluation error.
type I interface {
	error
	fault()
}

// BadArgumentCount is signalled when a routine is called with the wrong number of arguments.
type BadArgumentCount struct {
	Expected int
	Actual   int
}

// ExpectedBoolean is signalled when a conditional test is not a boolean.
type ExpectedBoolean struct {
	Actual value.I
}

// ExpectedCell is signalled when get or set is given something other than a cell.
type ExpectedCell struct {
	Actual value.I
}

// ExpectedClosure is signalled when something that is not callable is called.
type ExpectedClosure struct {
	Actual value.I
}

// ExpectedNumber is signalled when an arithmetic operand is not a number.
type ExpectedNumber struct {
	Actual value.I
}

// ExpectedObject is signalled when a method is sent to, or an object
// extension is based on, something other than an object.
type ExpectedObject struct {
	Actual value.I
}

// MethodNotFound is signalled when no method responds to Selector.
type MethodNotFound struct {
	Selector string
}

// UnboundVariable is signalled when Name is not in scope.
type UnboundVariable struct {
	Name string
}

// UninitializedGlobal is signalled when the global Name is used before its definition has run.
type UninitializedGlobal struct {
	Name string
}

// UserException carries a value raised with throw.
type UserException struct {
	Value value.I
}

func (e BadArgumentCount) Error() string {
	return "expected " + strconv.Itoa(e.Expected) +
		" arguments, got " + strconv.Itoa(e.Actual)
}

func (e ExpectedBoolean) Error() string {
	return "expected boolean: " + show(e.Actual)
}

func (e ExpectedCell) Error() string {
	return "expected cell: " + show(e.Actual)
}

func (e ExpectedClosure) Error() string {
	return "expected function: " + show(e.Actual)
}

func (e ExpectedNumber) Error() string {
	return "expected number: " + show(e.Actual)
}

func (e ExpectedObject) Error() string {
	return "expected object: " + show(e.Actual)
}

func (e MethodNotFound) Error() string {
	return "method not found: " + e.Selector
}

func (e UnboundVariable) Error() string {
	return "unbound variable: " + e.Name
}

func (e UninitializedGlobal) Error() string {
	return "uninitialized global variable: " + e.Name
}

func (e UserException) Error() string {
	return "exception thrown: " + show(e.Value)
}

func (BadArgumentCount) fault()    {}
func (ExpectedBoolean) fault()     {}
func (ExpectedCell) fault()        {}
func (ExpectedClosure) fault()     {}
func (ExpectedNumber) fault()      {}
func (ExpectedObject) fault()      {}
func (MethodNotFound) fault()      {}
func (UnboundVariable) fault()     {}
func (UninitializedGlobal) fault() {}
func (UserException) fault()       {}

// Is returns true if err is, or wraps, an umlang fault.
func Is(err error) bool {
	var f I

	return errors.As(err, &f)
}

// Raised returns the value carried by a UserException, if err is one.
func Raised(err error) (value.I, bool) {
	var ue UserException
	if errors.As(err, &ue) {
		return ue.Value, true
	}

	return nil, false
}

func show(v value.I) string {
	if v == nil {
		return "<nil>"
	}

	if _, ok := v.(literal.I); !ok {
		return v.Name()
	}

	return literal.String(v)
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	_ = I(BadArgumentCount{})
	_ = I(ExpectedBoolean{})
	_ = I(ExpectedCell{})
	_ = I(ExpectedClosure{})
	_ = I(ExpectedNumber{})
	_ = I(ExpectedObject{})
	_ = I(MethodNotFound{})
	_ = I(UnboundVariable{})
	_ = I(UninitializedGlobal{})
	_ = I(UserException{})
}
