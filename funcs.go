package scicalc

import (
	"strconv"
)

// Func is a named function of one Number. A name that maps to a Func is
// parsed as a function call when it is followed by a parenthesized argument.
type Func func(x Number) (Number, error)

var globalfuncs = map[string]Func{
	"sqrt": Number.Sqrt,
	"ln":   Number.Ln,
}

// DefaultFuncs returns a copy of the functions every Evaluator starts with.
func DefaultFuncs() map[string]Func {
	m := make(map[string]Func, len(globalfuncs))
	for k, v := range globalfuncs {
		m[k] = v
	}
	return m
}

// DomainError is an error returned when an operation is applied to arguments
// outside its domain, such as division by zero or the logarithm of a negative
// number.
type DomainError struct {
	// X is the out-of-domain argument.
	X Number
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

// RangeError is an error returned when the result of an operation is too
// large to represent.
type RangeError struct {
	// Func is a name identifying the function or operator.
	Func string
}

func (err *RangeError) Error() string {
	return "result of " + err.Func + " out of range"
}
