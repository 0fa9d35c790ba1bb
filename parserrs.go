package scicalc

import (
	"errors"
	"strconv"
)

// ErrSyntax is the error every failed Evaluate call matches with errors.Is.
// The specific cause remains available through errors.As.
var ErrSyntax = errors.New("syntax error")

// SyntaxError wraps any error encountered while evaluating an expression.
type SyntaxError struct {
	// Err is the underlying cause.
	Err error
}

func (err *SyntaxError) Error() string {
	return "syntax error: " + err.Err.Error()
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// Is makes every SyntaxError match ErrSyntax.
func (err *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// BracketError is an error indicating mismatched parentheses in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, if it was not closed.
	Left string
	// Right is the closing parenthesis, if it closes nothing.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function name that is not immediately
// followed by a parenthesized argument. It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, "function "+err.Func+" must be followed by (")
}

func (err *CallError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or an empty
// pair of parentheses. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string if
	// the whole input was empty.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// MolarError is an error from computing the mass inside an M(...) call. It
// implements InputError and unwraps to the error from package molar.
type MolarError struct {
	// Col is the position of the call.
	Col int
	// Formula is the formula inside the call.
	Formula string
	// Err is the error computing the formula's mass.
	Err error
}

func (err *MolarError) Error() string {
	return errpos(err.Col, "M("+err.Formula+"): "+err.Err.Error())
}

func (err *MolarError) Pos() int {
	return err.Col
}

func (err *MolarError) Unwrap() error {
	return err.Err
}

// UnknownTokenError is an error indicating a word that is neither a function
// nor a keyword. It implements InputError.
type UnknownTokenError struct {
	// Col is the position of the word.
	Col int
	// Token is the word.
	Token string
}

func (err *UnknownTokenError) Error() string {
	return errpos(err.Col, "unknown token "+strconv.Quote(err.Token))
}

func (err *UnknownTokenError) Pos() int {
	return err.Col
}

// MalformedError is an error indicating that an expression does not reduce to
// exactly one value, e.g. "2 3" or "*4". It implements InputError.
type MalformedError struct {
	// Col is the position of the operator that lacked operands, or 0 if the
	// expression left the wrong number of values.
	Col int
	// Op is the operator that lacked operands, if any.
	Op string
	// Values is the number of values the expression left.
	Values int
}

func (err *MalformedError) Error() string {
	if err.Op != "" {
		return errpos(err.Col, "missing operand for "+err.Op)
	}
	return "malformed expression: " + strconv.Itoa(err.Values) + " values"
}

func (err *MalformedError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*MolarError)(nil)
	_ InputError = (*UnknownTokenError)(nil)
	_ InputError = (*MalformedError)(nil)
)
