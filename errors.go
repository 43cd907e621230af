package main

import (
	"errors"
	"fmt"
)

// Errors returned by expression evaluation. They are wrapped in an
// *EvalError and can be matched with errors.Is.
var (
	// ErrSyntax indicates a malformed expression.
	ErrSyntax = errors.New("syntax error")

	// ErrUnbalanced indicates a closing parenthesis without a matching opener.
	ErrUnbalanced = errors.New("unbalanced parentheses")

	// ErrUnknownFunction indicates a call to a function the evaluator does not provide.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrNotANumber indicates the buffer is not a plain number where one is required.
	ErrNotANumber = errors.New("not a number")

	// ErrDomain indicates an argument outside the domain of an operation.
	ErrDomain = errors.New("argument out of domain")
)

// EvalError describes a failed evaluation.
type EvalError struct {
	// Expr is the text being evaluated when the failure occurred.
	Expr string
	// Pos is the rune offset into Expr, or -1 when not applicable.
	Pos int
	// Msg adds detail to Err.
	Msg string
	// Err is one of the sentinel errors above.
	Err error
}

func (e *EvalError) Error() string {
	msg := e.Err.Error()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Pos >= 0 {
		return fmt.Sprintf("%q at %d: %s", e.Expr, e.Pos, msg)
	}
	return fmt.Sprintf("%q: %s", e.Expr, msg)
}

// Unwrap returns the sentinel cause.
func (e *EvalError) Unwrap() error {
	return e.Err
}

func evalErrorf(expr string, pos int, err error, format string, args ...any) *EvalError {
	return &EvalError{Expr: expr, Pos: pos, Msg: fmt.Sprintf(format, args...), Err: err}
}
