package tachyon

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrUnexpectedEOF    = errors.New("unexpected end of input")
	ErrUnterminatedCall = errors.New("unterminated call")
	ErrTrailingInput    = errors.New("trailing input")
	ErrTooDeep          = errors.New("expression nested too deeply")

	ErrUnknownOperator = errors.New("unknown operator")
	ErrArity           = errors.New("wrong number of arguments")
)

// ParseError reports what the parser expected and the token it got.
type ParseError struct {
	Kind     error
	Expected string
	Got      Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at %d: expected %s, got %v", e.Kind, e.Got.Pos, e.Expected, e.Got)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// EvalError is returned when a call cannot be evaluated.
type EvalError struct {
	Op  string
	Err error
}

func (e *EvalError) Error() string {
	if e.Err == ErrUnknownOperator {
		return fmt.Sprintf("%v: %s", e.Err, e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
