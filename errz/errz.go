// Package errz defines the structured error types shared by the bfgo
// compiler and virtual machine.
package errz

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrSyntax indicates unbalanced loop brackets, detected at compile time.
	ErrSyntax ErrorKind = iota
	// ErrOverflow indicates the data pointer moved past the end of the tape.
	ErrOverflow
	// ErrUnderflow indicates the data pointer moved before the start of the tape.
	ErrUnderflow
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrOverflow:
		return "overflow error"
	case ErrUnderflow:
		return "underflow error"
	default:
		return "error"
	}
}

// InterpreterError is a structured error carrying the error category and,
// for compile errors, the byte offset of the offending source character.
type InterpreterError struct {
	Kind    ErrorKind
	Message string

	// Offset is the byte offset into the source text, or -1 when the error
	// has no source position (runtime faults).
	Offset int
}

// Error implements the error interface.
func (e *InterpreterError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
	}
	return fmt.Sprintf("%s: %s (offset %d)", e.Kind.String(), e.Message, e.Offset)
}

// New creates an InterpreterError with no source position.
func New(kind ErrorKind, format string, args ...any) *InterpreterError {
	return &InterpreterError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Offset:  -1,
	}
}

// NewAt creates an InterpreterError positioned at a byte offset in the source.
func NewAt(kind ErrorKind, offset int, format string, args ...any) *InterpreterError {
	return &InterpreterError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	}
}

// IsKind reports whether err is an InterpreterError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ie *InterpreterError
	return errors.As(err, &ie) && ie.Kind == kind
}
