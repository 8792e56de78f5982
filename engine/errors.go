package engine

import (
	"errors"
	"fmt"
)

// Error code values are stable across releases; callers may persist or
// switch on them.
const (
	// CodeOutOfRange indicates a row or column outside the relation.
	CodeOutOfRange = 1

	// CodeDimensionMismatch indicates operands whose dimensions do not
	// satisfy the operation's rule.
	CodeDimensionMismatch = 2

	// CodeManagerClosed indicates a call through a closed manager.
	CodeManagerClosed = 3

	// CodeExhausted indicates a vector enumeration advanced past its
	// last row.
	CodeExhausted = 4

	// CodeForeignHandle indicates an operand handle minted by a
	// different engine implementation.
	CodeForeignHandle = 5
)

// Error is the failure an engine primitive reports: a human-readable
// message and a stable integer code.
type Error struct {
	Message string
	Code    int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("engine: %s (code=%d)", e.Message, e.Code)
}

// Errorf builds an *Error with a formatted message.
func Errorf(code int, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Code: code}
}

// AsError extracts the *Error from err, unwrapping as needed.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsExhausted reports whether err is an enumeration-exhausted failure.
// Uses errors.As to handle wrapped errors.
func IsExhausted(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == CodeExhausted
}
