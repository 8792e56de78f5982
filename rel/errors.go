package rel

import (
	"errors"
	"fmt"

	"github.com/roach88/bitrel/engine"
)

// ErrorCode categorizes relation-layer errors.
type ErrorCode string

const (
	// ErrCodeInvalidDimension indicates row/column counts that violate
	// the "both zero or both positive" invariant, or operands whose
	// dimensions do not satisfy the operation's rule.
	ErrCodeInvalidDimension ErrorCode = "INVALID_DIMENSION"

	// ErrCodeInvalidArgument indicates an out-of-contract input the
	// layer checks locally, such as an out-of-range probability.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeTypeMismatch indicates a nil or already-destroyed operand.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodeContextMismatch indicates an operand minted by a different
	// context.
	ErrCodeContextMismatch ErrorCode = "CONTEXT_MISMATCH"

	// ErrCodeInvalidBitPair indicates a malformed coordinate pair in a
	// bit sequence.
	ErrCodeInvalidBitPair ErrorCode = "INVALID_BIT_PAIR"

	// ErrCodeEngineFailure indicates the engine reported a failure; the
	// error carries the engine's message and integer code.
	ErrCodeEngineFailure ErrorCode = "ENGINE_FAILURE"
)

// Error is the typed error every rel operation returns.
//
// Locally detected violations (all codes except ErrCodeEngineFailure)
// are raised before any engine call, so no engine resource is mutated
// on a local error.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// EngineCode is the engine-reported integer code. Set only when
	// Code is ErrCodeEngineFailure.
	EngineCode int

	// Err is the underlying engine error, when one exists.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code == ErrCodeEngineFailure {
		return fmt.Sprintf("%s: %s (engine code=%d)", e.Code, e.Message, e.EngineCode)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying engine error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds a locally detected *Error.
func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// engineFailure translates an engine failure into the typed domain
// error, preserving the engine's message and code.
func engineFailure(err error) *Error {
	if ee, ok := engine.AsError(err); ok {
		return &Error{
			Code:       ErrCodeEngineFailure,
			Message:    ee.Message,
			EngineCode: ee.Code,
			Err:        err,
		}
	}
	return &Error{Code: ErrCodeEngineFailure, Message: err.Error(), Err: err}
}

// codeOf extracts the ErrorCode from err, or "" if err is not a rel error.
// Uses errors.As to handle wrapped errors.
func codeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsInvalidDimension reports whether err is a dimension violation.
func IsInvalidDimension(err error) bool { return codeOf(err) == ErrCodeInvalidDimension }

// IsInvalidArgument reports whether err is a local argument violation.
func IsInvalidArgument(err error) bool { return codeOf(err) == ErrCodeInvalidArgument }

// IsTypeMismatch reports whether err is a nil/destroyed operand error.
func IsTypeMismatch(err error) bool { return codeOf(err) == ErrCodeTypeMismatch }

// IsContextMismatch reports whether err is a cross-context operand error.
func IsContextMismatch(err error) bool { return codeOf(err) == ErrCodeContextMismatch }

// IsInvalidBitPair reports whether err is a malformed bit pair error.
func IsInvalidBitPair(err error) bool { return codeOf(err) == ErrCodeInvalidBitPair }

// IsEngineFailure reports whether err is an engine-reported failure.
func IsEngineFailure(err error) bool { return codeOf(err) == ErrCodeEngineFailure }
