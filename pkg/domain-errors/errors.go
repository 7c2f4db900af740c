// Package domainerrors carries coded errors across service boundaries.
//
// Services return *Error values (optionally wrapping an infrastructure cause)
// so callers can branch on the Code without string matching. Codes are flat
// and non-overlapping; the attendance codes are surfaced verbatim to callers.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error classification.
type Code string

const (
	// Generic codes.
	CodeInternal     Code = "internal"
	CodeInvalidInput Code = "invalid_input"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeUnavailable  Code = "unavailable"

	// Account layer.
	CodeInvalidCredentials Code = "invalid_credentials"

	// Attendance gate.
	CodeNoCurrentUser        Code = "no_current_user"
	CodeAlreadyCheckedIn     Code = "already_checked_in"
	CodeAlreadyCheckedOut    Code = "already_checked_out"
	CodeBiometricUnavailable Code = "biometric_unavailable"
	CodeBiometricNotMatched  Code = "biometric_not_matched"
	CodeLocationUnauthorized Code = "location_unauthorized"
	CodeLocationOutOfZone    Code = "location_out_of_zone"
)

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a coded error without a cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether the outermost coded error in err's chain has code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// CodeOf returns the code of the outermost *Error in the chain, or
// CodeInternal when err carries no code. It returns "" for a nil error.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// IsAttendanceFailure reports whether code belongs to the gate's taxonomy
// rather than an infrastructure failure.
func IsAttendanceFailure(code Code) bool {
	switch code {
	case CodeNoCurrentUser, CodeAlreadyCheckedIn, CodeAlreadyCheckedOut,
		CodeBiometricUnavailable, CodeBiometricNotMatched,
		CodeLocationUnauthorized, CodeLocationOutOfZone,
		CodeInvalidCredentials:
		return true
	}
	return false
}
