package dlm

import (
	"errors"
	"fmt"
)

// Application error codes. These are machine-readable; the Message on an
// Error is the human-readable part shown to the end user.
const (
	ECONFLICT    = "conflict"    // action cannot be performed without disambiguation
	EINTERNAL    = "internal"    // internal error
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // external collaborator or resource unavailable
)

// Error represents an application error with a machine-readable code and a
// human-readable message. End users only ever see the message, never a
// stack trace.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface. Not meant for end users; use
// ErrorMessage for user-facing output.
func (e *Error) Error() string {
	return fmt.Sprintf("dlm error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps err and returns its code, EINTERNAL for non-application
// errors, or the empty string if err is nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message, a generic message for
// non-application errors, or the empty string if err is nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
