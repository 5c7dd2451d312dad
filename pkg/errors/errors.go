// Package errors carries coded errors between the renderer, the CLI and the
// HTTP server.
//
// Every failure a user can see has a [Code]. The CLI turns validation codes
// into an inline message and exit status 2; the server turns codes into HTTP
// statuses. [UserMessage] strips the code for display:
//
//	err := errors.New(errors.ErrCodeMissingProblem, errors.MissingProblemMessage)
//	errors.Is(err, errors.ErrCodeMissingProblem) // true
//	errors.UserMessage(err)                      // "Type one sentence first."
//
// Codes group by prefix: INVALID_* and MISSING_* are input problems, NOT_FOUND
// and SESSION_NOT_FOUND are lookups, RATE_LIMITED is throttling and the rest
// are internal.
package errors

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Rejected input.
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeMissingProblem Code = "MISSING_PROBLEM"
	ErrCodeInputTooLong   Code = "INPUT_TOO_LONG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Lookups.
	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeSessionNotFound Code = "SESSION_NOT_FOUND"

	ErrCodeRateLimited Code = "RATE_LIMITED"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string // shown to users as-is
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap is [New] with a cause. The cause stays reachable through errors.Is
// and errors.As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// As is errors.As, re-exported so callers need only this package.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without its code. Errors without a code
// are returned verbatim.
func UserMessage(err error) string {
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err rejects user input. Callers show the
// message and do nothing else.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeMissingProblem, ErrCodeInputTooLong,
		ErrCodeInvalidFormat, ErrCodeInvalidPath:
		return true
	}
	return false
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// RateLimitedError is returned when a request is throttled.
type RateLimitedError struct {
	RetryAfter time.Duration // zero when unknown
	Message    string
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return "rate limited: retry after " + e.RetryAfter.String()
	}
	return "rate limited"
}

// Code always returns [ErrCodeRateLimited].
func (e *RateLimitedError) Code() Code { return ErrCodeRateLimited }

// RetryAfterSeconds rounds RetryAfter up to whole seconds for the
// Retry-After header. It returns 0 when no delay is known.
func (e *RateLimitedError) RetryAfterSeconds() int {
	if e.RetryAfter <= 0 {
		return 0
	}
	return int(math.Ceil(e.RetryAfter.Seconds()))
}
