package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes a failure so callers can branch without string matching
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument" // nil or malformed input
	CodeNotFound        Code = "not_found"        // missing record or catalog entry
	CodeAlreadyExists   Code = "already_exists"
	CodeInternal        Code = "internal"    // RNG or invariant failure
	CodeUnavailable     Code = "unavailable" // backing store down
	CodeValidation      Code = "validation"  // rulebook or roster data rejected
)

// Error is a coded failure with optional cause and context
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// WithMeta attaches a context key and returns e for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error { return Newf(CodeAlreadyExists, format, args...) }

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

func Validation(message string) *Error { return New(CodeValidation, message) }

func Validationf(format string, args ...any) *Error { return Newf(CodeValidation, format, args...) }

// Wrap adds message in front of err. A coded cause lends its code and a copy
// of its meta; anything else wraps as CodeUnknown. Nil stays nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	if coded, ok := as(err); ok {
		wrapped.Code = coded.Code
		wrapped.Meta = maps.Clone(coded.Meta)
	}
	return wrapped
}

func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides whatever code it carried
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func as(err error) (*Error, bool) {
	var coded *Error
	ok := errors.As(err, &coded)
	return coded, ok
}

// GetCode returns the outermost code in err's chain, or CodeUnknown
func GetCode(err error) Code {
	if coded, ok := as(err); ok {
		return coded.Code
	}
	return CodeUnknown
}

// GetMeta returns the outermost meta in err's chain
func GetMeta(err error) map[string]any {
	if coded, ok := as(err); ok {
		return coded.Meta
	}
	return nil
}

func Is(err error, code Code) bool {
	coded, ok := as(err)
	return ok && coded.Code == code
}

func IsNotFound(err error) bool { return Is(err, CodeNotFound) }

func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }

func IsAlreadyExists(err error) bool { return Is(err, CodeAlreadyExists) }

func IsValidation(err error) bool { return Is(err, CodeValidation) }
