package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an application error
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested champion or record does not exist
	CodeNotFound Code = "not_found"

	// CodeInternal indicates an internal failure
	CodeInternal Code = "internal"

	// CodeUnavailable indicates a remote data source could not be reached
	CodeUnavailable Code = "unavailable"

	// CodeValidation indicates data that does not match the expected schema
	CodeValidation Code = "validation"
)

// Error is an application error carrying a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a metadata value and returns the same error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap adds context to err, keeping the code when err is already an *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var castErr *Error
	if errors.As(err, &castErr) {
		return &Error{
			Code:    castErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(castErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and forces the given code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func Validation(message string) *Error {
	return New(CodeValidation, message)
}

func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

func Unavailablef(format string, args ...any) *Error {
	return Newf(CodeUnavailable, format, args...)
}

// Is reports whether err carries the given code anywhere in its chain
func Is(err error, code Code) bool {
	var castErr *Error
	if errors.As(err, &castErr) {
		return castErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

func IsUnavailable(err error) bool {
	return Is(err, CodeUnavailable)
}

// GetCode returns the code of err, or CodeUnknown
func GetCode(err error) Code {
	var castErr *Error
	if errors.As(err, &castErr) {
		return castErr.Code
	}
	return CodeUnknown
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
