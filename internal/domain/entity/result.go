package entity

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failed navigation or popup operation.
type ErrorCode int

const (
	ErrorCodeNone ErrorCode = iota
	// ErrorCodeInvalidState means the current page hierarchy forbids the request.
	ErrorCodeInvalidState
	// ErrorCodeNotSupported means the request does not apply to this kind of container.
	ErrorCodeNotSupported
	// ErrorCodeCancelled means the operation or the awaited result was cancelled.
	ErrorCodeCancelled
	// ErrorCodeGeneral covers popup resolution and surface failures.
	ErrorCodeGeneral
	// ErrorCodeUnknown wraps unexpected errors.
	ErrorCodeUnknown
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeNone:
		return "none"
	case ErrorCodeInvalidState:
		return "invalid_state"
	case ErrorCodeNotSupported:
		return "not_supported"
	case ErrorCodeCancelled:
		return "cancelled"
	case ErrorCodeGeneral:
		return "general"
	case ErrorCodeUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Result is the outcome of a navigation or popup operation.
// Operations report failures through Result rather than panicking or
// returning a bare error.
type Result struct {
	IsSuccess    bool
	ErrorCode    ErrorCode
	ErrorMessage string
	// Template and Args keep the unformatted message for structured logging.
	Template string
	Args     []any
}

// Ok returns a successful result.
func Ok() Result {
	return Result{IsSuccess: true}
}

// Fail returns a failed result. template is a fmt format string.
func Fail(code ErrorCode, template string, args ...any) Result {
	return Result{
		ErrorCode:    code,
		ErrorMessage: fmt.Sprintf(template, args...),
		Template:     template,
		Args:         args,
	}
}

// IsFailure reports whether the result is not a success.
func (r Result) IsFailure() bool {
	return !r.IsSuccess
}

// Err returns nil on success and a *ResultError otherwise.
func (r Result) Err() error {
	if r.IsSuccess {
		return nil
	}
	return &ResultError{Code: r.ErrorCode, Message: r.ErrorMessage}
}

// WithMessage returns a copy of r with extra text appended to the message.
func (r Result) WithMessage(format string, args ...any) Result {
	extra := fmt.Sprintf(format, args...)
	if r.ErrorMessage == "" {
		r.ErrorMessage = extra
	} else {
		r.ErrorMessage = r.ErrorMessage + " " + extra
	}
	return r
}

func (r Result) String() string {
	if r.IsSuccess {
		return "ok"
	}
	return fmt.Sprintf("%s: %s", r.ErrorCode, r.ErrorMessage)
}

// ResultError is the error form of a failed Result.
type ResultError struct {
	Code    ErrorCode
	Message string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf extracts the error code from err, or ErrorCodeUnknown.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrorCodeNone
	}
	var re *ResultError
	if errors.As(err, &re) {
		return re.Code
	}
	if errors.Is(err, ErrCompletionCancelled) {
		return ErrorCodeCancelled
	}
	return ErrorCodeUnknown
}

// ValueResult is a Result carrying a value on success.
type ValueResult[T any] struct {
	Result
	Value T
}

// OkValue returns a successful result holding value.
func OkValue[T any](value T) ValueResult[T] {
	return ValueResult[T]{Result: Ok(), Value: value}
}

// FailValue returns a failed typed result.
func FailValue[T any](code ErrorCode, template string, args ...any) ValueResult[T] {
	return ValueResult[T]{Result: Fail(code, template, args...)}
}

// FromResult lifts a failed untyped result into a typed one.
func FromResult[T any](r Result) ValueResult[T] {
	return ValueResult[T]{Result: r}
}
