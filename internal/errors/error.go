package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime   Category = "runtime"
	CategoryReconcile Category = "reconcile"
	CategoryConfig    Category = "config"
	CategoryStorage   Category = "storage"
	CategoryCLI       Category = "cli"
)

// PactError is a structured error with a registered code and an optional hint.
type PactError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (runtime, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *PactError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, msg)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *PactError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a PactError with the same code.
func (e *PactError) Is(target error) bool {
	t, ok := target.(*PactError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *PactError) WithSuggestion(s string) *PactError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *PactError) WithDetail(d string) *PactError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail to the error.
func (e *PactError) WithDetailf(format string, args ...any) *PactError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *PactError) Wrap(err error) *PactError {
	e.Wrapped = err
	return e
}

// New creates a PactError from a registered error code.
func New(code string) *PactError {
	template, ok := registry[code]
	if !ok {
		return &PactError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &PactError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
	}
}

// Newf creates a new PactError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *PactError {
	return &PactError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a PactError.
// A PactError anywhere in the chain is returned as is.
func FromError(err error, code string) *PactError {
	if err == nil {
		return nil
	}
	var pe *PactError
	if stderrors.As(err, &pe) {
		return pe
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err or anything it wraps is a PactError with code.
func HasCode(err error, code string) bool {
	return stderrors.Is(err, &PactError{Code: code})
}

// FromPanic converts a recovered panic value into an error.
// Errors pass through unchanged; other values are wrapped in code.
func FromPanic(r any, code string) error {
	if err, ok := r.(error); ok {
		return err
	}
	return New(code).WithDetail(fmt.Sprint(r))
}
