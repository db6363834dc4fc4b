// Package errors defines the coded error type the configuration and service
// layers report through.
package errors

import "fmt"

// AppError pairs a stable machine code with a human message and an optional
// cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// Error codes carried by AppError.
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternal      = "INTERNAL_ERROR"
)

// New creates an AppError with no cause.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap layers a message over an existing error. When the cause is already an
// AppError its code is kept, so the outermost error still classifies the
// failure.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	code := CodeInternal
	if appErr, ok := err.(*AppError); ok {
		code = appErr.Code
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

func ConfigInvalid(message string) *AppError { return New(CodeConfigInvalid, message) }

func InvalidInput(message string) *AppError { return New(CodeInvalidInput, message) }

func Internal(message string) *AppError { return New(CodeInternal, message) }
