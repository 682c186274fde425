package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError represents a structured application error
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

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped AppError
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the code of the outermost AppError in the chain, or "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Find returns the first AppError in the chain carrying code, or nil
func Find(err error, code string) *AppError {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.Code == code {
			return appErr
		}
		err = stderrors.Unwrap(err)
	}
	return nil
}

// IsCode reports whether any AppError in the chain carries code
func IsCode(err error, code string) bool {
	return Find(err, code) != nil
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeInputNotFound = "INPUT_NOT_FOUND"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeReadFailed    = "READ_FAILED"
	CodeWriteFailed   = "WRITE_FAILED"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// InputNotFound reports a missing input file
func InputNotFound(path string) *AppError {
	return New(CodeInputNotFound, fmt.Sprintf("File '%s' not found.", path))
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func ReadFailed(message string, cause error) *AppError {
	return &AppError{Code: CodeReadFailed, Message: message, Cause: cause}
}

func WriteFailed(message string, cause error) *AppError {
	return &AppError{Code: CodeWriteFailed, Message: message, Cause: cause}
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}
