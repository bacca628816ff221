package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// ComponentNotFound creates a new AppError for a resolve of an unregistered name.
func ComponentNotFound(name string) *AppError {
	return &AppError{
		Code: ErrCodeComponentNotFound, Message: fmt.Sprintf("component '%s' is not registered", name),
		Details: map[string]any{"component": name},
	}
}

// DuplicateComponent creates a new AppError for a re-registration of an existing name.
func DuplicateComponent(name string) *AppError {
	return &AppError{
		Code: ErrCodeDuplicateComponent, Message: fmt.Sprintf("component '%s' is already registered", name),
		Details: map[string]any{"component": name},
	}
}

// TypeMismatch creates a new AppError for a resolved instance that failed the
// expected-type check.
func TypeMismatch(name, expected, actual string) *AppError {
	return &AppError{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("component '%s' is not of type %s (got %s)", name, expected, actual),
		Details: map[string]any{"component": name, "expected": expected, "actual": actual},
	}
}

// Construction creates a new AppError for a component factory that failed.
func Construction(name string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConstructionFailed, Message: fmt.Sprintf("construction of component '%s' failed", name),
		Details: map[string]any{"component": name}, Cause: cause,
	}
}

// ModuleNotFound creates a new AppError for an installed app with no registered module.
func ModuleNotFound(id string) *AppError {
	return &AppError{
		Code: ErrCodeModuleNotFound, Message: fmt.Sprintf("module '%s' is not registered", id),
		Details: map[string]any{"module": id},
	}
}

// InvalidConfig creates a new AppError for a configuration that could not be loaded.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("invalid configuration: %s", reason),
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Cause: cause,
	}
}

// --- Inspection Helpers ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the ErrorCode carried by err, or the empty code when err is
// not an AppError anywhere in its chain.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
