package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the selection pipeline.
const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeDecodeFailed      = "DECODE_FAILED"
	CodeProbeFailed       = "PROBE_FAILED"
	CodeNoLocalPath       = "NO_LOCAL_PATH"
	CodePickerFailed      = "PICKER_FAILED"
	CodeFileTooLarge      = "FILE_TOO_LARGE"
	CodeInternalServer    = "INTERNAL_ERROR"
)

// AppError represents an application error with an HTTP status and code.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code so sentinel comparisons survive WithError and
// WithMessage copies.
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		Details:    e.Details,
		HTTPStatus: e.HTTPStatus,
		Err:        err,
	}
}

// WithMessage creates a copy with a custom message.
func (e *AppError) WithMessage(msg string) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    msg,
		Details:    e.Details,
		HTTPStatus: e.HTTPStatus,
		Err:        e.Err,
	}
}

// WithMessagef creates a copy with a formatted message.
func (e *AppError) WithMessagef(format string, args ...any) *AppError {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// WithDetails creates a copy carrying structured details.
func (e *AppError) WithDetails(details any) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		Details:    details,
		HTTPStatus: e.HTTPStatus,
		Err:        e.Err,
	}
}

// Standard errors
var (
	ErrBadRequest = &AppError{
		Code:       CodeBadRequest,
		Message:    "Invalid request",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrUnsupportedFormat = &AppError{
		Code:       CodeUnsupportedFormat,
		Message:    "File format not allowed",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrDecodeFailed = &AppError{
		Code:       CodeDecodeFailed,
		Message:    "Image could not be decoded",
		HTTPStatus: http.StatusUnprocessableEntity,
	}

	ErrProbeFailed = &AppError{
		Code:       CodeProbeFailed,
		Message:    "Video metadata could not be read",
		HTTPStatus: http.StatusUnprocessableEntity,
	}

	ErrNoLocalPath = &AppError{
		Code:       CodeNoLocalPath,
		Message:    "Video probing requires a local file path",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrPickerFailed = &AppError{
		Code:       CodePickerFailed,
		Message:    "Picker failed",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrFileTooLarge = &AppError{
		Code:       CodeFileTooLarge,
		Message:    "File exceeds the maximum allowed size",
		HTTPStatus: http.StatusRequestEntityTooLarge,
	}

	ErrInternalServer = &AppError{
		Code:       CodeInternalServer,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
	}
)

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError attempts to convert an error to an AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}
