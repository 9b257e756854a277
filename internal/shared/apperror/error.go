package apperror

import (
	"fmt"
	"net/http"
)

// Kind is the closed set of failure classes the HTTP layer knows how to render.
type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Status returns the HTTP status bound to the kind.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) code() string {
	switch k {
	case KindNotFound:
		return CodeNotFound
	case KindConflict:
		return CodeConflict
	case KindValidation:
		return CodeInvalidInput
	default:
		return CodeInternalError
	}
}

type AppError struct {
	Kind       Kind     // Failure class
	Code       string   // Error code (e.g., NOT_FOUND)
	Message    string   // User-friendly message
	HTTPStatus int      // HTTP status code
	SubErrors  []string // Field-level messages, validation only
	Err        error    // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same kind. A target
// without a code matches any code of that kind, so the package sentinels
// work as class checks.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// New creates a new AppError without wrapping
func New(kind Kind, message string) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       kind.code(),
		Message:    message,
		HTTPStatus: kind.Status(),
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, kind Kind, message string) *AppError {
	if err == nil {
		return nil
	}
	appErr := New(kind, message)
	appErr.Err = err
	return appErr
}

func NotFound(format string, args ...any) *AppError {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) *AppError {
	return New(KindConflict, fmt.Sprintf(format, args...))
}

// Validation builds a 400 failure carrying the given field messages in order.
func Validation(subErrors ...string) *AppError {
	appErr := New(KindValidation, ValidationMessage)
	appErr.SubErrors = append([]string{}, subErrors...)
	return appErr
}
