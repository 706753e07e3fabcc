package errors

import (
	"fmt"
	"net/http"
	"time"

	"portfolio/internal/errors"
)

// Kind is the closed set of failure classes the error normalizer understands.
type Kind int

const (
	KindUnclassified Kind = iota
	KindInvalidCredential
	KindTokenExpired
	KindUnauthenticated
	KindRateLimited
	KindDuplicate
	KindInvalidRelation
	KindInvalidID
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCredential:
		return "INVALID_CREDENTIAL"
	case KindTokenExpired:
		return "TOKEN_EXPIRED"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindRateLimited:
		return "RATE_LIMITED"
	case KindDuplicate:
		return "DUPLICATE"
	case KindInvalidRelation:
		return "INVALID_RELATION"
	case KindInvalidID:
		return "INVALID_ID"
	case KindValidation:
		return "VALIDATION_FAILED"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "UNCLASSIFIED"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure class used by the normalizer
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches another BaseError with the same error code, so a copy made by
// WithDetails still matches its sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Credential errors. Tampered, malformed and expired tokens all surface as
	// ErrInvalidCredential.
	ErrInvalidCredential = NewBaseError(
		KindInvalidCredential,
		http.StatusUnauthorized,
		"INVALID_CREDENTIAL",
		"Invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		KindTokenExpired,
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expired",
		"",
	)

	// Authentication errors
	ErrNoCredential = NewBaseError(
		KindUnauthenticated,
		http.StatusUnauthorized,
		"NO_CREDENTIAL",
		"Access denied. No token provided.",
		"",
	)

	ErrCredentialRejected = NewBaseError(
		KindUnauthenticated,
		http.StatusUnauthorized,
		"CREDENTIAL_REJECTED",
		"Invalid token.",
		"",
	)

	ErrSubjectUnavailable = NewBaseError(
		KindUnauthenticated,
		http.StatusUnauthorized,
		"SUBJECT_UNAVAILABLE",
		"User not found or inactive.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		KindUnauthenticated,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrAccountDeactivated = NewBaseError(
		KindUnauthenticated,
		http.StatusUnauthorized,
		"ACCOUNT_DEACTIVATED",
		"Account is deactivated",
		"",
	)

	// Persistence conflicts
	ErrDuplicate = NewBaseError(
		KindDuplicate,
		http.StatusBadRequest,
		"DUPLICATE_FIELD",
		"Duplicate field value entered",
		"",
	)

	ErrEmailTaken = NewBaseError(
		KindDuplicate,
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"User already exists with this email",
		"",
	)

	ErrInvalidRelation = NewBaseError(
		KindInvalidRelation,
		http.StatusBadRequest,
		"INVALID_RELATION",
		"Invalid input data",
		"",
	)

	ErrInvalidID = NewBaseError(
		KindInvalidID,
		http.StatusBadRequest,
		"INVALID_ID",
		"Invalid ID",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation Error",
		"",
	)

	// Lookup errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"User profile not found",
		"",
	)

	ErrProjectNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PROJECT_NOT_FOUND",
		"Project not found",
		"",
	)
)

// RateLimitError is returned by the rate governor when a client exhausted its window.
type RateLimitError struct {
	RetryAfter time.Duration
}

// NewRateLimitError creates a rate limit rejection reporting how long the client should wait.
func NewRateLimitError(retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter}
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

func (e *RateLimitError) Kind() Kind {
	return KindRateLimited
}

func (e *RateLimitError) HTTPCode() int {
	return http.StatusTooManyRequests
}

func (e *RateLimitError) ErrorCode() string {
	return "RATE_LIMITED"
}

func (e *RateLimitError) Message() string {
	return "Too many requests, please try again later."
}

func (e *RateLimitError) Details() string {
	return ""
}

// KindOf returns the kind of the first AppError in err's chain, or KindUnclassified.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindUnclassified
}
