package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Persistence errors
	ErrPersistenceFailed = errors.New("persistence failed")
)

// Course Errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Review Errors
var (
	ErrReviewNotFound     = errors.New("review not found")
	ErrReviewEmptyContent = errors.New("review has no content")
)

// Reaction Errors
var (
	ErrReactionNotFound   = errors.New("reaction not found")
	ErrReactionTypeExists = errors.New("reaction with this type already exists")
)

// Prerequisite Errors
var (
	ErrCoursePrerequisiteNotFound = errors.New("course prerequisite not found")
	ErrPrerequisiteEmptyContent   = errors.New("prerequisite has no content")
)

// Kind classifies a failure for the transport layer.
type Kind int

const (
	// KindInternal is an unexpected failure; the endpoint decides how it is reported
	KindInternal Kind = iota
	// KindNotFound means a referenced parent entity is absent
	KindNotFound
	// KindBadRequest means a required field is missing or a write failed
	KindBadRequest
	// KindUnprocessable means the payload is structurally invalid, references unknown rows or violates uniqueness
	KindUnprocessable
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindUnprocessable:
		return "unprocessable_entity"
	default:
		return "internal"
	}
}

// NewNotFoundError creates a not found failure with a client-facing message
func NewNotFoundError(err error, message string) *CustomError {
	return &CustomError{Kind: KindNotFound, Err: wrapDefault(err, ErrResourceNotFound), Message: message}
}

// NewBadRequestError creates a bad request failure with a client-facing message
func NewBadRequestError(err error, message string) *CustomError {
	return &CustomError{Kind: KindBadRequest, Err: wrapDefault(err, ErrBadRequest), Message: message}
}

// NewUnprocessableError creates an unprocessable entity failure with a client-facing message
func NewUnprocessableError(err error, message string) *CustomError {
	return &CustomError{Kind: KindUnprocessable, Err: wrapDefault(err, ErrValidationFailed), Message: message}
}

// NewInternalError creates an internal failure with a client-facing message
func NewInternalError(err error, message string) *CustomError {
	return &CustomError{Kind: KindInternal, Err: wrapDefault(err, ErrPersistenceFailed), Message: message}
}

func wrapDefault(err, fallback error) error {
	if err == nil {
		return fallback
	}
	return err
}

// AsCustomError extracts a CustomError from the chain. Plain errors become KindInternal.
func AsCustomError(err error) *CustomError {
	if err == nil {
		return nil
	}
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce
	}
	return &CustomError{Kind: KindInternal, Err: err}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Kind    Kind
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
