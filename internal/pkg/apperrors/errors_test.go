package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *CustomError
		kind     Kind
		sentinel error
	}{
		{name: "not found", err: NewNotFoundError(ErrCourseNotFound, "Course is not stored"), kind: KindNotFound, sentinel: ErrCourseNotFound},
		{name: "not found default", err: NewNotFoundError(nil, "missing"), kind: KindNotFound, sentinel: ErrResourceNotFound},
		{name: "bad request", err: NewBadRequestError(nil, "no content"), kind: KindBadRequest, sentinel: ErrBadRequest},
		{name: "unprocessable", err: NewUnprocessableError(ErrReactionTypeExists, "duplicate"), kind: KindUnprocessable, sentinel: ErrReactionTypeExists},
		{name: "internal", err: NewInternalError(nil, "failed"), kind: KindInternal, sentinel: ErrPersistenceFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestCustomErrorMessage(t *testing.T) {
	assert.Equal(t, "visible", NewBadRequestError(nil, "visible").Error())
	assert.Equal(t, ErrReviewNotFound.Error(), (&CustomError{Err: ErrReviewNotFound}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}

func TestAsCustomError(t *testing.T) {
	assert.Nil(t, AsCustomError(nil))

	wrapped := fmt.Errorf("service: %w", NewNotFoundError(ErrReviewNotFound, "Review not found"))
	ce := AsCustomError(wrapped)
	assert.Equal(t, KindNotFound, ce.Kind)
	assert.Equal(t, "Review not found", ce.Message)

	plain := errors.New("connection reset")
	ce = AsCustomError(plain)
	assert.Equal(t, KindInternal, ce.Kind)
	assert.ErrorIs(t, ce, plain)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unprocessable_entity", KindUnprocessable.String())
	assert.Equal(t, "internal", KindInternal.String())
}
