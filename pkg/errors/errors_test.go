package errors

import (
	"context"
	stdErrors "errors"
	"fmt"
	"testing"

	"contactbook/domain/person"
	"contactbook/domain/shared"

	"github.com/stretchr/testify/assert"
)

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"not found", person.NewPersonNotFoundError(3), CodeNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", person.NewPersonNotFoundError(3)), CodeNotFound},
		{"domain rule", person.NewInvalidPersonError("full_name", "Full name cannot be empty."), CodeDomainRule},
		{"conflict", shared.NewConflictError("person", "conflict"), CodeConflict},
		{"validation input", shared.NewValidationError("person", "id", "bad"), CodeBadRequest},
		{"infrastructure", context.DeadlineExceeded, CodeInternal},
		{"already app error", ValidationFailed(nil), CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDomainError(tt.err)
			assert.Equal(t, tt.want, got.Code)
		})
	}
	assert.Nil(t, FromDomainError(nil))
}

func TestInternalErrorHidesMessage(t *testing.T) {
	appErr := FromDomainError(stdErrors.New("dial tcp 10.0.0.1:3306: connection refused"))

	assert.Equal(t, "internal server error", appErr.Message)
	assert.ErrorContains(t, appErr, "connection refused")
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed([]FieldError{
		{Field: "fullName", Message: "'Full Name' must not be empty."},
		{Field: "id", Message: "'Id' must be greater than '0'."},
	})

	assert.True(t, IsValidation(err))
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", err)))
	assert.Contains(t, err.Error(), "'Full Name' must not be empty.; 'Id' must be greater than '0'.")
}
