package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NotFound("post", "123"), ErrNotFound},
		{"validation", ValidationFailed("content", "content cannot be empty"), ErrValidation},
		{"conflict", Conflict("email already exists"), ErrConflict},
		{"forbidden", Forbidden("not yours"), ErrForbidden},
		{"unauthorized", Unauthorized("invalid credentials"), ErrUnauthorized},
		{"internal", Internal(fmt.Errorf("connection refused")), ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("post", "123")
	assert.EqualError(t, err, "post not found")
	assert.Equal(t, "123", err.Field)
}

func TestInternalKeepsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Internal(cause)

	// the client-facing message is generic
	assert.EqualError(t, err, "internal error")
	// but the chained error keeps the cause for logging
	assert.Contains(t, err.Err.Error(), "connection refused")
}

func TestErrorsAsUnwrapsAppError(t *testing.T) {
	wrapped := fmt.Errorf("while liking: %w", Conflict("already liked"))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.ErrorIs(t, wrapped, ErrConflict)
}
