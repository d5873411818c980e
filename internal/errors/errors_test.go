package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "tenant"}
		assert.Equal(t, "tenant not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "tenant"}
		err2 := &NotFoundError{Entity: "tenant"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "tenant"}
		err2 := &NotFoundError{Entity: "account"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to delete tenant: %w", ErrTenantNotFound)
		assert.True(t, errors.Is(wrapped, ErrTenantNotFound))
		assert.False(t, errors.Is(wrapped, ErrAccountNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTenantNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrProfileNotFound)))
		assert.False(t, IsNotFound(ErrOwnerAccountMissing))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		assert.Equal(t, "validation error: name, email, start date and end date are required", ErrMissingTenantFields.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.True(t, IsValidation(ErrInvalidView))
		assert.False(t, IsValidation(ErrTenantNotFound))
	})
}

func TestConfirmationRequiredError(t *testing.T) {
	err := NewConfirmationRequiredError("delete tenant")
	assert.Equal(t, "delete tenant requires confirmation", err.Error())
	assert.True(t, IsConfirmationRequired(err))
	assert.False(t, IsConfirmationRequired(ErrMissingTenantFields))
}

func TestBackendError(t *testing.T) {
	t.Run("with operation", func(t *testing.T) {
		err := &BackendError{Operation: "create account", Status: 422, Message: "A user with this email address has already been registered"}
		assert.Equal(t, "create account: A user with this email address has already been registered", err.Error())
		assert.True(t, IsBackend(fmt.Errorf("wrapped: %w", err)))
	})

	t.Run("without operation", func(t *testing.T) {
		err := &BackendError{Status: 500, Message: "boom"}
		assert.Equal(t, "boom", err.Error())
	})
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("SUPABASE_URL and SUPABASE_ANON_KEY are required")
	assert.True(t, IsConfiguration(fmt.Errorf("config validation failed: %w", err)))
	assert.False(t, IsConfiguration(ErrTenantNotFound))
}
