package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ConfirmationRequiredError is returned when a destructive action was not confirmed
type ConfirmationRequiredError struct {
	Action string
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("%s requires confirmation", e.Action)
}

// BackendError carries the raw message returned by the hosted backend
type BackendError struct {
	Operation string
	Status    int
	Message   string
}

func (e *BackendError) Error() string {
	if e.Operation == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Entity Not Found Errors
var (
	ErrTenantNotFound  = &NotFoundError{Entity: "tenant"}
	ErrAccountNotFound = &NotFoundError{Entity: "account"}
	ErrProfileNotFound = &NotFoundError{Entity: "profile"}
)

// Business Logic Errors
var (
	ErrMissingTenantFields = &ValidationError{Message: "name, email, start date and end date are required"}
	ErrInvalidDate         = &ValidationError{Field: "date", Message: "dates must use the YYYY-MM-DD format"}
	ErrInvalidView         = &ValidationError{Field: "view", Message: "must be one of all, locked"}
	ErrOwnerAccountMissing = errors.New("tenant has no owner account")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsConfirmationRequired checks if an error is a ConfirmationRequiredError
func IsConfirmationRequired(err error) bool {
	var confirmErr *ConfirmationRequiredError
	return errors.As(err, &confirmErr)
}

// IsBackend checks if an error came back from the hosted backend
func IsBackend(err error) bool {
	var backendErr *BackendError
	return errors.As(err, &backendErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewConfirmationRequiredError creates a new ConfirmationRequiredError
func NewConfirmationRequiredError(action string) error {
	return &ConfirmationRequiredError{Action: action}
}
