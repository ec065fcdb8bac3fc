package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateUsername is returned when the username is already registered.
	ErrDuplicateUsername = errors.New("username already registered")
	// ErrDuplicateProductName is returned when a product with the same name exists.
	ErrDuplicateProductName = errors.New("product already exists")
	// ErrCustomerNotFound is returned when an order references a missing customer.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInvalidCredentials is returned when a username/password pair does not match.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUnauthorized is returned when a bearer token cannot be resolved to a customer.
	ErrUnauthorized = errors.New("could not validate credentials")
	// ErrStorageUnavailable is returned when no object store is configured.
	ErrStorageUnavailable = errors.New("image storage is not configured")
)

// CustomerNotFoundError names the customer id an order referenced.
type CustomerNotFoundError struct {
	CustomerID int64
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer_id=%d is not present in table!", e.CustomerID)
}

// Is makes the error match ErrCustomerNotFound and ErrNotFound.
func (e *CustomerNotFoundError) Is(target error) bool {
	return target == ErrCustomerNotFound || target == ErrNotFound
}

// ValidationError describes malformed or missing input.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
