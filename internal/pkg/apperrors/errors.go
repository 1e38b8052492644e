// internal/pkg/apperrors/errors.go
package apperrors

import "fmt"

// ErrNotFound is returned when a resource lookup misses
type ErrNotFound struct {
	Resource string
	Key      string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// NotFound builds an ErrNotFound for a resource identified by key
func NotFound(resource, key string) error {
	return &ErrNotFound{Resource: resource, Key: key}
}

// ErrValidation is returned when input validation fails before any mutation
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// Validation builds an ErrValidation with a message
func Validation(message string) error {
	return &ErrValidation{Message: message}
}

// ValidationFields builds an ErrValidation with per-field messages
func ValidationFields(message string, fields map[string]string) error {
	return &ErrValidation{Message: message, Fields: fields}
}

// ErrConflict is returned when an operation hits invalid current state,
// e.g. placing an order against a cart that is already in an order
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "conflict"
}

// Conflict builds an ErrConflict with a message
func Conflict(message string) error {
	return &ErrConflict{Message: message}
}

// ErrNotification is returned by the notification collaborator. It is
// always logged and swallowed by callers: a committed order never rolls
// back because staff mail failed.
type ErrNotification struct {
	OrderID uint
	Cause   error
}

func (e *ErrNotification) Error() string {
	return fmt.Sprintf("failed to notify staff about order %d: %v", e.OrderID, e.Cause)
}

func (e *ErrNotification) Unwrap() error {
	return e.Cause
}
