package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rohits-web03/chainnotes/internal/repositories"
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError means the entity does not exist or is not owned by the caller.
// The two cases are indistinguishable on purpose.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// AuthError is a rejected credential. Status is 401 or 403.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func unauthorized(msg string) error { return &AuthError{Status: http.StatusUnauthorized, Message: msg} }
func forbidden(msg string) error    { return &AuthError{Status: http.StatusForbidden, Message: msg} }

// ConflictError is a uniqueness violation such as a reused email.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// UnavailableError means an optional collaborator is not configured.
type UnavailableError struct {
	Feature string
}

func (e *UnavailableError) Error() string { return e.Feature + " is not configured" }

// StorageError wraps a data store failure. Its text is for logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "storage: " + e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

// storeErr converts a repository error into the service taxonomy.
func storeErr(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return &NotFoundError{Entity: entity}
	}
	return &StorageError{Op: op, Err: err}
}
