package apperror

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// AuthorizationError indicates a role or class mismatch between the caller
// and the resource being acted on.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization failed: %s", e.Reason)
}

func NewAuthorization(reason string) error {
	return &AuthorizationError{Reason: reason}
}

// NotFoundError indicates an unknown resource id.
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Id)
}

func NewNotFound(resource string, id string) error {
	return &NotFoundError{Resource: resource, Id: id}
}

// InactiveSessionError indicates an action against a class session that has
// already ended. Sessions never return from ENDED to ACTIVE.
type InactiveSessionError struct {
	SessionId uuid.UUID
}

func (e *InactiveSessionError) Error() string {
	return fmt.Sprintf("session %s is no longer active", e.SessionId)
}

func NewInactiveSession(sessionId uuid.UUID) error {
	return &InactiveSessionError{SessionId: sessionId}
}

// ValidationError indicates a malformed or semantically invalid request,
// e.g. a missing required field or a duplicate quiz attempt.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func NewValidation(reason string) error {
	return &ValidationError{Reason: reason}
}

func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsInactiveSession(err error) bool {
	var target *InactiveSessionError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
