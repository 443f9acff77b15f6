package httpapi

import (
	"errors"
	"fmt"

	"github.com/uot-apps/withdrawal-cli/internal/core/domain"
)

// DomainError is a structured error returned by the remote service for
// an otherwise well-formed request. Message carries the user-facing
// text from the response body, or a generic fallback when the body had
// none.
type DomainError struct {
	StatusCode int
	Message    string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("gateway: service error %d: %s", e.StatusCode, e.Message)
}

// UserMessage returns the service-provided text for display.
func (e *DomainError) UserMessage() string {
	return e.Message
}

// ConflictError is a rejected duplicate submission: HTTP 409 with
// duplicate=true in the body. It is surfaced distinctly from a generic
// domain error and never opens the results view.
type ConflictError struct {
	Message   string
	RequestID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("gateway: duplicate request: %s", e.Message)
}

// UserMessage returns the service-provided text for display.
func (e *ConflictError) UserMessage() string {
	return e.Message
}

// TransportError is a network-level failure with no parsable response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage returns the generic connection-failure text.
func (e *TransportError) UserMessage() string {
	return domain.MsgConnectionFailed
}

// IsConflict checks if the error is a duplicate-submission conflict.
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsDomainError checks if the error is a structured service error.
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// IsTransport checks if the error is a network-level failure.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
