package review

import (
	"errors"
	"fmt"
)

// Common error types for the review service
var (
	// ErrInvalidSubmission indicates the submission failed validation.
	ErrInvalidSubmission = errors.New("invalid submission")

	// ErrNilAssessment indicates Confirm was called without an assessment.
	ErrNilAssessment = errors.New("assessment is required")

	// ErrEventDelivery indicates the schedule was computed but at least one
	// event handler failed to record it.
	ErrEventDelivery = errors.New("session event delivery failed")
)

// ServiceError wraps errors from the review service with the operation that
// failed, so callers can use errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed ("assess" or "confirm")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewAssessError returns a new ServiceError for the assess operation.
func NewAssessError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "assess", Message: message, Err: err}
}

// NewConfirmError returns a new ServiceError for the confirm operation.
func NewConfirmError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "confirm", Message: message, Err: err}
}
