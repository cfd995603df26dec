// internal/pkg/errs/errors.go
package errs

import (
	"errors"
	"fmt"
)

// ValidationError indicates malformed or missing required input. It is
// surfaced to the caller with a 4xx status and never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidation creates a ValidationError for a specific field
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ServiceAreaError indicates a valid address that no warehouse can serve.
// Callers render "not deliverable here" rather than a generic failure.
type ServiceAreaError struct {
	ZipCode string
}

func (e *ServiceAreaError) Error() string {
	return fmt.Sprintf("no warehouse can deliver to zip code %s", e.ZipCode)
}

// NewServiceArea creates a ServiceAreaError for the given zip code
func NewServiceArea(zipCode string) *ServiceAreaError {
	return &ServiceAreaError{ZipCode: zipCode}
}

// UpstreamDegradedError records failed or timed-out product sources. The
// search engine absorbs it and serves the fallback catalog; it never reaches
// the caller as a failure.
type UpstreamDegradedError struct {
	Sources []string
}

func (e *UpstreamDegradedError) Error() string {
	return fmt.Sprintf("upstream sources degraded: %v", e.Sources)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsServiceArea reports whether err is a ServiceAreaError
func IsServiceArea(err error) bool {
	var se *ServiceAreaError
	return errors.As(err, &se)
}
