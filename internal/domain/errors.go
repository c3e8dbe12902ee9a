package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the pricing system. The engine itself fails open and
// never returns errors; these surface only from the adapters around it.
var (
	// ErrInvalidRequest indicates the caller supplied invalid input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRecordNotFound indicates the referenced cargo record does not exist.
	ErrRecordNotFound = errors.New("cargo record not found")

	// ErrRateNotFound indicates the referenced transit rate does not exist.
	ErrRateNotFound = errors.New("transit rate not found")

	// ErrRegistryUnavailable indicates the registry store could not be read.
	// Callers surface it as "no data", never as a pipeline failure.
	ErrRegistryUnavailable = errors.New("registry unavailable")
)

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest so
// callers can match with errors.Is.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsRecordNotFound reports whether err is or wraps ErrRecordNotFound.
func IsRecordNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

// IsRegistryUnavailable reports whether err is or wraps ErrRegistryUnavailable.
func IsRegistryUnavailable(err error) bool {
	return errors.Is(err, ErrRegistryUnavailable)
}

// NewRegistryError wraps a store failure with ErrRegistryUnavailable,
// preserving the underlying error for logging.
func NewRegistryError(err error) error {
	return fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
}

// ValidationError is a single human-readable validation failure tied to a
// form field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationErrors collects multiple validation failures. The conversion
// override runs all of its checks as peers and reports every failure at
// once; none short-circuits the others.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// Add appends a validation failure.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any failures were collected.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Messages returns the collected human-readable messages in order.
func (v *ValidationErrors) Messages() []string {
	msgs := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		msgs[i] = e.Message
	}
	return msgs
}

// ToMap converts the failures to a field→message map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}
