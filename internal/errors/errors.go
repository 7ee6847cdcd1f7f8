package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}

// DependencyError marks a failed call to a remote service: network fault,
// non-2xx response, timeout or malformed payload. The enrichment flow absorbs
// it and renders the affected field as null instead of failing the request.
type DependencyError struct {
	Service string
	Message string
	Cause   error
}

func (e *DependencyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Service, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

func (e *DependencyError) Unwrap() error {
	return e.Cause
}

func NewDependencyError(service, message string, cause error) *DependencyError {
	return &DependencyError{
		Service: service,
		Message: message,
		Cause:   cause,
	}
}

func IsDependencyError(err error) (*DependencyError, bool) {
	if de, ok := err.(*DependencyError); ok {
		return de, true
	}
	return nil, false
}

// UpstreamNotFoundError marks a 404 from a remote service: the dependency
// answered, the entity simply does not exist there. Kept distinct from
// DependencyError so callers can tell an outage from genuine absence.
type UpstreamNotFoundError struct {
	Service string
	Message string
}

func (e *UpstreamNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

func NewUpstreamNotFoundError(service, message string) *UpstreamNotFoundError {
	return &UpstreamNotFoundError{
		Service: service,
		Message: message,
	}
}

func IsUpstreamNotFoundError(err error) (*UpstreamNotFoundError, bool) {
	if ue, ok := err.(*UpstreamNotFoundError); ok {
		return ue, true
	}
	return nil, false
}
