package analysis

import (
	"errors"
	"fmt"
)

// External-service errors. Both are fatal to the request: without a valid
// analysis there is nothing to render.
var (
	// ErrService indicates the AI provider returned an explicit error
	// envelope or the call itself failed.
	ErrService = errors.New("ai service error")

	// ErrMalformedResponse indicates the provider answered but the content
	// did not validate against the expected schema.
	ErrMalformedResponse = errors.New("malformed ai response")
)

// ServiceError carries the provider's own message.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ai service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error { return ErrService }

// ValidationError names the schema field that failed and why, so logs say
// more than "invalid JSON".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("malformed ai response: field %q: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrMalformedResponse }
