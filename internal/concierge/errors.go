package concierge

import "fmt"

// ValidationError rejects a malformed request before any retrieval happens.
// The API layer maps it to a 400; everything else coming out of the engine is
// a retrieval failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalidField(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
