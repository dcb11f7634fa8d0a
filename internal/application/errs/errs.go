package errs

import (
	"fmt"
	"strings"
)

type NotFoundError struct {
	Entity string
	ID     any
}

func (t NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", t.Entity, t.ID)
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every failing field of a request.
type ValidationError struct {
	Fields []FieldError
}

func (t ValidationError) Error() string {
	msgs := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

func NewValidationError(field, message string) ValidationError {
	return ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

type UnauthorizedError struct {
	Err error
}

func (t UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %v", t.Err)
}

func (t UnauthorizedError) Unwrap() error { return t.Err }

type UnavailableError struct {
	Feature string
}

func (t UnavailableError) Error() string {
	return fmt.Sprintf("%s is not configured", t.Feature)
}
