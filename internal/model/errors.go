package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports that an operation targeted a nonexistent id. Update
// returns it; Delete treats the same condition as a no-op.
var ErrNotFound = errors.New("not found")

// ValidationError is a field-keyed input failure. It is always returned,
// never panicked, and surfaces to the UI as an inline message.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates per-field failures from one validation pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Error()
	}
	return strings.Join(parts, "; ")
}

// Field returns the message for a field, or "" if that field passed.
func (e ValidationErrors) Field(name string) string {
	for _, v := range e {
		if v.Field == name {
			return v.Message
		}
	}
	return ""
}
