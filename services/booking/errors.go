package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrAuthenticationRequired is returned when no authenticated customer is
// attached to the request.
var ErrAuthenticationRequired = errors.New("authentication required")

// ValidationError reports precondition violations. No persistence is
// attempted when one is returned; Fields maps field name to reason so the
// UI can surface errors inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// SlotUnavailableError reports that the requested slot is already held by an
// active appointment, whether detected by the advisory re-check or by the
// store's uniqueness constraint. The caller must refresh availability for
// the technician/date and let the user pick again.
type SlotUnavailableError struct {
	TechnicianID string
	Date         string
	Time         string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot %s %s is no longer available for technician %s", e.Date, e.Time, e.TechnicianID)
}

// PersistenceError wraps unexpected store failures.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
