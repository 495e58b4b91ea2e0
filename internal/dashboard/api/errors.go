package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"fleet-admin/internal/validation"
)

var (
	// ErrUnauthenticated means there is no usable session: either no token is
	// stored or the backend rejected the one we sent. The session is cleared
	// and the caller should return to the login screen.
	ErrUnauthenticated = errors.New("not logged in")

	// ErrBusy means another mutation is still in flight. The dashboard
	// disables the triggering control instead of queueing duplicates.
	ErrBusy = errors.New("another operation is in progress")
)

// ValidationError carries the field-level messages of a rejected draft. No
// request was sent.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("draft failed validation: %s", strings.Join(fields, ", "))
}

// APIError is a non-2xx backend reply.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}
