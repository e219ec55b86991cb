package scope

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrForbidden is returned when the acting user's role does not permit
	// the operation. No partial effect has taken place.
	ErrForbidden = errors.New("operation not permitted for this role")

	// ErrNotFound is returned when the requested row is outside the resolved
	// visibility scope. Rows that exist in another organisation and rows
	// that do not exist at all are indistinguishable through this error.
	ErrNotFound = errors.New("record not found")

	// ErrUnscopedPrincipal indicates an agent-role user with no agent
	// record. The creation flow makes this impossible, so hitting it means
	// the data is corrupt.
	ErrUnscopedPrincipal = errors.New("agent user has no agent record")
)

// ValidationError carries the offending field names with per-field messages.
// The write it guards is aborted entirely.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

// NewValidationError builds a single-field validation failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
