package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-signupform/pkg/validation"
)

// FieldErrors maps a field name to the single message shown next to that
// field. Each field is annotated independently of the others.
type FieldErrors map[string]string

// PresentErrors projects a validation result onto per-field messages. The
// first issue of each field wins, so the most fundamental violation (a missing
// value before a malformed one) is what the user sees. A valid result yields
// an empty, non-nil map.
func PresentErrors(result validation.Result) FieldErrors {
	out := make(FieldErrors, len(result.Issues))
	if result.Valid {
		return out
	}
	for _, issue := range result.Issues {
		field := strings.TrimSpace(issue.Field)
		message := strings.TrimSpace(issue.Message)
		if field == "" || message == "" {
			continue
		}
		if _, exists := out[field]; exists {
			continue
		}
		out[field] = message
	}
	return out
}

// Get returns the message attached to field, or "".
func (e FieldErrors) Get(field string) string {
	if e == nil {
		return ""
	}
	return e[field]
}

// Has reports whether field carries an error.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Fields lists the annotated fields, sorted for deterministic output.
func (e FieldErrors) Fields() []string {
	if len(e) == 0 {
		return nil
	}
	out := make([]string, 0, len(e))
	for field := range e {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy.
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for field, message := range e {
		out[field] = message
	}
	return out
}
