package tui

import (
	"sync"

	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/signup"
)

// State is the field registry of a terminal session: the values typed so far
// and the errors to show next to each field. It is intentionally small;
// orchestration lives in the session.
type State struct {
	mu     sync.RWMutex
	values map[string]string
	errors render.FieldErrors
}

var (
	_ signup.FieldRegistry = (*State)(nil)
	_ signup.ErrorSink     = (*State)(nil)
)

// NewState seeds the state with prefilled values.
func NewState(prefill map[string]string) *State {
	return &State{
		values: cloneValues(prefill),
		errors: render.FieldErrors{},
	}
}

// Value returns the current value of field.
func (s *State) Value(field string) string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[field]
}

// SetValue records the value typed for field.
func (s *State) SetValue(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[field] = value
}

// Values returns a copy of every recorded value.
func (s *State) Values() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneValues(s.values)
}

// SetErrors replaces the field annotations.
func (s *State) SetErrors(errs render.FieldErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = errs.Clone()
}

// Errors returns a copy of the field annotations.
func (s *State) Errors() render.FieldErrors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors.Clone()
}

// ErrorFor returns the annotation attached to field.
func (s *State) ErrorFor(field string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors.Get(field)
}

func cloneValues(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
