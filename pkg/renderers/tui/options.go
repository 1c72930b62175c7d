package tui

import (
	"log/slog"
	"strings"

	"github.com/goliatone/go-signupform/pkg/i18n"
)

// Theme captures optional prefixes the session applies when printing
// messages. Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	TitlePrefix string
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme is used when no theme is configured.
var DefaultTheme = Theme{
	TitlePrefix: "== ",
	InfoPrefix:  "* ",
	ErrorPrefix: "! ",
}

// Option configures the terminal session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithTranslator sets the catalog used for labels and prompts.
func WithTranslator(t i18n.Translator) Option {
	return func(s *Session) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithLocale selects the locale labels and prompts are rendered in.
func WithLocale(locale string) Option {
	return func(s *Session) {
		if trimmed := strings.TrimSpace(locale); trimmed != "" {
			s.locale = trimmed
		}
	}
}

// WithPrefill seeds field values, for example from command line flags.
func WithPrefill(values map[string]string) Option {
	return func(s *Session) {
		for field, value := range values {
			s.state.SetValue(field, value)
		}
	}
}

// WithPromptValidation checks each answer against its field rules while the
// field is being prompted, so a rejected value is asked again before the
// form is submitted. Submission still validates the whole form.
func WithPromptValidation(enabled bool) Option {
	return func(s *Session) {
		s.promptValidation = enabled
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
