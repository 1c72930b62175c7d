package signup

import (
	"log/slog"
	"strings"

	"github.com/goliatone/go-signupform/pkg/i18n"
)

// DefaultAppName is interpolated into the success notice.
const DefaultAppName = "Saúde na Boleia"

// Option configures a Submitter.
type Option func(*Submitter)

// WithNotifier routes notices to n.
func WithNotifier(n Notifier) Option {
	return func(s *Submitter) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithNavigator sets the collaborator told to leave the screen after success.
func WithNavigator(n Navigator) Option {
	return func(s *Submitter) {
		if n != nil {
			s.navigator = n
		}
	}
}

// WithErrorSink sets the collaborator that draws field annotations.
func WithErrorSink(sink ErrorSink) Option {
	return func(s *Submitter) {
		s.sink = sink
	}
}

// WithTranslator overrides the message catalog used for field errors and
// notices.
func WithTranslator(t i18n.Translator) Option {
	return func(s *Submitter) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithLocale selects the locale messages are rendered in.
func WithLocale(locale string) Option {
	return func(s *Submitter) {
		if trimmed := strings.TrimSpace(locale); trimmed != "" {
			s.locale = trimmed
		}
	}
}

// WithAppName overrides the application name shown in the success notice.
func WithAppName(name string) Option {
	return func(s *Submitter) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			s.appName = trimmed
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Submitter) {
		if logger != nil {
			s.logger = logger
		}
	}
}
