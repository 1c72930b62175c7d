package signup

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-signupform/internal/logging"
	"github.com/goliatone/go-signupform/pkg/i18n"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// Outcome is the terminal state of one submission attempt.
type Outcome string

const (
	// OutcomeInvalid means the rule table rejected the input; field errors
	// were published and nothing was sent.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeMismatch means the password confirmation differed.
	OutcomeMismatch Outcome = "mismatch"
	// OutcomeCreated means the account was created and the screen was left.
	OutcomeCreated Outcome = "created"
	// OutcomeFailed means the create-account call failed.
	OutcomeFailed Outcome = "failed"
	// OutcomeBusy means another attempt was still in flight; nothing happened.
	OutcomeBusy Outcome = "busy"
)

// Submitter sequences one sign-up attempt: clear errors, validate, compare the
// password confirmation, create the account, then notify and navigate. At
// most one attempt runs at a time.
type Submitter struct {
	creator    AccountCreator
	notifier   Notifier
	navigator  Navigator
	sink       ErrorSink
	translator i18n.Translator
	locale     string
	appName    string
	logger     *slog.Logger

	inFlight atomic.Bool

	mu      sync.RWMutex
	errors  render.FieldErrors
	lastErr error
}

// NewSubmitter constructs a Submitter around creator.
func NewSubmitter(creator AccountCreator, opts ...Option) (*Submitter, error) {
	if creator == nil {
		return nil, errors.New("signup: account creator is required")
	}
	s := &Submitter{
		creator:    creator,
		notifier:   noopNotifier{},
		navigator:  noopNavigator{},
		translator: i18n.DefaultCatalog(),
		locale:     i18n.DefaultLocale,
		appName:    DefaultAppName,
		logger:     logging.Discard(),
		errors:     render.FieldErrors{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Submit runs one attempt for input. The exact input is sent when the attempt
// reaches the create-account step.
func (s *Submitter) Submit(ctx context.Context, input Input) Outcome {
	return s.submit(ctx, input.Values(), &input)
}

// SubmitForm reads the current values from registry and runs one attempt.
// Values that do not parse (a non-numeric tax id) are reported as field
// errors.
func (s *Submitter) SubmitForm(ctx context.Context, registry FieldRegistry) Outcome {
	return s.submit(ctx, ValuesFrom(registry), nil)
}

// Errors returns the field annotations published by the last attempt.
func (s *Submitter) Errors() render.FieldErrors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors.Clone()
}

// LastError returns the error that ended the last attempt, or nil after a
// success.
func (s *Submitter) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// InFlight reports whether an attempt is currently running.
func (s *Submitter) InFlight() bool {
	return s.inFlight.Load()
}

func (s *Submitter) submit(ctx context.Context, values validation.Values, input *Input) Outcome {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Debug("sign-up submission ignored, attempt in flight")
		return OutcomeBusy
	}
	defer s.inFlight.Store(false)

	s.publishErrors(render.FieldErrors{})

	err := s.attempt(ctx, values, input)

	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()

	return s.conclude(ctx, err)
}

func (s *Submitter) attempt(ctx context.Context, values validation.Values, input *Input) error {
	result := ValidateValues(values,
		validation.WithTranslator(s.translator),
		validation.WithLocale(s.locale),
	)
	if !result.Valid {
		return &FieldValidationError{Result: result}
	}

	in := InputFromValues(values)
	if input != nil {
		in = *input
	}
	if !in.PasswordsMatch() {
		return ErrPasswordMismatch
	}

	if err := s.creator.CreateAccount(ctx, in); err != nil {
		return &RemoteError{Err: err}
	}
	return nil
}

func (s *Submitter) conclude(ctx context.Context, err error) Outcome {
	var fieldErr *FieldValidationError
	switch {
	case err == nil:
		s.logger.Info("sign-up account created")
		s.notify(ctx, NoticeCreated)
		s.navigator.Back(ctx)
		return OutcomeCreated

	case errors.As(err, &fieldErr):
		errs := render.PresentErrors(fieldErr.Result)
		s.logger.Debug("sign-up rejected by validation", "fields", errs.Fields())
		s.publishErrors(errs)
		return OutcomeInvalid

	case errors.Is(err, ErrPasswordMismatch):
		s.logger.Debug("sign-up rejected, password confirmation differs")
		s.notify(ctx, NoticePasswordMismatch)
		return OutcomeMismatch

	default:
		s.logger.Warn("sign-up create account failed", "error", err)
		s.notify(ctx, NoticeFailed)
		return OutcomeFailed
	}
}

func (s *Submitter) publishErrors(errs render.FieldErrors) {
	s.mu.Lock()
	s.errors = errs
	s.mu.Unlock()
	if s.sink != nil {
		s.sink.SetErrors(errs.Clone())
	}
}

func (s *Submitter) notify(ctx context.Context, kind NoticeKind) {
	s.notifier.Notify(ctx, s.notice(kind))
}

func (s *Submitter) notice(kind NoticeKind) Notice {
	params := i18n.Params{"app": s.appName}
	prefix := "notice." + string(kind)
	return Notice{
		Kind:  kind,
		Title: i18n.Translate(s.translator, s.locale, prefix+".title", params),
		Body:  i18n.Translate(s.translator, s.locale, prefix+".body", params),
	}
}
