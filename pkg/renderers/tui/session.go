package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/goliatone/go-signupform/internal/logging"
	"github.com/goliatone/go-signupform/pkg/i18n"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/signup"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// Submitter is the part of signup.Submitter the session drives.
type Submitter interface {
	SubmitForm(ctx context.Context, registry signup.FieldRegistry) signup.Outcome
}

// Session drives a sign-up form in the terminal. It owns the field registry
// and acts as the notifier, navigator and error sink of the submitter.
type Session struct {
	driver     PromptDriver
	form       model.FormModel
	state      *State
	translator i18n.Translator
	locale     string
	theme      Theme
	logger     *slog.Logger

	promptValidation bool

	left atomic.Bool
}

var (
	_ signup.Notifier  = (*Session)(nil)
	_ signup.Navigator = (*Session)(nil)
	_ signup.ErrorSink = (*Session)(nil)
)

// New constructs a session for form with defaults (survey driver, bundled
// catalog).
func New(form model.FormModel, options ...Option) (*Session, error) {
	if len(form.Fields) == 0 {
		return nil, errors.New("tui: form has no fields")
	}
	if err := model.Check(form); err != nil {
		return nil, err
	}
	s := &Session{
		driver:     newSurveyDriver(),
		form:       form,
		state:      NewState(nil),
		translator: i18n.DefaultCatalog(),
		locale:     i18n.DefaultLocale,
		theme:      DefaultTheme,
		logger:     logging.Discard(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// State exposes the field registry.
func (s *Session) State() *State {
	return s.state
}

// Left reports whether the session navigated away from the form.
func (s *Session) Left() bool {
	return s.left.Load()
}

// Notify prints a notice. Failures to print are logged, never returned.
func (s *Session) Notify(ctx context.Context, notice signup.Notice) {
	prefix := s.theme.InfoPrefix
	if notice.Kind != signup.NoticeCreated {
		prefix = s.theme.ErrorPrefix
	}
	for _, line := range []string{notice.Title, notice.Body} {
		if line = i18n.Plain(line); line == "" {
			continue
		}
		if err := s.driver.Info(ctx, prefix+line); err != nil {
			s.logger.Warn("tui: print notice", "kind", notice.Kind, "error", err)
			return
		}
	}
}

// Back ends the session.
func (s *Session) Back(context.Context) {
	s.left.Store(true)
}

// SetErrors forwards field annotations to the registry.
func (s *Session) SetErrors(errs render.FieldErrors) {
	s.state.SetErrors(errs)
}

// Run prompts every field and submits until the account is created or the
// user leaves. After a rejected attempt only the affected fields are asked
// again, with the previous answer offered as the default.
func (s *Session) Run(ctx context.Context, submitter Submitter) error {
	if submitter == nil {
		return ErrNoSubmitter
	}
	if title := s.translate(s.form.UIHints["titleKey"], s.form.Summary); title != "" {
		if err := s.driver.Info(ctx, s.theme.TitlePrefix+title); err != nil {
			return err
		}
	}

	pending := s.form.Fields
	for !s.left.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, field := range pending {
			if err := s.promptField(ctx, field); err != nil {
				return s.leave(ctx, err)
			}
		}

		outcome := submitter.SubmitForm(ctx, s.state)
		s.logger.Debug("tui: submission finished", "outcome", outcome)

		switch outcome {
		case signup.OutcomeCreated:
			s.left.Store(true)
			return nil
		case signup.OutcomeInvalid:
			if pending = s.fieldsWithErrors(); len(pending) == 0 {
				pending = s.form.Fields
			}
		case signup.OutcomeMismatch:
			pending = s.secretFields()
		case signup.OutcomeFailed:
			retry, err := s.driver.Confirm(ctx, ConfirmConfig{
				Message: s.translate("form.retry", "Try again?"),
				Default: true,
			})
			if err != nil {
				return s.leave(ctx, err)
			}
			if !retry {
				return s.leave(ctx, ErrAborted)
			}
			pending = nil
		default:
			return fmt.Errorf("tui: unexpected submission outcome %q", outcome)
		}
	}
	return nil
}

func (s *Session) leave(ctx context.Context, err error) error {
	if errors.Is(err, ErrAborted) {
		s.Back(ctx)
		if msg := s.translate(s.form.UIHints["backKey"], ""); msg != "" {
			_ = s.driver.Info(ctx, s.theme.InfoPrefix+msg)
		}
	}
	return err
}

func (s *Session) promptField(ctx context.Context, field model.Field) error {
	label := s.label(field)
	if msg := s.state.ErrorFor(field.Name); msg != "" {
		line := s.translate("form.fieldError", label+": "+msg, i18n.Params{"label": label, "message": msg})
		if err := s.driver.Info(ctx, s.theme.ErrorPrefix+line); err != nil {
			return err
		}
	}

	cfg := InputConfig{
		Message: label,
		Help:    s.translate(field.UIHints["placeholderKey"], field.Placeholder),
	}
	if s.promptValidation {
		cfg.Validator = s.fieldValidator(field)
	}

	var (
		value string
		err   error
	)
	if isSecret(field) {
		value, err = s.driver.Password(ctx, cfg)
	} else {
		cfg.Default = s.state.Value(field.Name)
		value, err = s.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}
	s.state.SetValue(field.Name, value)
	return nil
}

// fieldValidator reports the first rule the answer breaks, worded the same way
// the submission annotates the field.
func (s *Session) fieldValidator(field model.Field) func(string) error {
	fields := []model.Field{field}
	return func(value string) error {
		result := validation.Validate(validation.Values{field.Name: value}, fields,
			validation.WithTranslator(s.translator),
			validation.WithLocale(s.locale),
		)
		if issues := result.For(field.Name); len(issues) > 0 {
			return errors.New(issues[0].Message)
		}
		return nil
	}
}

func (s *Session) fieldsWithErrors() []model.Field {
	errs := s.state.Errors()
	var out []model.Field
	for _, field := range s.form.Fields {
		if errs.Has(field.Name) {
			out = append(out, field)
		}
	}
	return out
}

func (s *Session) secretFields() []model.Field {
	var out []model.Field
	for _, field := range s.form.Fields {
		if isSecret(field) {
			out = append(out, field)
		}
	}
	return out
}

func (s *Session) label(field model.Field) string {
	return s.translate(field.UIHints["labelKey"], model.DisplayLabel(field))
}

func (s *Session) translate(key, fallback string, params ...i18n.Params) string {
	if strings.TrimSpace(key) == "" {
		return i18n.Plain(fallback)
	}
	args := i18n.Params{"default": fallback}
	if len(params) > 0 {
		for k, v := range params[0] {
			args[k] = v
		}
	}
	return i18n.Translate(s.translator, s.locale, key, args)
}

func isSecret(field model.Field) bool {
	return field.Format == "password" || strings.EqualFold(field.UIHints["secret"], "true")
}
