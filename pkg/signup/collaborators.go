package signup

import (
	"context"

	"github.com/goliatone/go-signupform/pkg/render"
)

// AccountCreator performs the create-account call. Any returned error counts
// as a failed attempt.
type AccountCreator interface {
	CreateAccount(ctx context.Context, input Input) error
}

// AccountCreatorFunc adapts a function into an AccountCreator.
type AccountCreatorFunc func(ctx context.Context, input Input) error

// CreateAccount calls the underlying function.
func (fn AccountCreatorFunc) CreateAccount(ctx context.Context, input Input) error {
	return fn(ctx, input)
}

// NoticeKind classifies user-facing notices.
type NoticeKind string

const (
	// NoticePasswordMismatch is the blocking business rule notice.
	NoticePasswordMismatch NoticeKind = "passwordMismatch"
	// NoticeCreated confirms the account was created.
	NoticeCreated NoticeKind = "created"
	// NoticeFailed is the generic failure notice.
	NoticeFailed NoticeKind = "failed"
)

// Notice is a modal message shown to the user.
type Notice struct {
	Kind  NoticeKind
	Title string
	Body  string
}

// Notifier shows notices. Notify is fire-and-forget and returns once the
// notice has been handed to the user.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

// NotifierFunc adapts a function into a Notifier.
type NotifierFunc func(ctx context.Context, notice Notice)

// Notify calls the underlying function.
func (fn NotifierFunc) Notify(ctx context.Context, notice Notice) {
	fn(ctx, notice)
}

// Navigator leaves the sign-up screen.
type Navigator interface {
	Back(ctx context.Context)
}

// NavigatorFunc adapts a function into a Navigator.
type NavigatorFunc func(ctx context.Context)

// Back calls the underlying function.
func (fn NavigatorFunc) Back(ctx context.Context) {
	fn(ctx)
}

// ErrorSink receives the field annotations to draw. An empty map clears them.
type ErrorSink interface {
	SetErrors(errs render.FieldErrors)
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, Notice) {}

type noopNavigator struct{}

func (noopNavigator) Back(context.Context) {}
