package tui

import "errors"

var (
	// ErrAborted signals the user left the form (Ctrl+C, or declined to retry
	// after a failure).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoSubmitter is returned by Run when no submitter is supplied.
	ErrNoSubmitter = errors.New("tui: submitter is required")
)
