package signupform

import (
	"context"
	"fmt"

	"github.com/goliatone/go-signupform/pkg/client"
	"github.com/goliatone/go-signupform/pkg/signup"
)

// Input aliases signup.Input for callers that only import the root package.
type Input = signup.Input

// Outcome aliases signup.Outcome.
type Outcome = signup.Outcome

// NewSubmitter wires a submitter to the account API at baseURL. It is the
// simplest entry point for callers that bring their own notifier, navigator
// and error sink through signup options.
func NewSubmitter(ctx context.Context, baseURL string, clientOptions []client.Option, options ...signup.Option) (*signup.Submitter, error) {
	accounts, err := client.New(ctx, baseURL, clientOptions...)
	if err != nil {
		return nil, err
	}
	submitter, err := signup.NewSubmitter(accounts, options...)
	if err != nil {
		return nil, fmt.Errorf("signupform: %w", err)
	}
	return submitter, nil
}
