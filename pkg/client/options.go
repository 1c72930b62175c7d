package client

import (
	"log/slog"
	"net/http"
	"strings"
)

type config struct {
	httpClient  *http.Client
	document    []byte
	operationID string
	headers     http.Header
	logger      *slog.Logger
	requestID   func() string
}

// Option configures the account client.
type Option func(*config)

// WithHTTPClient overrides the HTTP client. When omitted http.DefaultClient is
// used, which applies no deadline.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		if client != nil {
			cfg.httpClient = client
		}
	}
}

// WithContract replaces the bundled OpenAPI document.
func WithContract(document []byte) Option {
	return func(cfg *config) {
		cfg.document = document
	}
}

// WithOperationID selects the operation used to create accounts.
func WithOperationID(id string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			cfg.operationID = trimmed
		}
	}
}

// WithHeader adds a header to every request.
func WithHeader(name, value string) Option {
	return func(cfg *config) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if cfg.headers == nil {
			cfg.headers = make(http.Header)
		}
		cfg.headers.Add(name, value)
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithRequestIDFunc overrides how request ids are generated.
func WithRequestIDFunc(fn func() string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.requestID = fn
		}
	}
}
