package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-signupform/internal/contract"
	"github.com/goliatone/go-signupform/internal/logging"
	"github.com/goliatone/go-signupform/pkg/signup"
)

// RequestIDHeader carries a fresh id on every create-account request.
const RequestIDHeader = "X-Request-ID"

const maxErrorBody = 4 << 10

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("client: unexpected status %s", e.Status)
	}
	return fmt.Sprintf("client: unexpected status %s: %s", e.Status, e.Body)
}

// Client calls the account API. The create-account method and path come from
// the API contract.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	endpoint   contract.Endpoint
	headers    http.Header
	logger     *slog.Logger
	requestID  func() string
}

var _ signup.AccountCreator = (*Client)(nil)

// New resolves the create-account operation and returns a client for
// baseURL.
func New(ctx context.Context, baseURL string, options ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("client: parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("client: base url %q must be http or https", baseURL)
	}

	cfg := config{
		httpClient:  http.DefaultClient,
		operationID: signup.OperationID,
		requestID:   func() string { return uuid.NewString() },
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	document := cfg.document
	if len(document) == 0 {
		document = contract.DefaultDocument()
	}
	endpoint, err := contract.Resolve(ctx, document, cfg.operationID)
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}

	logger := cfg.logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Client{
		baseURL:    parsed,
		httpClient: cfg.httpClient,
		endpoint:   endpoint,
		headers:    cfg.headers.Clone(),
		logger:     logger,
		requestID:  cfg.requestID,
	}, nil
}

// Endpoint reports the resolved create-account method and path.
func (c *Client) Endpoint() (method, path string) {
	return c.endpoint.Method, c.endpoint.Path
}

// CreateAccount sends input as JSON. Any transport failure, contract
// violation or non-2xx status is returned as an error.
func (c *Client) CreateAccount(ctx context.Context, input signup.Input) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("client: encode input: %w", err)
	}
	if err := c.endpoint.CheckBody(body); err != nil {
		return fmt.Errorf("client: %w", err)
	}

	target := c.baseURL.JoinPath(c.endpoint.Path)
	req, err := http.NewRequestWithContext(ctx, c.endpoint.Method, target.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	for name, values := range c.headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	requestID := c.requestID()
	req.Header.Set(RequestIDHeader, requestID)

	c.logger.Info("creating account",
		"method", req.Method,
		"url", target.Redacted(),
		"request_id", requestID,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("create account rejected",
			"status", resp.StatusCode,
			"request_id", requestID,
		)
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Info("account created", "status", resp.StatusCode, "request_id", requestID)
	return nil
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
