package contract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SourceKind identifies where a contract document is read from.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindURL  SourceKind = "url"
)

// KindOf classifies location: http and https URLs are fetched, anything else
// is a file path.
func KindOf(location string) SourceKind {
	if u, err := url.Parse(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return SourceKindURL
	}
	return SourceKindFile
}

// Loader reads contract documents from disk or over HTTP.
type Loader struct {
	http    *http.Client
	timeout time.Duration
}

// NewLoader constructs a Loader. A nil client disables URL sources; timeout
// bounds each fetch when positive.
func NewLoader(client *http.Client, timeout time.Duration) *Loader {
	return &Loader{http: client, timeout: timeout}
}

// Load returns the raw document at location.
func (l *Loader) Load(ctx context.Context, location string) ([]byte, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.New("contract loader: location is required")
	}

	var (
		data []byte
		err  error
	)
	switch KindOf(location) {
	case SourceKindURL:
		data, err = l.loadHTTP(ctx, location)
	default:
		data, err = loadFile(ctx, location)
	}
	if err != nil {
		return nil, fmt.Errorf("contract loader: %s: %w", location, err)
	}
	return data, nil
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func (l *Loader) loadHTTP(ctx context.Context, location string) ([]byte, error) {
	if l.http == nil {
		return nil, errors.New("http support disabled")
	}

	reqCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("unexpected status " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}
