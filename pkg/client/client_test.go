package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/client"
	"github.com/goliatone/go-signupform/pkg/signup"
)

type recordedRequest struct {
	Method    string
	Path      string
	RequestID string
	Type      string
	Tenant    string
	Body      map[string]any
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
}

func (f *fakeAPI) handler(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method:    r.Method,
		Path:      r.URL.Path,
		RequestID: r.Header.Get(client.RequestIDHeader),
		Type:      r.Header.Get("Content-Type"),
		Tenant:    r.Header.Get("X-Tenant"),
		Body:      body,
	})
	status := f.status
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusCreated
	}
	w.WriteHeader(status)
	if status >= 400 {
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}
}

func (f *fakeAPI) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func newServer(t *testing.T, api *fakeAPI, mount func(r chi.Router)) *httptest.Server {
	t.Helper()
	router := chi.NewRouter()
	mount(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func sampleInput() signup.Input {
	return signup.Input{
		Name:            "Ana Souza",
		Email:           "ana@example.com",
		TaxID:           12345678901,
		Password:        "abcdef",
		PasswordConfirm: "abcdef",
	}
}

func TestCreateAccount_PostsInputToUsers(t *testing.T) {
	api := &fakeAPI{}
	srv := newServer(t, api, func(r chi.Router) {
		r.Post("/users", api.handler)
	})

	c, err := client.New(context.Background(), srv.URL,
		client.WithRequestIDFunc(func() string { return "req-1" }),
		client.WithHeader("X-Tenant", "boleia"),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if method, path := c.Endpoint(); method != http.MethodPost || path != "/users" {
		t.Fatalf("endpoint = %s %s", method, path)
	}

	if err := c.CreateAccount(context.Background(), sampleInput()); err != nil {
		t.Fatalf("create account: %v", err)
	}

	want := []recordedRequest{{
		Method:    http.MethodPost,
		Path:      "/users",
		RequestID: "req-1",
		Type:      "application/json",
		Tenant:    "boleia",
		Body: map[string]any{
			"name":            "Ana Souza",
			"email":           "ana@example.com",
			"cpf":             float64(12345678901),
			"password":        "abcdef",
			"passwordConfirm": "abcdef",
		},
	}}
	if diff := cmp.Diff(want, api.recorded()); diff != "" {
		t.Fatalf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateAccount_GeneratesRequestIDs(t *testing.T) {
	api := &fakeAPI{}
	srv := newServer(t, api, func(r chi.Router) {
		r.Post("/users", api.handler)
	})
	c, err := client.New(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := c.CreateAccount(context.Background(), sampleInput()); err != nil {
			t.Fatalf("create account: %v", err)
		}
	}
	requests := api.recorded()
	first, second := requests[0].RequestID, requests[1].RequestID
	if first == "" || first == second {
		t.Fatalf("expected distinct request ids, got %q and %q", first, second)
	}
}

func TestCreateAccount_BaseURLWithPrefix(t *testing.T) {
	api := &fakeAPI{}
	srv := newServer(t, api, func(r chi.Router) {
		r.Route("/api", func(r chi.Router) {
			r.Post("/users", api.handler)
		})
	})
	c, err := client.New(context.Background(), srv.URL+"/api/")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := c.CreateAccount(context.Background(), sampleInput()); err != nil {
		t.Fatalf("create account: %v", err)
	}
	if got := api.recorded()[0].Path; got != "/api/users" {
		t.Fatalf("path = %q", got)
	}
}

func TestCreateAccount_StatusError(t *testing.T) {
	api := &fakeAPI{status: http.StatusInternalServerError}
	srv := newServer(t, api, func(r chi.Router) {
		r.Post("/users", api.handler)
	})
	c, err := client.New(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = c.CreateAccount(context.Background(), sampleInput())
	var statusErr *client.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError || statusErr.Body != `{"error":"boom"}` {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
	if !client.IsStatus(err, http.StatusInternalServerError) || client.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("IsStatus mismatch for %v", err)
	}
}

func TestCreateAccount_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := client.New(context.Background(), url)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := c.CreateAccount(context.Background(), sampleInput()); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestCreateAccount_ContractViolationIsNotSent(t *testing.T) {
	document := []byte(`
openapi: 3.0.3
info:
  title: Strict accounts
  version: 1.0.0
paths:
  /accounts:
    put:
      operationId: registerAccount
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                name:
                  type: string
                  minLength: 20
      responses:
        "204":
          description: ok
`)
	api := &fakeAPI{}
	srv := newServer(t, api, func(r chi.Router) {
		r.Put("/accounts", api.handler)
	})
	c, err := client.New(context.Background(), srv.URL,
		client.WithContract(document),
		client.WithOperationID("registerAccount"),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if method, path := c.Endpoint(); method != http.MethodPut || path != "/accounts" {
		t.Fatalf("endpoint = %s %s", method, path)
	}

	if err := c.CreateAccount(context.Background(), sampleInput()); err == nil {
		t.Fatalf("expected contract violation")
	}
	if len(api.recorded()) != 0 {
		t.Fatalf("violating body was sent")
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	if _, err := client.New(ctx, "ftp://example.com"); err == nil {
		t.Fatalf("expected scheme error")
	}
	if _, err := client.New(ctx, "://bad"); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := client.New(ctx, "http://localhost", client.WithOperationID("missingOp")); err == nil {
		t.Fatalf("expected unknown operation error")
	}
}

func TestClient_DrivesSubmitter(t *testing.T) {
	api := &fakeAPI{}
	srv := newServer(t, api, func(r chi.Router) {
		r.Post("/users", api.handler)
	})
	c, err := client.New(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	s, err := signup.NewSubmitter(c)
	if err != nil {
		t.Fatalf("new submitter: %v", err)
	}

	if got := s.Submit(context.Background(), sampleInput()); got != signup.OutcomeCreated {
		t.Fatalf("outcome = %q", got)
	}

	api.mu.Lock()
	api.status = http.StatusBadRequest
	api.mu.Unlock()
	if got := s.Submit(context.Background(), sampleInput()); got != signup.OutcomeFailed {
		t.Fatalf("outcome = %q", got)
	}
	if !client.IsStatus(s.LastError(), http.StatusBadRequest) {
		t.Fatalf("expected 400 status error, got %v", s.LastError())
	}
}
