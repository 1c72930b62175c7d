package contract

import (
	"context"
	"strings"
	"testing"
)

const accountsDocument = `
openapi: 3.0.3
info:
  title: Accounts v2
  version: 2.0.0
paths:
  /v2/accounts:
    put:
      operationId: registerAccount
      responses:
        "204":
          description: ok
  /v2/accounts/{id}:
    get:
      operationId: getAccount
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      responses:
        "200":
          description: ok
`

func TestResolveDefault_CreateUser(t *testing.T) {
	endpoint, err := ResolveDefault(context.Background(), "createUser")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if endpoint.Method != "POST" || endpoint.Path != "/users" {
		t.Fatalf("unexpected endpoint %s %s", endpoint.Method, endpoint.Path)
	}
	if endpoint.body == nil {
		t.Fatalf("expected request body schema")
	}
}

func TestResolve_CustomDocument(t *testing.T) {
	endpoint, err := Resolve(context.Background(), []byte(accountsDocument), "registerAccount")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if endpoint.Method != "PUT" || endpoint.Path != "/v2/accounts" {
		t.Fatalf("unexpected endpoint %s %s", endpoint.Method, endpoint.Path)
	}
	if err := endpoint.CheckBody([]byte(`{"anything":true}`)); err != nil {
		t.Fatalf("operation without schema should accept any body: %v", err)
	}
}

func TestResolve_Errors(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		raw  string
		op   string
		want string
	}{
		{name: "empty document", raw: "", op: "createUser", want: "empty"},
		{name: "missing operation id", raw: accountsDocument, op: " ", want: "operation id is required"},
		{name: "unknown operation", raw: accountsDocument, op: "deleteAccount", want: `"deleteAccount" not found`},
		{name: "malformed", raw: "openapi: [", op: "createUser", want: "load document"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(ctx, []byte(tc.raw), tc.op)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestResolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Resolve(ctx, DefaultDocument(), "createUser"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestEndpoint_CheckBody(t *testing.T) {
	endpoint, err := ResolveDefault(context.Background(), "createUser")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	valid := `{"name":"Ana","email":"ana@example.com","cpf":12345678901,"password":"abcdef","passwordConfirm":"abcdef"}`
	if err := endpoint.CheckBody([]byte(valid)); err != nil {
		t.Fatalf("valid body rejected: %v", err)
	}

	for name, body := range map[string]string{
		"missing cpf":  `{"name":"Ana","email":"ana@example.com","password":"abcdef"}`,
		"string cpf":   `{"name":"Ana","email":"ana@example.com","cpf":"123","password":"abcdef"}`,
		"not json":     `{`,
	} {
		if err := endpoint.CheckBody([]byte(body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestDefaultDocument_ReturnsCopy(t *testing.T) {
	doc := DefaultDocument()
	doc[0] = 'X'
	if DefaultDocument()[0] == 'X' {
		t.Fatalf("default document was mutated through the returned slice")
	}
}
