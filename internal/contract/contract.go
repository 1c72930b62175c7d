// Package contract resolves operations of the account API from its OpenAPI
// description using kin-openapi.
package contract

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var defaultDocument []byte

// DefaultDocument returns the bundled account API description.
func DefaultDocument() []byte {
	out := make([]byte, len(defaultDocument))
	copy(out, defaultDocument)
	return out
}

// Endpoint is a resolved operation: where to send it and the JSON schema its
// request body must satisfy.
type Endpoint struct {
	OperationID string
	Method      string
	Path        string

	body *openapi3.Schema
}

// CheckBody validates a JSON request body against the operation's schema. An
// operation without a JSON request schema accepts any body.
func (e Endpoint) CheckBody(body []byte) error {
	if e.body == nil {
		return nil
	}
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("contract: decode body: %w", err)
	}
	if err := e.body.VisitJSON(value); err != nil {
		return fmt.Errorf("contract: %s request body: %w", e.OperationID, err)
	}
	return nil
}

// Resolve loads raw (JSON or YAML), validates it, and returns the operation
// named operationID.
func Resolve(ctx context.Context, raw []byte, operationID string) (Endpoint, error) {
	if err := ctx.Err(); err != nil {
		return Endpoint{}, err
	}
	if len(raw) == 0 {
		return Endpoint{}, errors.New("contract: document payload is empty")
	}
	operationID = strings.TrimSpace(operationID)
	if operationID == "" {
		return Endpoint{}, errors.New("contract: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return Endpoint{}, fmt.Errorf("contract: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return Endpoint{}, fmt.Errorf("contract: validate: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return Endpoint{}, errors.New("contract: document does not contain any paths")
	}

	paths := make([]string, 0, doc.Paths.Len())
	for path := range doc.Paths.Map() {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		item := doc.Paths.Value(path)
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil || op.OperationID != operationID {
				continue
			}
			return Endpoint{
				OperationID: operationID,
				Method:      strings.ToUpper(method),
				Path:        path,
				body:        jsonRequestSchema(op),
			}, nil
		}
	}
	return Endpoint{}, fmt.Errorf("contract: operation %q not found", operationID)
}

// ResolveDefault resolves operationID against the bundled document.
func ResolveDefault(ctx context.Context, operationID string) (Endpoint, error) {
	return Resolve(ctx, defaultDocument, operationID)
}

func jsonRequestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}
