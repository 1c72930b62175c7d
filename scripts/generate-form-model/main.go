package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-signupform/internal/contract"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/signup"
)

func main() {
	var (
		outputPath = flag.String("output", "form_model.json", "output path for the serialized form model")
		format     = flag.String("format", "json", "json or yaml")
	)
	flag.Parse()

	ctx := context.Background()
	form := signup.Form()

	if err := model.Check(form); err != nil {
		fmt.Fprintf(os.Stderr, "invalid form model: %v\n", err)
		os.Exit(1)
	}

	endpoint, err := contract.ResolveDefault(ctx, form.OperationID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve contract: %v\n", err)
		os.Exit(1)
	}
	if !strings.EqualFold(endpoint.Method, form.Method) || endpoint.Path != form.Endpoint {
		fmt.Fprintf(os.Stderr, "form model targets %s %s but the contract declares %s %s\n",
			form.Method, form.Endpoint, endpoint.Method, endpoint.Path)
		os.Exit(1)
	}

	payload, err := encode(form, *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode form model: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote form model snapshot to %s\n", *outputPath)
}

func encode(form model.FormModel, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(form)
	default:
		return json.MarshalIndent(form, "", "  ")
	}
}
