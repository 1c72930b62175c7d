package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errOperationIDMissing = errors.New("model: operation id is required")
	errFieldNameMissing   = errors.New("model: field name is required")
)

// Check reports structural problems in a form model: missing identifiers,
// duplicate field names, and rules whose thresholds do not parse.
func Check(form FormModel) error {
	if strings.TrimSpace(form.OperationID) == "" {
		return errOperationIDMissing
	}
	seen := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return errFieldNameMissing
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("model: duplicate field %q", name)
		}
		seen[name] = struct{}{}
		if err := checkRules(field); err != nil {
			return fmt.Errorf("model: field %q: %w", name, err)
		}
	}
	return nil
}

func checkRules(field Field) error {
	for _, rule := range field.Validations {
		switch rule.Kind {
		case ValidationRuleMin, ValidationRuleMax:
			if _, err := strconv.ParseFloat(rule.Params["value"], 64); err != nil {
				return fmt.Errorf("rule %s: invalid value %q", rule.Kind, rule.Params["value"])
			}
		case ValidationRuleMinLength, ValidationRuleMaxLength:
			if _, err := strconv.Atoi(rule.Params["value"]); err != nil {
				return fmt.Errorf("rule %s: invalid value %q", rule.Kind, rule.Params["value"])
			}
		case ValidationRuleRequired, ValidationRuleNumber, ValidationRuleEmail:
		default:
			return fmt.Errorf("unknown rule %q", rule.Kind)
		}
	}
	return nil
}
