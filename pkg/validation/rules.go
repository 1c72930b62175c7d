package validation

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-signupform/pkg/model"
)

// check is one compiled row of a field's rule table.
type check struct {
	kind  string
	bound float64
	rule  model.ValidationRule
	test  func(value string, bound float64) bool
}

// ruleOrder fixes the evaluation order inside a field so the first issue of a
// field is the most fundamental one (presence before type before range).
var ruleOrder = []string{
	model.ValidationRuleRequired,
	model.ValidationRuleNumber,
	model.ValidationRuleMin,
	model.ValidationRuleMax,
	model.ValidationRuleMinLength,
	model.ValidationRuleMaxLength,
	model.ValidationRuleEmail,
}

var (
	emailValidatorOnce sync.Once
	emailValidator     *validator.Validate
)

// compile turns the declarative field description into an ordered rule table.
// Required, numeric type and e-mail format may be declared either as explicit
// rules or through Field.Required, Field.Type and Field.Format.
func compile(field model.Field) []check {
	declared := make(map[string]model.ValidationRule, len(field.Validations)+3)
	for _, rule := range field.Validations {
		if _, exists := declared[rule.Kind]; !exists {
			declared[rule.Kind] = rule
		}
	}
	if field.Required {
		addImplied(declared, model.ValidationRuleRequired)
	}
	if field.Type == model.FieldTypeInteger || field.Type == model.FieldTypeNumber {
		addImplied(declared, model.ValidationRuleNumber)
	}
	if strings.EqualFold(field.Format, "email") {
		addImplied(declared, model.ValidationRuleEmail)
	}

	checks := make([]check, 0, len(declared))
	for _, kind := range ruleOrder {
		rule, ok := declared[kind]
		if !ok {
			continue
		}
		c := check{kind: kind, rule: rule}
		switch kind {
		case model.ValidationRuleRequired:
			c.test = isPresent
		case model.ValidationRuleNumber:
			c.test = isNumberOrBlank
			if field.Type == model.FieldTypeInteger {
				c.test = isIntegerOrBlank
			}
		case model.ValidationRuleMin:
			c.test = atLeast
		case model.ValidationRuleMax:
			c.test = atMost
		case model.ValidationRuleMinLength:
			c.test = longEnough
		case model.ValidationRuleMaxLength:
			c.test = shortEnough
		case model.ValidationRuleEmail:
			c.test = isEmailOrBlank
		}
		if bound, ok := parseNumber(rule.Params["value"]); ok {
			c.bound = bound
		} else if kind != model.ValidationRuleRequired && kind != model.ValidationRuleNumber && kind != model.ValidationRuleEmail {
			// a bound that does not parse cannot be enforced
			continue
		}
		checks = append(checks, c)
	}
	return checks
}

func addImplied(declared map[string]model.ValidationRule, kind string) {
	if _, exists := declared[kind]; exists {
		return
	}
	declared[kind] = model.ValidationRule{Kind: kind}
}

func isPresent(value string, _ float64) bool {
	return strings.TrimSpace(value) != ""
}

func isNumberOrBlank(value string, _ float64) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	_, ok := parseNumber(value)
	return ok
}

// Integer fields take base 10 digits that fit an int64; fractions, exponents
// and overflowing values are rejected rather than rounded.
func isIntegerOrBlank(value string, _ float64) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	_, err := strconv.ParseInt(trimmed, 10, 64)
	return err == nil
}

// Range rules skip blank and non-numeric values; required and number report
// those.
func atLeast(value string, bound float64) bool {
	n, ok := parseNumber(value)
	return !ok || n >= bound
}

func atMost(value string, bound float64) bool {
	n, ok := parseNumber(value)
	return !ok || n <= bound
}

// Length rules apply to blank values too: an empty password is shorter than
// any positive minimum.
func longEnough(value string, bound float64) bool {
	return float64(utf8.RuneCountInString(value)) >= bound
}

func shortEnough(value string, bound float64) bool {
	return float64(utf8.RuneCountInString(value)) <= bound
}

func isEmailOrBlank(value string, _ float64) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	emailValidatorOnce.Do(func() {
		emailValidator = validator.New()
	})
	return emailValidator.Var(trimmed, "required,email") == nil
}

func parseNumber(value string) (float64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func formatBound(bound float64) string {
	return strconv.FormatFloat(bound, 'f', -1, 64)
}
