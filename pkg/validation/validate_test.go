package validation_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/validation"
)

func TestValidate_CollectsEveryViolation(t *testing.T) {
	fields := []model.Field{
		{Name: "nickname", Required: true},
		{Name: "age", Type: model.FieldTypeInteger, Required: true, Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleMin, Params: map[string]string{"value": "18"}},
			{Kind: model.ValidationRuleMax, Params: map[string]string{"value": "130"}},
		}},
		{Name: "contact", Format: "email"},
		{Name: "secret", Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleMinLength, Params: map[string]string{"value": "6"}},
			{Kind: model.ValidationRuleMaxLength, Params: map[string]string{"value": "8"}},
		}},
	}
	values := validation.Values{
		"nickname": "   ",
		"age":      "12",
		"contact":  "not-an-address",
		"secret":   "abc",
	}

	result := validation.Validate(values, fields, validation.WithLocale("en"))
	if result.Valid {
		t.Fatalf("expected invalid result")
	}

	want := []validation.Issue{
		{Field: "nickname", Rule: model.ValidationRuleRequired, Message: "Nickname is required!"},
		{Field: "age", Rule: model.ValidationRuleMin, Message: "Age must be greater than or equal to 18!"},
		{Field: "contact", Rule: model.ValidationRuleEmail, Message: "Enter a valid e-mail!"},
		{Field: "secret", Rule: model.ValidationRuleMinLength, Message: "At least 6 characters!"},
	}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"nickname", "age", "contact", "secret"}, result.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_RuleOrderWithinField(t *testing.T) {
	fields := []model.Field{{
		Name:     "code",
		Type:     model.FieldTypeNumber,
		Required: true,
		Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleMaxLength, Params: map[string]string{"value": "2"}},
			{Kind: model.ValidationRuleMin, Params: map[string]string{"value": "100"}},
		},
	}}

	result := validation.Validate(validation.Values{"code": "abc"}, fields, validation.WithLocale("en"))
	var rules []string
	for _, issue := range result.For("code") {
		rules = append(rules, issue.Rule)
	}
	// min skips non-numeric input; number reports it.
	want := []string{model.ValidationRuleNumber, model.ValidationRuleMaxLength}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Fatalf("rule order mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_BlankValues(t *testing.T) {
	fields := []model.Field{
		{Name: "optionalNumber", Type: model.FieldTypeInteger, Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleMin, Params: map[string]string{"value": "1"}},
		}},
		{Name: "optionalEmail", Format: "email"},
		{Name: "pin", Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleMinLength, Params: map[string]string{"value": "4"}},
		}},
	}

	result := validation.Validate(validation.Values{}, fields)
	if diff := cmp.Diff([]string{"pin"}, result.Fields()); diff != "" {
		t.Fatalf("only length rules apply to blank values (-want +got):\n%s", diff)
	}
}

func TestValidate_IntegerFieldsRejectNonIntegers(t *testing.T) {
	fields := []model.Field{{Name: "count", Type: model.FieldTypeInteger}}
	cases := map[string]bool{
		"12345678901":          true,
		" 42 ":                 true,
		"-7":                   true,
		"9223372036854775807":  true,
		"9223372036854775808":  false,
		"99999999999999999999": false,
		"12345678901.9":        false,
		"42.0":                 false,
		"1e30":                 false,
		"0x1F":                 false,
	}
	for value, valid := range cases {
		result := validation.Validate(validation.Values{"count": value}, fields)
		if result.Valid != valid {
			t.Fatalf("Validate(%q).Valid = %v, want %v (%+v)", value, result.Valid, valid, result.Issues)
		}
		if !valid && result.Issues[0].Rule != model.ValidationRuleNumber {
			t.Fatalf("Validate(%q) rule = %q, want number", value, result.Issues[0].Rule)
		}
	}

	// number fields keep accepting fractions.
	decimal := []model.Field{{Name: "ratio", Type: model.FieldTypeNumber}}
	if result := validation.Validate(validation.Values{"ratio": "0.5"}, decimal); !result.Valid {
		t.Fatalf("number field rejected a fraction: %+v", result.Issues)
	}
}

func TestValidate_LengthCountsRunes(t *testing.T) {
	fields := []model.Field{{Name: "word", Validations: []model.ValidationRule{
		{Kind: model.ValidationRuleMinLength, Params: map[string]string{"value": "4"}},
	}}}

	if result := validation.Validate(validation.Values{"word": "ação"}, fields); !result.Valid {
		t.Fatalf("expected four runes to satisfy minLength 4, got %+v", result.Issues)
	}
}

func TestValidate_AcceptsValidInput(t *testing.T) {
	fields := []model.Field{
		{Name: "age", Type: model.FieldTypeInteger, Required: true, Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleMin, Params: map[string]string{"value": "11"}},
		}},
		{Name: "contact", Format: "email", Required: true},
	}
	result := validation.Validate(validation.Values{"age": " 11 ", "contact": "ana@example.com"}, fields)
	if !result.Valid || len(result.Issues) != 0 {
		t.Fatalf("expected valid result, got %+v", result)
	}
}

func TestValidate_MessageKeyPrecedence(t *testing.T) {
	translator := mapTranslator{
		"rule.key":           "from rule",
		"field.key":          "from metadata",
		"validation.required": "generic",
	}
	fields := []model.Field{
		{Name: "a", Validations: []model.ValidationRule{{Kind: model.ValidationRuleRequired, Params: map[string]string{"messageKey": "rule.key"}}}, Metadata: map[string]string{"messages.required": "field.key"}},
		{Name: "b", Required: true, Metadata: map[string]string{"messages.required": "field.key"}},
		{Name: "c", Required: true},
	}

	result := validation.Validate(validation.Values{}, fields, validation.WithTranslator(translator))
	var got []string
	for _, issue := range result.Issues {
		got = append(got, issue.Message)
	}
	if diff := cmp.Diff([]string{"from rule", "from metadata", "generic"}, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_FallsBackToDefaultMessage(t *testing.T) {
	fields := []model.Field{{Name: "firstName", Required: true}}
	result := validation.Validate(validation.Values{}, fields, validation.WithTranslator(mapTranslator{}))
	if got := result.Issues[0].Message; got != "First Name is required" {
		t.Fatalf("unexpected fallback message %q", got)
	}
}

func TestValidate_TranslatesLabels(t *testing.T) {
	fields := []model.Field{{
		Name:     "nickname",
		Required: true,
		UIHints:  map[string]string{"labelKey": "field.name.label"},
	}}
	result := validation.Validate(validation.Values{}, fields)
	if got := result.Issues[0].Message; got != "Nome é obrigatório!" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestResult_Helpers(t *testing.T) {
	result := validation.Result{Issues: []validation.Issue{
		{Field: "a", Rule: "required"},
		{Field: "b", Rule: "min"},
		{Field: "a", Rule: "email"},
	}}
	if !result.Has("a") || result.Has("c") {
		t.Fatalf("Has reported wrong fields")
	}
	if got := len(result.For("a")); got != 2 {
		t.Fatalf("expected 2 issues for a, got %d", got)
	}
	if diff := cmp.Diff([]string{"a", "b"}, result.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if (validation.Result{}).Fields() != nil {
		t.Fatalf("expected nil fields for empty result")
	}
}

type mapTranslator map[string]string

func (m mapTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := m[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing " + key)
}
