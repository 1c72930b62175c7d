package validation

import (
	"strings"

	"github.com/goliatone/go-signupform/pkg/i18n"
	"github.com/goliatone/go-signupform/pkg/model"
)

// Values holds raw field input keyed by field name.
type Values map[string]string

// Issue is a single violated rule.
type Issue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result captures the outcome of a validation pass. Issues follow field
// declaration order, then rule order within a field.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Fields lists the fields that have at least one issue, in issue order.
func (r Result) Fields() []string {
	if len(r.Issues) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(r.Issues))
	out := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if _, ok := seen[issue.Field]; ok {
			continue
		}
		seen[issue.Field] = struct{}{}
		out = append(out, issue.Field)
	}
	return out
}

// For returns the issues attached to field.
func (r Result) For(field string) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Field == field {
			out = append(out, issue)
		}
	}
	return out
}

// Has reports whether field has at least one issue.
func (r Result) Has(field string) bool {
	for _, issue := range r.Issues {
		if issue.Field == field {
			return true
		}
	}
	return false
}

// Option configures a validation pass.
type Option func(*config)

type config struct {
	translator i18n.Translator
	locale     string
}

// WithTranslator sets the translator used to resolve issue messages. Without
// one the bundled catalog is used.
func WithTranslator(t i18n.Translator) Option {
	return func(cfg *config) {
		if t != nil {
			cfg.translator = t
		}
	}
}

// WithLocale selects the locale issue messages are rendered in.
func WithLocale(locale string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(locale); trimmed != "" {
			cfg.locale = trimmed
		}
	}
}

var defaultCatalog = i18n.DefaultCatalog()

// Validate evaluates every rule of every field against values and collects
// all violations. It has no side effects.
func Validate(values Values, fields []model.Field, opts ...Option) Result {
	cfg := config{
		translator: defaultCatalog,
		locale:     i18n.DefaultLocale,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	result := Result{Valid: true}
	for _, field := range fields {
		value := values[field.Name]
		for _, c := range compile(field) {
			if c.test(value, c.bound) {
				continue
			}
			result.Issues = append(result.Issues, Issue{
				Field:   field.Name,
				Rule:    c.kind,
				Message: message(cfg, field, c),
			})
		}
	}
	result.Valid = len(result.Issues) == 0
	return result
}

func message(cfg config, field model.Field, c check) string {
	label := fieldLabel(cfg, field)
	params := i18n.Params{
		"field":   field.Name,
		"label":   label,
		"default": defaultMessage(label, c),
	}
	switch c.kind {
	case model.ValidationRuleMin, model.ValidationRuleMinLength:
		params["min"] = formatBound(c.bound)
	case model.ValidationRuleMax, model.ValidationRuleMaxLength:
		params["max"] = formatBound(c.bound)
	}
	return i18n.Translate(cfg.translator, cfg.locale, messageKey(field, c), params)
}

// messageKey picks the most specific key: the rule's own messageKey param,
// then the field's "messages.<rule>" metadata, then the generic
// "validation.<rule>" entry.
func messageKey(field model.Field, c check) string {
	if key := strings.TrimSpace(c.rule.Params["messageKey"]); key != "" {
		return key
	}
	if key := strings.TrimSpace(field.Metadata["messages."+c.kind]); key != "" {
		return key
	}
	return "validation." + c.kind
}

func fieldLabel(cfg config, field model.Field) string {
	fallback := model.DisplayLabel(field)
	key := strings.TrimSpace(field.UIHints["labelKey"])
	if key == "" {
		return fallback
	}
	return i18n.Translate(cfg.translator, cfg.locale, key, i18n.Params{"default": fallback})
}

func defaultMessage(label string, c check) string {
	switch c.kind {
	case model.ValidationRuleRequired:
		return label + " is required"
	case model.ValidationRuleNumber:
		return label + " must be a number"
	case model.ValidationRuleMin:
		return label + " must be at least " + formatBound(c.bound)
	case model.ValidationRuleMax:
		return label + " must be at most " + formatBound(c.bound)
	case model.ValidationRuleMinLength:
		return label + " must have at least " + formatBound(c.bound) + " characters"
	case model.ValidationRuleMaxLength:
		return label + " must have at most " + formatBound(c.bound) + " characters"
	case model.ValidationRuleEmail:
		return label + " must be a valid e-mail"
	default:
		return label + " is invalid"
	}
}
