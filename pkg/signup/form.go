package signup

import (
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// OperationID names the create-account operation in the account API contract.
const OperationID = "createUser"

// Form describes the sign-up form: its fields, in prompt order, and the fixed
// rule table validated on every submission.
//
// The tax id minimum is a numeric lower bound of 11, not an 11 digit check.
// That mirrors the account API's historical behaviour and is kept on purpose.
func Form() model.FormModel {
	return model.FormModel{
		OperationID: OperationID,
		Endpoint:    "/users",
		Method:      "POST",
		Summary:     "Create account",
		UIHints: map[string]string{
			"titleKey":  "form.title",
			"submitKey": "form.submit",
			"backKey":   "form.back",
		},
		Fields: []model.Field{
			{
				Name:     FieldName,
				Type:     model.FieldTypeString,
				Required: true,
				Metadata: map[string]string{
					"messages.required": "signup.name.required",
				},
				UIHints: map[string]string{"labelKey": "field.name.label"},
			},
			{
				Name:     FieldTaxID,
				Type:     model.FieldTypeInteger,
				Label:    "CPF",
				Required: true,
				Validations: []model.ValidationRule{
					{Kind: model.ValidationRuleMin, Params: map[string]string{"value": "11"}},
				},
				Metadata: map[string]string{
					"messages.required": "signup.taxId.required",
					"messages.number":   "signup.taxId.number",
					"messages.min":      "signup.taxId.min",
				},
				UIHints: map[string]string{"labelKey": "field.taxId.label", "inputType": "numeric"},
			},
			{
				Name:     FieldEmail,
				Type:     model.FieldTypeString,
				Format:   "email",
				Label:    "E-mail",
				Required: true,
				Metadata: map[string]string{
					"messages.required": "signup.email.required",
					"messages.email":    "signup.email.email",
				},
				UIHints: map[string]string{"labelKey": "field.email.label", "inputType": "email"},
			},
			{
				Name:   FieldPassword,
				Type:   model.FieldTypeString,
				Format: "password",
				Validations: []model.ValidationRule{
					{Kind: model.ValidationRuleMinLength, Params: map[string]string{"value": "6"}},
				},
				Metadata: map[string]string{
					"messages.minLength": "signup.password.minLength",
				},
				UIHints: map[string]string{"labelKey": "field.password.label", "secret": "true"},
			},
			{
				Name:   FieldPasswordConfirm,
				Type:   model.FieldTypeString,
				Format: "password",
				Validations: []model.ValidationRule{
					{Kind: model.ValidationRuleMinLength, Params: map[string]string{"value": "6"}},
				},
				Metadata: map[string]string{
					"messages.minLength": "signup.password.minLength",
				},
				UIHints: map[string]string{"labelKey": "field.passwordConfirm.label", "secret": "true"},
			},
		},
	}
}

// Validate checks input against the sign-up rule table.
func Validate(input Input, opts ...validation.Option) validation.Result {
	return ValidateValues(input.Values(), opts...)
}

// ValidateValues checks raw field values against the sign-up rule table. Use
// it when values come straight from a registry and may not parse.
func ValidateValues(values validation.Values, opts ...validation.Option) validation.Result {
	return validation.Validate(values, Form().Fields, opts...)
}
