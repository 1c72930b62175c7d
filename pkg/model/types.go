package model

import internalmodel "github.com/goliatone/go-signupform/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString  = internalmodel.FieldTypeString
	FieldTypeInteger = internalmodel.FieldTypeInteger
	FieldTypeNumber  = internalmodel.FieldTypeNumber
	FieldTypeBoolean = internalmodel.FieldTypeBoolean
)

const (
	ValidationRuleRequired  = internalmodel.ValidationRuleRequired
	ValidationRuleNumber    = internalmodel.ValidationRuleNumber
	ValidationRuleMin       = internalmodel.ValidationRuleMin
	ValidationRuleMax       = internalmodel.ValidationRuleMax
	ValidationRuleMinLength = internalmodel.ValidationRuleMinLength
	ValidationRuleMaxLength = internalmodel.ValidationRuleMaxLength
	ValidationRuleEmail     = internalmodel.ValidationRuleEmail
)

type ValidationRule = internalmodel.ValidationRule
type Field = internalmodel.Field
type FormModel = internalmodel.FormModel

// Check reports structural problems in a form model.
func Check(form FormModel) error {
	return internalmodel.Check(form)
}

// DisplayLabel returns the explicit label of a field or one derived from its
// name.
func DisplayLabel(field Field) string {
	return internalmodel.DisplayLabel(field)
}
