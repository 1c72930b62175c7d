package signup

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-signupform/pkg/validation"
)

// Field names used for rules, registry lookups and error annotations.
const (
	FieldName            = "name"
	FieldTaxID           = "taxId"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "passwordConfirm"
)

// FieldOrder is the order fields are declared, prompted and reported in.
var FieldOrder = []string{FieldName, FieldTaxID, FieldEmail, FieldPassword, FieldPasswordConfirm}

// Input is one sign-up attempt. JSON names follow the account API, which
// calls the tax id "cpf".
type Input struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	TaxID           int64  `json:"cpf"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// Values renders the input as raw field values for the validation engine.
func (in Input) Values() validation.Values {
	return validation.Values{
		FieldName:            in.Name,
		FieldTaxID:           strconv.FormatInt(in.TaxID, 10),
		FieldEmail:           in.Email,
		FieldPassword:        in.Password,
		FieldPasswordConfirm: in.PasswordConfirm,
	}
}

// PasswordsMatch reports whether the password and its confirmation agree.
func (in Input) PasswordsMatch() bool {
	return in.Password == in.PasswordConfirm
}

// FieldRegistry exposes the current value of each named input. It is owned by
// the rendering layer; the submitter only reads it.
type FieldRegistry interface {
	Value(field string) string
}

// ValuesFrom snapshots the registry for every sign-up field.
func ValuesFrom(registry FieldRegistry) validation.Values {
	values := make(validation.Values, len(FieldOrder))
	if registry == nil {
		return values
	}
	for _, field := range FieldOrder {
		values[field] = registry.Value(field)
	}
	return values
}

// InputFromValues builds an Input from raw values. A tax id that is not a
// base 10 int64 is left at zero; callers validate the raw values first, and
// the integer rule rejects exactly those values.
func InputFromValues(values validation.Values) Input {
	return Input{
		Name:            values[FieldName],
		Email:           values[FieldEmail],
		TaxID:           parseTaxID(values[FieldTaxID]),
		Password:        values[FieldPassword],
		PasswordConfirm: values[FieldPasswordConfirm],
	}
}

func parseTaxID(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
