package signup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-signupform/pkg/validation"
)

// ErrPasswordMismatch is the business rule failure raised when the password
// and its confirmation differ.
var ErrPasswordMismatch = errors.New("signup: password confirmation does not match")

// FieldValidationError carries the rule violations of a rejected attempt.
type FieldValidationError struct {
	Result validation.Result
}

func (e *FieldValidationError) Error() string {
	fields := e.Result.Fields()
	if len(fields) == 0 {
		return "signup: validation failed"
	}
	return fmt.Sprintf("signup: validation failed on %s", strings.Join(fields, ", "))
}

// RemoteError wraps any failure of the create-account call. Causes are not
// told apart: network, server and decoding problems all surface the same way.
type RemoteError struct {
	Err error
}

func (e *RemoteError) Error() string {
	if e.Err == nil {
		return "signup: create account failed"
	}
	return "signup: create account failed: " + e.Err.Error()
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err came from a rejected rule table.
func IsValidationError(err error) bool {
	var target *FieldValidationError
	return errors.As(err, &target)
}
