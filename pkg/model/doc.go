// Package model defines the typed form model shared by the validation engine
// and the front ends. Definitions live in internal/model and are re-exported
// here. Validation rules use canonical identifiers (required, number, min/max,
// minLength/maxLength, email) with string parameters so rule tables stay
// declarative data and snapshot cleanly as JSON. Front ends read the `UIHints`
// map for presentation directives such as `labelKey`, `placeholderKey` and
// `secret`.
package model
