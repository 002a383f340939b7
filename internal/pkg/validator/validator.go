// Package validator checks `validate` struct tags. Failures come back as a
// map keyed by the JSON field name, ready for goerror.NewInvalidInput.
package validator

type Validator interface {
	// Validate returns nil for valid data.
	Validate(data any) error
}
