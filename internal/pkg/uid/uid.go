// Package uid provides identifier generators used across modules.
//
// Numeric ids (snowflake) are time ordered, so sorting by id follows creation order.
package uid

// NumberID generates numeric identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}
