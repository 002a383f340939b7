// Package clock hides time.Now behind an interface so time dependent rules
// can be tested with a fixed instant.
package clock

import "time"

type Clocker interface {
	Now() time.Time
}

// System reads the wall clock, truncated to microseconds to match what
// Postgres stores.
type System struct{}

func New() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().Truncate(time.Microsecond)
}
