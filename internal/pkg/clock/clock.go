package clock

import "time"

// Clock abstracts the current time so deadline and shift-end checks are
// testable against a fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the wall clock.
func System() Clock { return systemClock{} }

// Fixed always reports the same instant.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time { return f.Time }

// FixedAt parses an RFC3339 timestamp into a Fixed clock. Panics on invalid
// input; intended for tests.
func FixedAt(value string) Fixed {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return Fixed{Time: t}
}
