package model

import "time"

// Clock abstracts the current time so that date normalization against
// "today" stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	FixedNow time.Time
}

func (f FixedClock) Now() time.Time {
	return f.FixedNow
}
