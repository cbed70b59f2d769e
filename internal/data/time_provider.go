package data

import "time"

// TimeProvider abstracts time for repositories so tests can pin it.
type TimeProvider interface {
	// Now returns the current time
	Now() time.Time
}

// RealTimeProvider returns the system clock.
type RealTimeProvider struct{}

// Now returns the current system time.
func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// FixedTimeProvider always returns the same time (useful for tests).
type FixedTimeProvider struct {
	Fixed time.Time
}

// Now returns the fixed time.
func (f *FixedTimeProvider) Now() time.Time {
	return f.Fixed
}
