package utils

import "time"

// SystemClock reports wall-clock time in UTC.
type SystemClock struct {
}

func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time in UTC with the monotonic reading stripped,
// so values compare equal after a JSON round trip.
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}
