package ports

import "time"

// Clock supplies the current time to operations. The host clock is
// coarse-grained and not guaranteed strictly increasing between
// closely-spaced operations; handlers must not assume otherwise.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the OS clock.
type SystemClock struct{}

// Now returns the current OS time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
