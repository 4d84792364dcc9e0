package util

import "time"

// Clock returns the current time. Stores accept one so tests can pin timestamps.
type Clock func() time.Time

// NowUTC is the default Clock.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// OrNow returns c, or NowUTC when c is nil.
func (c Clock) OrNow() Clock {
	if c == nil {
		return NowUTC
	}
	return c
}
