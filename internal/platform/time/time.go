// Package time contains time related helpers
package time

import "time"

// Clock returns the current instant. Components take one so tests can pin "now"
type Clock func() time.Time

// Now is the process clock
var Now Clock = time.Now

// UTC returns the current instant of c in UTC, falling back to Now for a nil clock
func (c Clock) UTC() time.Time {
	if c == nil {
		return Now().UTC()
	}
	return c().UTC()
}

// Fixed returns a Clock pinned to t
func Fixed(t time.Time) Clock { return func() time.Time { return t } }

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// HourOffset returns the whole-hour UTC offset of t in its location, truncated toward zero
func HourOffset(t time.Time) int {
	_, off := t.Zone()
	return off / 3600
}
