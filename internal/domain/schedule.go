package domain

import "time"

// ReferenceHour is the daily "market close" anchor. The very first delivery
// of a fresh subscription lands on today's close, not on the user's chosen
// hour; only the second occurrence onward honors HourOfDay.
const ReferenceHour = 22

// Clock provides time to the application.
// Using an interface enables deterministic tests via a controllable implementation.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by wall-clock time.
func SystemClock() Clock { return systemClock{} }

// FirstFire computes the first delivery time after registration.
// The candidate is today at ReferenceHour local time. If now has already
// reached it, the first delivery shifts to intervalDays from now at the
// user's hourOfDay instead.
func FirstFire(now time.Time, intervalDays, hourOfDay int) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), ReferenceHour, 0, 0, 0, now.Location())
	if now.Before(candidate) {
		return candidate
	}
	shifted := now.AddDate(0, 0, intervalDays)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), hourOfDay, 0, 0, 0, now.Location())
}

// NextFire advances a fire time by intervalDays at hourOfDay, minute and
// second zeroed. It anchors off the previous fire time, never off "now",
// so missed ticks keep the original calendar cadence.
func NextFire(prev time.Time, intervalDays, hourOfDay int) time.Time {
	n := prev.AddDate(0, 0, intervalDays)
	return time.Date(n.Year(), n.Month(), n.Day(), hourOfDay, 0, 0, 0, prev.Location())
}
