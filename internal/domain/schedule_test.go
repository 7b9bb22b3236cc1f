package domain

import (
	"testing"
	"time"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestFirstFire_BeforeReferenceHour(t *testing.T) {
	// Registering before today's 22:00 anchors the first delivery to 22:00,
	// not to the user's chosen hour. This asymmetry is intentional: the first
	// update waits for today's market close.
	now := at(2025, time.March, 10, 15, 30)
	got := FirstFire(now, 7, 9)
	want := at(2025, time.March, 10, 22, 0)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestFirstFire_AfterReferenceHour(t *testing.T) {
	now := at(2025, time.March, 10, 22, 45)
	got := FirstFire(now, 7, 9)
	want := at(2025, time.March, 17, 9, 0)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestFirstFire_ExactlyAtReferenceHour(t *testing.T) {
	// now == candidate counts as "already passed".
	now := at(2025, time.March, 10, 22, 0)
	got := FirstFire(now, 3, 18)
	want := at(2025, time.March, 13, 18, 0)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestFirstFire_ZeroesMinutesAndSeconds(t *testing.T) {
	now := time.Date(2025, time.March, 10, 23, 17, 42, 999, time.UTC)
	got := FirstFire(now, 1, 8)
	want := at(2025, time.March, 11, 8, 0)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestNextFire_Cadence(t *testing.T) {
	tests := []struct {
		name string
		prev time.Time
		days int
		hour int
		want time.Time
	}{
		{"weekly", at(2025, time.March, 10, 22, 0), 7, 9, at(2025, time.March, 17, 9, 0)},
		{"daily", at(2025, time.March, 10, 9, 0), 1, 9, at(2025, time.March, 11, 9, 0)},
		{"month rollover", at(2025, time.March, 30, 12, 0), 3, 12, at(2025, time.April, 2, 12, 0)},
		{"year rollover", at(2025, time.December, 30, 22, 0), 5, 0, at(2026, time.January, 4, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextFire(tt.prev, tt.days, tt.hour)
			if !got.Equal(tt.want) {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNextFire_NoDrift(t *testing.T) {
	// Chaining NextFire must advance by exactly d days at hour h every step,
	// regardless of the start offset.
	cur := time.Date(2025, time.May, 1, 13, 37, 21, 0, time.UTC)
	for i := 0; i < 50; i++ {
		next := NextFire(cur, 7, 9)
		if next.Hour() != 9 || next.Minute() != 0 || next.Second() != 0 {
			t.Fatalf("step %d: fire time not aligned: %v", i, next)
		}
		if i > 0 {
			if d := next.Sub(cur); d != 7*24*time.Hour {
				t.Fatalf("step %d: advanced by %v, want 168h", i, d)
			}
		}
		cur = next
	}
}
