package domain

import (
	"errors"
	"testing"
)

func TestParseSubscription_Valid(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantInterval int
		wantCurrency string
		wantHour     int
	}{
		{"full input", "7 usd 22", 7, "usd", 22},
		{"uppercase currency", "3 EUR 9", 3, "eur", 9},
		{"currency only", "14 czk", 14, "czk", 22},
		{"interval only", "1", 1, "usd", 22},
		{"hour zero", "7 usd 0", 7, "usd", 0},
		{"hour 23", "7 usd 23", 7, "usd", 23},
		{"non-numeric hour falls back", "7 usd tonight", 7, "usd", 22},
		{"extra whitespace", "  5   eur   8  ", 5, "eur", 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, cur, hour, err := ParseSubscription(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if days != tt.wantInterval || cur != tt.wantCurrency || hour != tt.wantHour {
				t.Fatalf("got (%d, %s, %d), want (%d, %s, %d)",
					days, cur, hour, tt.wantInterval, tt.wantCurrency, tt.wantHour)
			}
		})
	}
}

func TestParseSubscription_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty", "", ErrInvalidInterval},
		{"zero interval", "0 usd", ErrInvalidInterval},
		{"negative interval", "-3", ErrInvalidInterval},
		{"fractional interval", "1.5 usd", ErrInvalidInterval},
		{"non-numeric interval", "weekly usd", ErrInvalidInterval},
		{"unknown currency", "7 gbp", ErrInvalidCurrency},
		{"hour too large", "7 usd 24", ErrInvalidHour},
		{"hour negative", "7 usd -1", ErrInvalidHour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := ParseSubscription(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}
