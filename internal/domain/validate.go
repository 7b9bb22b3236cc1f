package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidHour     = errors.New("invalid hour")
)

// Registration defaults when the optional fields are omitted.
const (
	DefaultCurrency = CurrencyUSD
	DefaultHour     = 22
)

// ParseSubscription validates free-text registration input of the form
// "interval [currency] [hour]", e.g. "7 usd 22".
//   - interval: whole number of days, > 0
//   - currency: case-insensitive czk/eur/usd, defaults to usd
//   - hour: 0..23; omitted or non-numeric falls back to 22, an explicit
//     out-of-range number is rejected
func ParseSubscription(raw string) (intervalDays int, currency string, hour int, err error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, "", 0, fmt.Errorf("%w: empty input", ErrInvalidInterval)
	}

	intervalDays, convErr := strconv.Atoi(fields[0])
	if convErr != nil || intervalDays <= 0 {
		return 0, "", 0, fmt.Errorf("%w: %q", ErrInvalidInterval, fields[0])
	}

	currency = DefaultCurrency
	if len(fields) > 1 {
		currency = strings.ToLower(fields[1])
		if !IsSupportedCurrency(currency) {
			return 0, "", 0, fmt.Errorf("%w: %q", ErrInvalidCurrency, fields[1])
		}
	}

	hour = DefaultHour
	if len(fields) > 2 {
		if h, convErr := strconv.Atoi(fields[2]); convErr == nil {
			if h < 0 || h > 23 {
				return 0, "", 0, fmt.Errorf("%w: %d", ErrInvalidHour, h)
			}
			hour = h
		}
		// A non-numeric third field keeps the default hour.
	}

	return intervalDays, currency, hour, nil
}
