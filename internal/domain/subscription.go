package domain

import "time"

// Supported fiat currencies for BTC quotes.
const (
	CurrencyCZK = "czk"
	CurrencyEUR = "eur"
	CurrencyUSD = "usd"
)

// SupportedCurrencies lists the accepted fiat codes in display order.
func SupportedCurrencies() []string {
	return []string{CurrencyCZK, CurrencyEUR, CurrencyUSD}
}

// IsSupportedCurrency reports whether code (already lowercased) is accepted.
func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies() {
		if c == code {
			return true
		}
	}
	return false
}

// Subscription represents a chat's recurring BTC update settings and schedule.
type Subscription struct {
	ChatID       int64
	IntervalDays int       // days between deliveries, > 0
	Currency     string    // czk|eur|usd
	HourOfDay    int       // 0..23, delivery hour from the second occurrence on
	NextFireAt   time.Time // next scheduled delivery
	CreatedAt    time.Time
}
