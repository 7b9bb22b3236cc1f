package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/coingecko"
)

func TestPricesText(t *testing.T) {
	got := pricesText(coingecko.SimplePrices{CZK: 2280000, EUR: 91000, USD: 97000})
	assert.Contains(t, got, "💰 *BTC Prices:*")
	assert.Contains(t, got, "🇨🇿 2 280 000 CZK")
	assert.Contains(t, got, "🇪🇺 91 000 EUR")
	assert.Contains(t, got, "🇺🇸 97 000 USD")
}

func TestInfoText(t *testing.T) {
	snap := coingecko.Snapshot{
		Price:        97000,
		Change24h:    -1.234,
		Change7d:     4.5,
		Change30d:    10.1,
		Change1y:     120.55,
		Low24h:       95000,
		High24h:      98500,
		ATHPrice:     108000,
		ATHDate:      time.Date(2025, time.January, 20, 7, 14, 0, 0, time.UTC),
		ATHChangePct: -10.2,
		LastUpdated:  time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
	got := infoText("usd", snap)
	assert.Contains(t, got, "*Current Price:* 97 000 USD")
	assert.Contains(t, got, "-1.23% (24h), 4.50% (7d), 10.10% (30d), 120.55% (1y)")
	assert.Contains(t, got, "*24h Low:* 95 000 USD")
	assert.Contains(t, got, "*ATH was on:* 20 Jan 2025 at 108 000 USD")
	assert.Contains(t, got, "*Change since ATH:* -10.20%")
	assert.Contains(t, got, "*Data Last Updated:* 10 Mar 2025 12:00")
}

func TestConfirmationText(t *testing.T) {
	first := time.Date(2025, time.March, 10, 22, 0, 0, 0, time.UTC)
	got := confirmationText(7, "usd", first)
	assert.Contains(t, got, "every *7* day(s) in *usd*")
	assert.Contains(t, got, "/stop")
	assert.Contains(t, got, "First update will be sent on *10 Mar 2025 22:00*")
}
