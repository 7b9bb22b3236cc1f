// Package coingecko fetches BTC market data from the CoinGecko REST API.
// The bot treats it as an opaque, possibly-failing remote; there is no retry
// here, a failed scheduled delivery simply waits for the next cadence.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/domain"
)

// DefaultBaseURL is the public CoinGecko API host.
const DefaultBaseURL = "https://api.coingecko.com"

// SimplePrices holds the current BTC price in every supported currency.
type SimplePrices struct {
	CZK float64
	EUR float64
	USD float64
}

// Snapshot is the full BTC market snapshot for one currency, as shown by /info
// and by scheduled deliveries.
type Snapshot struct {
	Price        float64
	Change24h    float64
	Change7d     float64
	Change30d    float64
	Change1y     float64
	Low24h       float64
	High24h      float64
	ATHPrice     float64
	ATHDate      time.Time
	ATHChangePct float64
	LastUpdated  time.Time
}

// Client is a thin HTTP client for the two endpoints the bot uses.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a Client. An empty baseURL falls back to the public API.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Prices returns the current BTC price in czk, eur and usd.
func (c *Client) Prices(ctx context.Context) (SimplePrices, error) {
	var payload struct {
		Bitcoin map[string]float64 `json:"bitcoin"`
	}
	url := c.baseURL + "/api/v3/simple/price?ids=bitcoin&vs_currencies=czk,eur,usd"
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return SimplePrices{}, err
	}
	return SimplePrices{
		CZK: payload.Bitcoin[domain.CurrencyCZK],
		EUR: payload.Bitcoin[domain.CurrencyEUR],
		USD: payload.Bitcoin[domain.CurrencyUSD],
	}, nil
}

// FetchSnapshot returns the full market snapshot for one currency.
func (c *Client) FetchSnapshot(ctx context.Context, currency string) (Snapshot, error) {
	var payload struct {
		MarketData struct {
			CurrentPrice map[string]float64 `json:"current_price"`
			Change24h    map[string]float64 `json:"price_change_percentage_24h_in_currency"`
			Change7d     map[string]float64 `json:"price_change_percentage_7d_in_currency"`
			Change30d    map[string]float64 `json:"price_change_percentage_30d_in_currency"`
			Change1y     map[string]float64 `json:"price_change_percentage_1y_in_currency"`
			Low24h       map[string]float64 `json:"low_24h"`
			High24h      map[string]float64 `json:"high_24h"`
			ATH          map[string]float64 `json:"ath"`
			ATHDate      map[string]string  `json:"ath_date"`
			ATHChangePct map[string]float64 `json:"ath_change_percentage"`
			LastUpdated  string             `json:"last_updated"`
		} `json:"market_data"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/api/v3/coins/bitcoin", &payload); err != nil {
		return Snapshot{}, err
	}

	md := payload.MarketData
	snap := Snapshot{
		Price:        md.CurrentPrice[currency],
		Change24h:    md.Change24h[currency],
		Change7d:     md.Change7d[currency],
		Change30d:    md.Change30d[currency],
		Change1y:     md.Change1y[currency],
		Low24h:       md.Low24h[currency],
		High24h:      md.High24h[currency],
		ATHPrice:     md.ATH[currency],
		ATHChangePct: md.ATHChangePct[currency],
	}
	// Timestamps are RFC3339; tolerate absence rather than failing the whole
	// snapshot over a missing date.
	if raw, ok := md.ATHDate[currency]; ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			snap.ATHDate = t
		}
	}
	if t, err := time.Parse(time.RFC3339, md.LastUpdated); err == nil {
		snap.LastUpdated = t
	}
	return snap, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("coingecko: unexpected status %d for %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("coingecko: decode response: %w", err)
	}
	return nil
}
