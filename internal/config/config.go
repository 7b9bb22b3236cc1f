package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken        string        `envconfig:"BOT_TOKEN" required:"true"`
	StoreBackend    string        `envconfig:"STORE_BACKEND" default:"memory"` // memory|sqlite
	DBPath          string        `envconfig:"DB_PATH" default:"./data/btcbot.db"`
	CoinGeckoURL    string        `envconfig:"COINGECKO_URL" default:"https://api.coingecko.com"`
	FetchTimeout    time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
	TickInterval    time.Duration `envconfig:"TICK_INTERVAL" default:"30s"`
	DeliveryTimeout time.Duration `envconfig:"DELIVERY_TIMEOUT" default:"15s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
