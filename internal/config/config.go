// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, logging level, and metrics.
type App struct {
	Name        string `yaml:"name"`
	LogLevel    string `yaml:"log_level"`
	MetricsAddr string `yaml:"metrics_addr"` // empty disables the listener
}

// Advisor configures the chat-completion service that picks the stock.
type Advisor struct {
	BaseURL       string  `yaml:"base_url"`
	Model         string  `yaml:"model"`
	Temperature   float64 `yaml:"temperature"`
	TimeoutSecs   int     `yaml:"timeout_secs"`
	DefaultTicker string  `yaml:"default_ticker"` // used when the reply matches nothing
}

// Jupiter configures aggregator endpoints and per-call timeouts.
type Jupiter struct {
	BaseURL            string `yaml:"base_url"`
	PriceTimeoutSecs   int    `yaml:"price_timeout_secs"`
	OrderTimeoutSecs   int    `yaml:"order_timeout_secs"`
	ExecuteTimeoutSecs int    `yaml:"execute_timeout_secs"`
}

// Trade sets how much the smoke trade spends and where the report links to.
type Trade struct {
	// BuyAmountUSDC is in smallest on-chain units (USDC has 6 decimals).
	BuyAmountUSDC uint64 `yaml:"buy_amount_usdc"`
	ExplorerBase  string `yaml:"explorer_base"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App     App     `yaml:"app"`
	Advisor Advisor `yaml:"advisor"`
	Jupiter Jupiter `yaml:"jupiter"`
	Trade   Trade   `yaml:"trade"`
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		App: App{
			Name:     "moltapp-trade",
			LogLevel: "info",
		},
		Advisor: Advisor{
			BaseURL:       "https://api.x.ai",
			Model:         "grok-3-mini-fast",
			Temperature:   0.7,
			TimeoutSecs:   30,
			DefaultTicker: "TSLAx",
		},
		Jupiter: Jupiter{
			BaseURL:            "https://api.jup.ag",
			PriceTimeoutSecs:   15,
			OrderTimeoutSecs:   30,
			ExecuteTimeoutSecs: 60,
		},
		Trade: Trade{
			BuyAmountUSDC: 100_000, // 0.1 USDC
			ExplorerBase:  "https://solscan.io/tx/",
		},
	}
}

// Load reads a YAML file from disk and hydrates a Config struct over the
// defaults. A missing file is not an error; the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}
