package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Rate source settings
	RatesAPIURL       string
	RatesBaseCurrency string
	RatesHTTPTimeout  time.Duration

	// Local persistence
	KVDBPath string

	RateLimitPerMinute int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATES_API_URL", "https://api.exchangerate.host/latest")
	viper.SetDefault("RATES_BASE_CURRENCY", "USD")
	viper.SetDefault("RATES_HTTP_TIMEOUT", "10s")
	viper.SetDefault("KV_DB_PATH", "data/converter.db")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	viper.AutomaticEnv()

	timeout := viper.GetDuration("RATES_HTTP_TIMEOUT")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		RatesAPIURL:        viper.GetString("RATES_API_URL"),
		RatesBaseCurrency:  viper.GetString("RATES_BASE_CURRENCY"),
		RatesHTTPTimeout:   timeout,
		KVDBPath:           viper.GetString("KV_DB_PATH"),
		RateLimitPerMinute: viper.GetInt64("RATE_LIMIT_PER_MINUTE"),
	}

	return cfg, nil
}
