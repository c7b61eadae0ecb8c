package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Accounting-data service connection
	LedgerAPIURL     string
	LedgerAPIToken   string
	LedgerAPITimeout time.Duration

	// Posting behavior
	DefaultsCacheTTL         time.Duration
	RevenueFallbackToDefault bool

	JWTSecret string
	JWTIssuer string

	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LEDGER_API_URL", "")
	viper.SetDefault("LEDGER_API_TOKEN", "")
	viper.SetDefault("LEDGER_API_TIMEOUT", "30s")
	viper.SetDefault("DEFAULTS_CACHE_TTL", "5m")
	viper.SetDefault("REVENUE_FALLBACK_TO_DEFAULT", true)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "openbooks-app")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.LedgerAPIURL = viper.GetString("LEDGER_API_URL")
	if cfg.LedgerAPIURL == "" {
		log.Println("Warning: LEDGER_API_URL environment variable not set.")
	}
	cfg.LedgerAPIToken = viper.GetString("LEDGER_API_TOKEN")
	if cfg.LedgerAPIToken == "" {
		log.Println("Warning: LEDGER_API_TOKEN not set. Requests to the data service will be unauthenticated.")
	}

	ledgerTimeoutStr := viper.GetString("LEDGER_API_TIMEOUT")
	ledgerTimeout, err := time.ParseDuration(ledgerTimeoutStr)
	if err != nil {
		ledgerTimeout = 30 * time.Second
		log.Printf("Warning: Invalid value for LEDGER_API_TIMEOUT ('%s'). Defaulting to %s.\n", ledgerTimeoutStr, ledgerTimeout.String())
	}
	cfg.LedgerAPITimeout = ledgerTimeout

	cacheTTLStr := viper.GetString("DEFAULTS_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = 5 * time.Minute
		log.Printf("Warning: Invalid value for DEFAULTS_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
	}
	cfg.DefaultsCacheTTL = cacheTTL

	cfg.RevenueFallbackToDefault = viper.GetBool("REVENUE_FALLBACK_TO_DEFAULT")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "openbooks-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
