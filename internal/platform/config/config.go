package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/networth_backend/internal/adapters/frankfurter"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	MigrationsPath string

	// Exchange rate provider
	RatesAPIURL     string // four {} placeholders: start, end, base, symbols
	RatesAPITimeout time.Duration
	RatesAPIRPS     float64

	// Scheduled sync
	SyncInterval  time.Duration // 0 disables the schedule
	SyncOnStartup bool

	// HTTP surface
	APIRateLimit       string // ulule limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("RATES_API_URL", frankfurter.DefaultURLTemplate)
	viper.SetDefault("RATES_API_TIMEOUT", "15s")
	viper.SetDefault("RATES_API_RPS", 2)
	viper.SetDefault("SYNC_INTERVAL", "24h")
	viper.SetDefault("SYNC_ON_STARTUP", true)
	viper.SetDefault("API_RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RatesAPIURL = viper.GetString("RATES_API_URL")
	if strings.Count(cfg.RatesAPIURL, "{}") != 4 {
		log.Printf("Warning: RATES_API_URL ('%s') must contain four {} placeholders. Defaulting to %s.\n", cfg.RatesAPIURL, frankfurter.DefaultURLTemplate)
		cfg.RatesAPIURL = frankfurter.DefaultURLTemplate
	}

	cfg.RatesAPITimeout = durationOrDefault("RATES_API_TIMEOUT", 15*time.Second)
	if cfg.RatesAPITimeout <= 0 {
		cfg.RatesAPITimeout = 15 * time.Second
	}

	cfg.RatesAPIRPS = viper.GetFloat64("RATES_API_RPS")
	if cfg.RatesAPIRPS < 0 {
		log.Printf("Warning: Negative RATES_API_RPS (%v). Disabling provider pacing.\n", cfg.RatesAPIRPS)
		cfg.RatesAPIRPS = 0
	}

	cfg.SyncInterval = durationOrDefault("SYNC_INTERVAL", 24*time.Hour)
	cfg.SyncOnStartup = viper.GetBool("SYNC_ON_STARTUP")

	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
