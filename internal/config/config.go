// README: Config loader with env defaults for HTTP, DB, Redis, and pricing tunables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// PricingConfig carries every tunable the price pipeline reads. Operators can
// retune any of these through the environment without a code change.
type PricingConfig struct {
	WeightDayType  float64
	WeightSeason   float64
	WeightTimeSlot float64

	MinMultiplier     float64
	MaxMultiplier     float64
	MaxOverrideFactor float64

	LowConfidenceDays int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr     string
		QuoteTTL time.Duration
	}
	Profiles struct {
		// Path to the demand_profiles.json produced by the offline
		// aggregation job. Empty or missing file means built-in fallback.
		Path string
	}
	Pricing PricingConfig
}

func Load() (Config, error) {
	// Optional .env for local development; system env wins on conflict.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TORQ_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("TORQ_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("TORQ_REDIS_ADDR", "")
	cfg.Redis.QuoteTTL = time.Duration(envOrDefaultInt("TORQ_QUOTE_TTL_SECONDS", 60)) * time.Second
	cfg.Profiles.Path = envOrDefault("TORQ_PROFILES_PATH", "data/demand_profiles.json")

	cfg.Pricing.WeightDayType = envOrDefaultFloat("TORQ_WEIGHT_DAY_TYPE", 0.45)
	cfg.Pricing.WeightSeason = envOrDefaultFloat("TORQ_WEIGHT_SEASON", 0.30)
	cfg.Pricing.WeightTimeSlot = envOrDefaultFloat("TORQ_WEIGHT_TIME_SLOT", 0.25)
	cfg.Pricing.MinMultiplier = envOrDefaultFloat("TORQ_MIN_MULTIPLIER", 0.70)
	cfg.Pricing.MaxMultiplier = envOrDefaultFloat("TORQ_MAX_MULTIPLIER", 2.00)
	cfg.Pricing.MaxOverrideFactor = envOrDefaultFloat("TORQ_MAX_OVERRIDE_FACTOR", 2.00)
	cfg.Pricing.LowConfidenceDays = envOrDefaultInt("TORQ_LOW_CONFIDENCE_DAYS", 90)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
