package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	ordersdomain "github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
)

// DefaultJWTSecret is the development fallback signing key. Override JWT_SECRET
// in any real deployment.
const DefaultJWTSecret = "nursery_haven_secret_key"

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                       string
	PostgresDSN                string
	RedisAddr                  string
	JWTSecret                  string
	SessionTTL                 time.Duration
	SessionPurgeIntervalMinute int
	AdminEmail                 string
	AdminPassword              string
	Pricing                    ordersdomain.PricingConfig
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:          envDefault("PORT", "8080"),
		PostgresDSN:   strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		JWTSecret:     envDefault("JWT_SECRET", DefaultJWTSecret),
		SessionTTL:    24 * time.Hour,
		AdminEmail:    envDefault("ADMIN_EMAIL", "admin"),
		AdminPassword: envDefault("ADMIN_PASSWORD", "admin"),
		Pricing:       ordersdomain.DefaultPricingConfig(),
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL_HOURS")); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be a positive integer")
		}
		cfg.SessionTTL = time.Duration(hours) * time.Hour
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_PURGE_INTERVAL_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("SESSION_PURGE_INTERVAL_MINUTES must be a positive integer")
		}
		cfg.SessionPurgeIntervalMinute = minutes
	}
	if err := loadPricing(&cfg.Pricing); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadPricing(pricing *ordersdomain.PricingConfig) error {
	entries := []struct {
		key    string
		target *float64
	}{
		{"TAX_RATE", &pricing.TaxRate},
		{"SHIPPING_FEE", &pricing.ShippingFee},
		{"FREE_SHIPPING_THRESHOLD", &pricing.FreeShippingThreshold},
		{"BULK_DISCOUNT_RATE", &pricing.BulkDiscountRate},
		{"COD_CHARGE", &pricing.CODCharge},
	}
	for _, entry := range entries {
		raw := strings.TrimSpace(os.Getenv(entry.key))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			return fmt.Errorf("%s must be a non-negative number", entry.key)
		}
		*entry.target = value
	}
	if raw := strings.TrimSpace(os.Getenv("BULK_DISCOUNT_MIN_QTY")); raw != "" {
		qty, err := strconv.Atoi(raw)
		if err != nil || qty < 1 {
			return fmt.Errorf("BULK_DISCOUNT_MIN_QTY must be a positive integer")
		}
		pricing.BulkDiscountMinQty = qty
	}
	return nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
