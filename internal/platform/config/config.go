package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Exchange input modes recognised by EXCHANGE_INPUT_MODE.
const (
	ExchangeInputDirect  = "direct"
	ExchangeInputAmounts = "amounts"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Single-user credentials; the password is stored as a bcrypt hash.
	AppUsername     string
	AppPasswordHash string

	CORSAllowedOrigins []string
	RateLimit          string

	// Bankroll settings, read-only at runtime.
	BaseCurrency       string
	HandsPerHourLive   int
	HandsPerHourOnline int
	DefaultFXRates     map[string]decimal.Decimal
	ExchangeInputMode  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", "bankroll-app")
	v.SetDefault("APP_USERNAME", "player")
	v.SetDefault("APP_PASSWORD_HASH", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("BASE_CURRENCY", "USD")
	v.SetDefault("HANDS_PER_HOUR_LIVE", 30)
	v.SetDefault("HANDS_PER_HOUR_ONLINE", 75)
	v.SetDefault("DEFAULT_FX_RATES", "")
	v.SetDefault("EXCHANGE_INPUT_MODE", ExchangeInputAmounts)

	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	cfg.AppUsername = v.GetString("APP_USERNAME")
	cfg.AppPasswordHash = v.GetString("APP_PASSWORD_HASH")
	if cfg.AppPasswordHash == "" {
		log.Println("Warning: APP_PASSWORD_HASH not set. Login will be rejected.")
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = v.GetString("RATE_LIMIT")

	cfg.BaseCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("BASE_CURRENCY")))
	if len(cfg.BaseCurrency) != 3 {
		log.Printf("Warning: Invalid value for BASE_CURRENCY ('%s'). Defaulting to USD.\n", cfg.BaseCurrency)
		cfg.BaseCurrency = "USD"
	}

	cfg.HandsPerHourLive = v.GetInt("HANDS_PER_HOUR_LIVE")
	if cfg.HandsPerHourLive <= 0 {
		log.Printf("Warning: Invalid value for HANDS_PER_HOUR_LIVE (%d). Defaulting to 30.\n", cfg.HandsPerHourLive)
		cfg.HandsPerHourLive = 30
	}
	cfg.HandsPerHourOnline = v.GetInt("HANDS_PER_HOUR_ONLINE")
	if cfg.HandsPerHourOnline <= 0 {
		log.Printf("Warning: Invalid value for HANDS_PER_HOUR_ONLINE (%d). Defaulting to 75.\n", cfg.HandsPerHourOnline)
		cfg.HandsPerHourOnline = 75
	}

	rates, err := ParseFXRates(v.GetString("DEFAULT_FX_RATES"))
	if err != nil {
		return nil, err
	}
	cfg.DefaultFXRates = rates

	mode := strings.ToLower(v.GetString("EXCHANGE_INPUT_MODE"))
	switch mode {
	case ExchangeInputDirect, ExchangeInputAmounts:
		cfg.ExchangeInputMode = mode
	default:
		log.Printf("Warning: Invalid value for EXCHANGE_INPUT_MODE ('%s'). Defaulting to %s.\n", mode, ExchangeInputAmounts)
		cfg.ExchangeInputMode = ExchangeInputAmounts
	}

	return cfg, nil
}

// ParseFXRates parses "EUR:1.08,GBP:1.27" into a currency -> rate map.
// Rates are expressed in base currency units per one foreign unit.
func ParseFXRates(raw string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)
	for _, pair := range splitList(raw) {
		code, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid DEFAULT_FX_RATES entry %q: expected CODE:RATE", pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("invalid DEFAULT_FX_RATES rate for %q: %q", code, value)
		}
		rates[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return rates, nil
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
