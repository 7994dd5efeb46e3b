// Package config loads the service configuration.
//
// Precedence, lowest first: defaults set here, a .env file when present, then
// process environment variables.
//
//	SERVER_PORT=8080
//	ALPHAVANTAGE_API_KEY=demo
//	ALPHAVANTAGE_TIMEOUT=10s
//	REDIS_HOST=localhost
//	DB_DRIVER=sqlite
//	DB_DSN=file:symbols.db
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"market_movers/internal/platform/externalapi/alphavantage"
)

// Config holds the full application configuration.
type Config struct {
	Server       ServerConfig
	AlphaVantage alphavantage.Config
	Throttle     ThrottleConfig
	Market       MarketConfig
	Redis        RedisConfig
	Cache        CacheConfig
	DB           DBConfig
	JWT          JWTConfig
	Log          LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `validate:"required,numeric"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// ThrottleConfig limits outbound provider calls. Zero values disable it.
type ThrottleConfig struct {
	MaxRequests int           `validate:"gte=0"`
	Window      time.Duration `validate:"gte=0"`
}

// MarketConfig tunes the market data service.
type MarketConfig struct {
	CurrencySymbol   string        `validate:"required"`
	RateLimitRetries int           `validate:"gte=0,lte=5"`
	RateLimitBackoff time.Duration `validate:"gt=0"`
}

// RedisConfig holds the cache connection. An empty Host disables caching.
type RedisConfig struct {
	Host     string
	Port     string `validate:"omitempty,numeric"`
	Password string
}

// CacheConfig holds read-through cache TTLs.
type CacheConfig struct {
	MoversTTL   time.Duration `validate:"gt=0"`
	OverviewTTL time.Duration `validate:"gt=0"`
}

// DBConfig selects the symbol directory backend. Driver "none" uses the built-in table.
type DBConfig struct {
	Driver        string `validate:"oneof=none sqlite postgres"`
	DSN           string `validate:"required_unless=Driver none"`
	RunMigrations bool
}

// JWTConfig protects the market routes when Secret is set.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration `validate:"gt=0"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Pretty bool
}

// envKeys maps validated struct fields back to the variable that sets them.
var envKeys = map[string]string{
	"Config.Server.Port":             "SERVER_PORT",
	"Config.Server.ShutdownTimeout":  "SERVER_SHUTDOWN_TIMEOUT",
	"Config.AlphaVantage.APIKey":     "ALPHAVANTAGE_API_KEY",
	"Config.AlphaVantage.BaseURL":    "ALPHAVANTAGE_BASE_URL",
	"Config.AlphaVantage.Timeout":    "ALPHAVANTAGE_TIMEOUT",
	"Config.Throttle.MaxRequests":    "ALPHAVANTAGE_MAX_REQUESTS",
	"Config.Throttle.Window":         "ALPHAVANTAGE_WINDOW",
	"Config.Market.CurrencySymbol":   "MARKET_CURRENCY_SYMBOL",
	"Config.Market.RateLimitRetries": "MARKET_RATE_LIMIT_RETRIES",
	"Config.Market.RateLimitBackoff": "MARKET_RATE_LIMIT_BACKOFF",
	"Config.Redis.Port":              "REDIS_PORT",
	"Config.Cache.MoversTTL":         "CACHE_MOVERS_TTL",
	"Config.Cache.OverviewTTL":       "CACHE_OVERVIEW_TTL",
	"Config.DB.Driver":               "DB_DRIVER",
	"Config.DB.DSN":                  "DB_DSN",
	"Config.JWT.Expiration":          "JWT_EXPIRATION",
	"Config.Log.Level":               "LOG_LEVEL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second)

	v.SetDefault("ALPHAVANTAGE_BASE_URL", alphavantage.DefaultBaseURL)
	v.SetDefault("ALPHAVANTAGE_TIMEOUT", alphavantage.DefaultTimeout)
	v.SetDefault("ALPHAVANTAGE_MAX_REQUESTS", 0)
	v.SetDefault("ALPHAVANTAGE_WINDOW", time.Minute)

	v.SetDefault("MARKET_CURRENCY_SYMBOL", "$")
	v.SetDefault("MARKET_RATE_LIMIT_RETRIES", 0)
	v.SetDefault("MARKET_RATE_LIMIT_BACKOFF", 15*time.Second)

	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("CACHE_MOVERS_TTL", 5*time.Minute)
	v.SetDefault("CACHE_OVERVIEW_TTL", time.Hour)

	v.SetDefault("DB_DRIVER", "none")
	v.SetDefault("RUN_MIGRATIONS", false)

	v.SetDefault("JWT_EXPIRATION", 24*time.Hour)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
}

// newViper layers defaults, the optional env file and the environment.
func newViper(envFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read %s: %w", envFile, err)
			}
		}
	}

	v.AutomaticEnv()
	return v, nil
}

// Load reads the configuration. envFile is optional; a missing file is not an error.
func Load(envFile string) (*Config, error) {
	v, err := newViper(envFile)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("SERVER_PORT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		AlphaVantage: alphavantage.Config{
			APIKey:  v.GetString("ALPHAVANTAGE_API_KEY"),
			BaseURL: v.GetString("ALPHAVANTAGE_BASE_URL"),
			Timeout: v.GetDuration("ALPHAVANTAGE_TIMEOUT"),
		},
		Throttle: ThrottleConfig{
			MaxRequests: v.GetInt("ALPHAVANTAGE_MAX_REQUESTS"),
			Window:      v.GetDuration("ALPHAVANTAGE_WINDOW"),
		},
		Market: MarketConfig{
			CurrencySymbol:   v.GetString("MARKET_CURRENCY_SYMBOL"),
			RateLimitRetries: v.GetInt("MARKET_RATE_LIMIT_RETRIES"),
			RateLimitBackoff: v.GetDuration("MARKET_RATE_LIMIT_BACKOFF"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
		Cache: CacheConfig{
			MoversTTL:   v.GetDuration("CACHE_MOVERS_TTL"),
			OverviewTTL: v.GetDuration("CACHE_OVERVIEW_TTL"),
		},
		DB: DBConfig{
			Driver:        strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:           v.GetString("DB_DSN"),
			RunMigrations: v.GetBool("RUN_MIGRATIONS"),
		},
		JWT: jwtConfig(v),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// writeMargin is the time left after RequestBudget to encode and send the response.
const writeMargin = 5 * time.Second

// RequestBudget is the longest one market call may take: every provider
// attempt up to its timeout plus the backoff between rate-limited attempts.
func (c *Config) RequestBudget() time.Duration {
	retries := time.Duration(c.Market.RateLimitRetries)
	return c.AlphaVantage.Timeout*(retries+1) + c.Market.RateLimitBackoff*retries
}

// WriteTimeout is the HTTP server write timeout. It always exceeds RequestBudget
// so a response produced within the budget is never dropped.
func (c *Config) WriteTimeout() time.Duration {
	return c.RequestBudget() + writeMargin
}

// LoadJWT reads only the token settings, for tools that never call the provider.
func LoadJWT(envFile string) (JWTConfig, error) {
	v, err := newViper(envFile)
	if err != nil {
		return JWTConfig{}, err
	}
	cfg := jwtConfig(v)
	if cfg.Secret == "" {
		return JWTConfig{}, errors.New("invalid configuration: JWT_SECRET is required")
	}
	if cfg.Expiration <= 0 {
		return JWTConfig{}, errors.New("invalid configuration: JWT_EXPIRATION is out of range (gt 0)")
	}
	return cfg, nil
}

func jwtConfig(v *viper.Viper) JWTConfig {
	return JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: v.GetDuration("JWT_EXPIRATION"),
	}
}

// Validate reports every invalid or missing setting at once.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key, ok := envKeys[fe.Namespace()]
		if !ok {
			key = fe.Namespace()
		}
		problems = append(problems, describe(key, fe))
	}
	sort.Strings(problems)
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func describe(key string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_unless":
		return key + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt", "gte", "lte":
		return fmt.Sprintf("%s is out of range (%s %s)", key, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", key, fe.Tag())
	}
}
