// Package db opens the gorm connection backing the symbol directory.
package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"market_movers/internal/platform/logger"
)

// Supported values for Config.Driver.
const (
	DriverNone     = "none"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	defaultConnectTimeout = 60 * time.Second
	defaultRetryInterval  = 3 * time.Second
)

// Config selects the database backend.
type Config struct {
	Driver         string
	DSN            string
	RunMigrations  bool
	ConnectTimeout time.Duration
	RetryInterval  time.Duration
}

// Enabled reports whether a database backend is configured.
func (c Config) Enabled() bool {
	return c.Driver != "" && c.Driver != DriverNone
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// OpenerFor returns the Opener for the given driver name.
func OpenerFor(driver string) (Opener, error) {
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}
	switch driver {
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gcfg)
		}, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gcfg)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout, interval time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		logger.L().Warn().Err(err).Dur("retry_in", interval).Msg("db connect failed, retrying")
		time.Sleep(interval)
	}
}

// OpenDB connects using cfg and, when RunMigrations is set, migrates models.
func OpenDB(cfg Config, models ...any) (*gorm.DB, error) {
	if !cfg.Enabled() {
		return nil, errors.New("db driver is not configured")
	}
	if cfg.DSN == "" {
		return nil, errors.New("db dsn is empty")
	}
	opener, err := OpenerFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultRetryInterval
	}

	db, err := ConnectWithRetry(cfg.DSN, cfg.ConnectTimeout, cfg.RetryInterval, opener)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations && len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	logger.L().Info().Str("driver", cfg.Driver).Bool("migrated", cfg.RunMigrations).Msg("database connected")
	return db, nil
}
