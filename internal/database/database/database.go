// Package database opens and inspects PostgreSQL and SQLite connections.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Tolex081/provernaire-backend/internal/database/config"
	"github.com/Tolex081/provernaire-backend/internal/database/pool"
	"github.com/Tolex081/provernaire-backend/pkg/retry"
)

// Open connects to the configured database, retrying transient
// connection failures until ctx is done, and sizes the pool. SQLite gets a
// single connection.
func Open(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	retryCfg := config.LoadRetryConfigFromEnv()
	retryCfg.OnRetry = func(attempt int, err error) {
		logger.Warnw("database not reachable yet",
			"driver", cfg.Driver, "attempt", attempt, "error", config.SanitizeError(err, cfg))
	}

	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		return gorm.Open(dialector, GormConfig(logger))
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	poolCfg := config.LoadPoolConfigFromEnv()
	if cfg.Driver == config.DriverSQLite {
		poolCfg = pool.SingleConnPoolConfig()
	}
	if err := pool.SetupConnectionPool(db, poolCfg); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	return db, nil
}

// Dialector returns the GORM dialector for the configured driver.
func Dialector(cfg config.Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(config.BuildDSN(cfg)), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// slowQueryThreshold is the duration above which GORM reports a query.
const slowQueryThreshold = 200 * time.Millisecond

// GormConfig returns the GORM settings shared by every connection.
// Driver errors are translated so that unique violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func GormConfig(logger *zap.SugaredLogger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         NewGormLogger(logger),
	}
}

// NewGormLogger sends GORM's slow-query and error traces to logger at warn
// level. A missing record is an ordinary lookup outcome and is not logged.
func NewGormLogger(logger *zap.SugaredLogger) gormlogger.Interface {
	return gormlogger.New(gormWriter{logger: logger}, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
	})
}

type gormWriter struct {
	logger *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.logger.Warnf(format, args...)
}

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint failed")
}

// HealthCheck pings the database.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := underlying(db)
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the connection pool. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := underlying(db)
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// GetStats returns connection pool statistics.
func GetStats(db *gorm.DB) (*sql.DBStats, error) {
	sqlDB, err := underlying(db)
	if err != nil {
		return nil, err
	}
	stats := sqlDB.Stats()
	return &stats, nil
}

func underlying(db *gorm.DB) (*sql.DB, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB, nil
}
