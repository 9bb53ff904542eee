// Package migrate provides database migration management.
//
// PostgreSQL schemas are versioned SQL files applied with golang-migrate.
// SQLite (local runs and tests) is migrated from the GORM models instead.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"github.com/Tolex081/provernaire-backend/internal/database/config"
	gamesessionmodel "github.com/Tolex081/provernaire-backend/internal/gamesession/model"
	questionmodel "github.com/Tolex081/provernaire-backend/internal/question/model"
	usermodel "github.com/Tolex081/provernaire-backend/internal/user/model"
)

// OneInProgressIndex is the partial unique index that allows a single
// in-progress session per user.
const OneInProgressIndex = "idx_game_sessions_one_in_progress"

const createOneInProgressIndex = `CREATE UNIQUE INDEX IF NOT EXISTS ` + OneInProgressIndex +
	` ON game_sessions (user_id) WHERE game_status = 'in_progress'`

// GetMigrationsPath returns the default path to migrations directory.
func GetMigrationsPath() string {
	return config.GetEnv("MIGRATIONS_PATH", "migrations")
}

// Run migrates the schema with the strategy that fits the driver.
func Run(db *gorm.DB, driver config.Driver) error {
	if driver == config.DriverSQLite {
		return AutoMigrate(db)
	}
	return Migrate(db)
}

// Migrate applies database migrations from the migrations directory using golang-migrate.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	migrationsPath, err := filepath.Abs(GetMigrationsPath())
	if err != nil {
		return fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	if _, statErr := os.Stat(migrationsPath); os.IsNotExist(statErr) {
		return fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// AutoMigrate creates the schema from the GORM models, including the partial
// unique index that GORM tags cannot express.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	err := db.AutoMigrate(
		&usermodel.User{},
		&gamesessionmodel.GameSession{},
		&questionmodel.Question{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}

	if err := db.Exec(createOneInProgressIndex).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", OneInProgressIndex, err)
	}

	return nil
}
