package db

import (
	"fmt"

	"media-gallery/internal/domain/entities"
	"media-gallery/internal/pkg/config"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// AutoMigrate is used for sqlite (dev and tests).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Video{},
	)
}

// Migrate applies the goose migrations for postgres and falls back to gorm's
// AutoMigrate for sqlite. Goose migrations must be registered by importing
// media-gallery/migrations.
func Migrate(database *gorm.DB, driver string) error {
	if driver == config.DriverSQLite {
		return AutoMigrate(database)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("sql.DB alınamadı: %w", err)
	}
	goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
