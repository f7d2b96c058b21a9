package config

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"

	_ "github.com/bffgym/pos-be/migrations"
)

// RunMigrations executes all pending seed migrations (session timetable).
func RunMigrations(db *sql.DB) error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	// Go migrations register themselves via init; the directory path is
	// still needed for goose to track versions.
	if err := goose.Up(db, "./migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// GetSQLDB returns a *sql.DB from the gorm.DB instance
func GetSQLDB() (*sql.DB, error) {
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB, nil
}
