package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pressly/goose/v3"

	"fitbyte-be/migrations"
)

// NewConnection opens a pooled PostgreSQL connection and verifies it with a ping.
func NewConnection(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Connected to database")
	return db, nil
}

func setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// RunMigrations applies every pending migration embedded in the binary.
func RunMigrations(db *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}

// RollbackMigration reverts the most recently applied migration.
func RollbackMigration(db *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Down(db, "."); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// ResetMigrations reverts every applied migration, leaving an empty schema.
func ResetMigrations(db *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Reset(db, "."); err != nil {
		return fmt.Errorf("failed to reset migrations: %w", err)
	}
	return nil
}

// MigrationStatus logs the applied state of each migration.
func MigrationStatus(db *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Status(db, "."); err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}
	return nil
}
