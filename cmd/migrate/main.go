// Command migrate applies or reverts the embedded schema migrations.
//
//	migrate up|down|reset|status
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"fitbyte-be/internal/config"
	"fitbyte-be/internal/database"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up|down|reset|status")
		os.Exit(2)
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	db, err := database.NewConnection(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	switch os.Args[1] {
	case "up":
		err = database.RunMigrations(db)
	case "down":
		err = database.RollbackMigration(db)
	case "reset":
		err = database.ResetMigrations(db)
	case "status":
		err = database.MigrationStatus(db)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
