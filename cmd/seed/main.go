// cmd/seed/main.go

// Standalone seeder for environments where the server should not migrate or
// seed on boot. Safe to re-run; existing rows are left untouched.
package main

import (
	"log"

	"github.com/terrazul/terrazul-backend/internal/config"
	"github.com/terrazul/terrazul-backend/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := database.SeedInitialData(db); err != nil {
		log.Fatal("Failed to seed initial data:", err)
	}

	log.Println("Seeding finished")
}
