package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/your-org/shopping-assistant/internal/config"
	"github.com/your-org/shopping-assistant/internal/infrastructure/database/postgres"
)

// Standalone seeder for environments where the API process does not seed on
// boot. Run with: go run scripts/seed.go
func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config load failed:", err)
	}

	db, err := postgres.NewConnection(cfg)
	if err != nil {
		log.Fatal("Database connection failed:", err)
	}
	defer db.Close()

	migration := postgres.NewMigration(db.GetDB())

	if err := migration.RunAutoMigrations(); err != nil {
		log.Fatal("Migration failed:", err)
	}
	if err := migration.CreateIndexes(); err != nil {
		log.Println("Index creation failed:", err)
	}
	if err := migration.SeedInitialData(); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	migration.GetTableInfo()
	log.Println("Seed completed")
}
