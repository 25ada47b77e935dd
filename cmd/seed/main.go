package main

import (
	"log"

	"github.com/CommunityWatch/CW-Backend/internal/db"
	"github.com/CommunityWatch/CW-Backend/internal/jurisdiction"
	"github.com/CommunityWatch/CW-Backend/internal/seeds"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	if err := db.EnsureSchema(db.DB, "jurisdiction"); err != nil {
		log.Fatalf("❌ Failed to ensure schema: %v", err)
	}
	if err := db.DB.AutoMigrate(&jurisdiction.GisEntry{}); err != nil {
		log.Fatalf("❌ Failed to migrate: %v", err)
	}

	if err := seeds.SeedAll(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
