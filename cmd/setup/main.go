// Command main provisions the database schema and the bot roster.
package main

import (
	"context"
	"flag"
	"log"

	"northpole/internal/config"
	"northpole/internal/database"
	"northpole/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	reset := flag.Bool("reset", false, "Drop and recreate all tables before seeding")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if *reset {
		log.Println("Resetting schema...")
		if err := seed.Reset(ctx, db); err != nil {
			log.Fatalf("Reset failed: %v", err)
		}
	}

	if err := seed.Bots(ctx, db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Bot roster seeded.")
}
