// Command seed_lower_extremity builds the lower extremity injuries quiz bank.
// Usage: go run ./cmd/seed_lower_extremity [-db path/to/bank.db]
package main

import (
	"flag"
	"log"

	"github.com/RyanZhou416/QuizForge/internal/config"
	"github.com/RyanZhou416/QuizForge/internal/database"
	"github.com/RyanZhou416/QuizForge/internal/loader"
	"github.com/RyanZhou416/QuizForge/internal/seed"
)

func main() {
	cfg := config.NewConfig()

	dbPath := flag.String("db", cfg.Seed.DatabasePath, "path to the quiz bank database file")
	flag.Parse()

	log.Printf("Generating quiz bank at %s...", *dbPath)

	// The store is always rebuilt from scratch
	db, err := database.Create(*dbPath, database.Options{LogSQL: cfg.Database.LogSQL})
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	// Image references are stored as written, never embedded
	stats, err := loader.Populate(db, seed.LowerExtremity(), nil, nil)
	if err != nil {
		log.Fatalf("Failed to populate database: %v", err)
	}

	topics, err := db.TopicCounts()
	if err != nil {
		log.Fatalf("Failed to count topics: %v", err)
	}

	log.Printf("Database created: %s", *dbPath)
	log.Printf("Total questions: %d (%d options)", stats.Questions, stats.Options)
	for _, t := range topics {
		topic := "(no topic)"
		if t.Topic != nil {
			topic = *t.Topic
		}
		log.Printf("  %s: %d", topic, t.Count)
	}
}
