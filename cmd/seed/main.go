// Command main runs the database seeder for Newsroom.
package main

import (
	"flag"
	"log"

	"newsroom/internal/config"
	"newsroom/internal/database"
	"newsroom/internal/seed"
)

func main() {
	// Parse command line flags
	numReaders := flag.Int("readers", 50, "Number of readers to create")
	numJournalists := flag.Int("journalists", 15, "Number of journalists to create")
	numEditors := flag.Int("editors", 5, "Number of editors to create")
	numPublishers := flag.Int("publishers", 8, "Number of publishers to create")
	numArticles := flag.Int("articles", 200, "Number of articles to create")
	numNewsletters := flag.Int("newsletters", 40, "Number of newsletters to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	dryRun := flag.Bool("dry-run", false, "Log planned writes without touching the database")
	presetFile := flag.String("preset-file", "", "Path to a YAML preset file")
	preset := flag.String("preset", "", "Name of a preset to apply from the preset file")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	opts := seed.Options{
		NumReaders:     *numReaders,
		NumJournalists: *numJournalists,
		NumEditors:     *numEditors,
		NumPublishers:  *numPublishers,
		NumArticles:    *numArticles,
		NumNewsletters: *numNewsletters,
		DryRun:         *dryRun,
		Clean:          *shouldClean,
	}

	if *preset != "" {
		if *presetFile == "" {
			log.Fatal("-preset requires -preset-file")
		}
		p, err := seed.LoadPreset(*presetFile, *preset)
		if err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
		log.Printf("Applying preset %q (ignoring count flags)", p.Name)
		opts = p.Options()
		opts.DryRun = *dryRun
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, opts)

	if opts.Clean && !opts.DryRun {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
