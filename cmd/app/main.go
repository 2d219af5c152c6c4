package main

import (
	"context"
	"flag"
	"log"
	"os"

	"PolicyTone/internal/di"
	"PolicyTone/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	ingest := flag.Bool("ingest", false, "crawl configured minutes before serving")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s backend=%s", cfg.Environment, cfg.Backend.Type)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if *ingest {
		if err := app.Ingest(context.Background()); err != nil {
			log.Fatalf("ingestion failed: %v", err)
		}
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
