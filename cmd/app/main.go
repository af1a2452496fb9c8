package main

import (
	"flag"
	"log"
	"os"

	"FinAdvisor/internal/di"
	"FinAdvisor/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s strategy=%s batch=%d", cfg.Environment, cfg.Analysis.Strategy, cfg.Analysis.BatchSize)

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
