package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roguetex/courtside/internal/api/rest"
	"github.com/roguetex/courtside/internal/registry"
	"github.com/roguetex/courtside/internal/store"
)

const (
	serviceName    = "courtside"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - Arena Event Reconciliation Service", serviceName, serviceVersion)

	config := loadConfig()

	reg := registry.Default()
	if config.VenuesCSV != "" {
		loaded, err := registry.Load(config.VenuesCSV)
		if err != nil {
			log.Fatalf("Failed to load venue registry: %v", err)
		}
		reg = loaded
	}
	log.Printf("Venue registry loaded (%d teams)", reg.Len())

	// The Postgres store is optional: without it the service still
	// serves the registry and validation report.
	var db *store.Database
	if config.DatabaseDSN != "" {
		var err error
		db, err = store.NewDatabase(config.DatabaseDSN)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Println("Connected to Postgres")

		if err := db.RunMigrations(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
	} else {
		log.Println("No COURTSIDE_DSN set; running without event store")
	}

	restServer := rest.NewServer(config.Port, reg, db, config.ReportPath)
	go func() {
		log.Printf("REST API listening on :%s", config.Port)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down courtside gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST server shutdown error: %v", err)
	}

	log.Println("courtside stopped")
}

type Config struct {
	DatabaseDSN string
	Port        string
	VenuesCSV   string
	ReportPath  string
}

func loadConfig() Config {
	return Config{
		DatabaseDSN: getEnv("COURTSIDE_DSN", ""),
		Port:        getEnv("PORT", "8080"),
		VenuesCSV:   getEnv("VENUES_CSV", ""),
		ReportPath:  getEnv("VALIDATION_REPORT", "validation_report.txt"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
