// main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/config"
	"github.com/MUKILAN0608/Solar-Activity-Dashboard/dataset"
	"github.com/MUKILAN0608/Solar-Activity-Dashboard/handlers"
)

func main() {
	log.Println("Starting Solar Activity Dashboard...")

	// A .env file is optional; SOLAR_DASH_* variables override config values.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment overrides from .env")
	}

	configPath := os.Getenv("SOLAR_DASH_CONFIG")
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Server address: %s, flare CSV: %s, sunspot CSV: %s",
		config.AppConfig.Server.ListenAddr(),
		config.AppConfig.DataFiles.Flares,
		config.AppConfig.DataFiles.Sunspots)

	// The dashboard cannot serve without its data: a missing or malformed
	// CSV at startup is fatal.
	if err := dataset.Init(config.AppConfig.DataFiles); err != nil {
		log.Fatalf("Error loading datasets: %v", err)
	}

	// --- Setup HTTP routes ---
	http.HandleFunc("/", handlers.DashboardHandler)
	http.HandleFunc("/api/health", handlers.HealthHandler)
	http.HandleFunc("/api/meta", handlers.MetaHandler)
	http.HandleFunc("/api/summary", handlers.SummaryHandler)
	http.HandleFunc("/api/flares", handlers.FlaresHandler)
	http.HandleFunc("/api/sunspots", handlers.SunspotsHandler)
	http.HandleFunc("/api/correlation", handlers.CorrelationHandler)
	http.HandleFunc("/charts/", handlers.ChartHandler)

	// Admin route for refreshing datasets from the upstream source
	http.HandleFunc("/api/admin/refresh-data/", handlers.RefreshDataHandler) // Path ends with / to catch sub-paths

	serverAddr := config.AppConfig.Server.ListenAddr()
	log.Printf("Server starting on http://%s\n", serverAddr)
	if err := http.ListenAndServe(serverAddr, nil); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
