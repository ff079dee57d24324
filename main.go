// @title Business Health API
// @version 1.0
// @description Backend for the small-business health self-assessment and advisor platform.

// @contact.name API Support

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"business_health_backend/internal/app"
	"business_health_backend/internal/config"
	"business_health_backend/pkg/configwatcher"
	"business_health_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force database migrations on startup, even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadAIConfig)

	application.Run()
}
