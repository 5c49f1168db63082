package main

import (
	"context"
	"log"

	"legal-ai-be/internal/bootstrap"
	"legal-ai-be/internal/config"
	"legal-ai-be/internal/server"
	"legal-ai-be/internal/tracer"
	"legal-ai-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	if err := container.RelayService.Start(context.Background()); err != nil {
		log.Printf("Background Relay Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
