package main

import (
	"context"
	"log"
	"time"

	"academy-chatbot-be/internal/bootstrap"
	"academy-chatbot-be/internal/config"
	"academy-chatbot-be/internal/server"
	"academy-chatbot-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Notifier Service...")
		if err := container.NotifierService.Consume(context.Background()); err != nil {
			log.Printf("Background Notifier Error: %v", err)
		}
	}()

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := container.SessionService.CleanExpiredSessions(context.Background()); err != nil {
				log.Printf("Background Session Sweep Error: %v", err)
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Chatbot.RateWindowMinutes) * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := container.SessionService.ResetRateCounters(context.Background()); err != nil {
				log.Printf("Background Rate Counter Reset Error: %v", err)
			}
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
