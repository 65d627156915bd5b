package main

import (
	"FoodBridge/cmd/config"
	migration "FoodBridge/cmd/database/migrate"
	"FoodBridge/internal/utils"
	"FoodBridge/internal/utils/storage"
	"FoodBridge/pkg/donation"
	"context"
	"log"
	"time"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to setup app: %v", err)
	}

	// Background sweep: pending donations past their expiry date are flagged
	// expired so they drop out of the open pool.
	donationService := donation.NewDonationService(donation.NewDonationRepository(db), storage.NewAwsS3())
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			count, err := donationService.ExpireOverdueDonations(context.Background())
			if err != nil {
				log.Printf("expiry sweep failed: %v", err)
				continue
			}
			if count > 0 {
				log.Printf("expiry sweep flagged %d donation(s)", count)
			}
		}
	}()

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
