package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/iliyamo/flight-reservation-system/internal/cli"
	"github.com/iliyamo/flight-reservation-system/internal/config"
	"github.com/iliyamo/flight-reservation-system/internal/logger"
	"github.com/iliyamo/flight-reservation-system/internal/repository"
	"github.com/iliyamo/flight-reservation-system/internal/seed"
	"github.com/iliyamo/flight-reservation-system/internal/service"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	appLog, err := logger.Open(cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer appLog.Close()

	users, err := repository.NewUserStore(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	flights, err := repository.NewFlightStore(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	reservations, err := repository.NewReservationStore(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}

	auth := service.NewAuthService(users, cfg.JWTSecret, time.Duration(cfg.SessionTTLMin)*time.Minute, cfg.BcryptCost)
	booking := service.NewBookingService(users, flights, reservations)
	flightSvc := service.NewFlightService(flights, reservations)
	reports := service.NewReportService(flights, reservations)

	created, err := seed.EnsureAdmin(ctx, auth)
	if err != nil {
		log.Fatal(err)
	}
	if created {
		fmt.Printf("Admin account created: %s / %s\n", seed.AdminEmail, seed.AdminPassword)
		appLog.Info("default admin account created")
	}
	if cfg.SeedSampleData {
		if err := seed.SampleData(ctx, auth, flightSvc); err != nil {
			log.Fatal(err)
		}
		appLog.Info("sample data seeded")
	}

	app := cli.New(os.Stdin, os.Stdout, auth, booking, flightSvc, reports, appLog)
	if err := app.Run(ctx); err != nil {
		appLog.Error("session ended with error: %v", err)
		log.Fatal(err)
	}
	appLog.Info("session ended normally")
}
