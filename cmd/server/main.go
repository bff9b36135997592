package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	httpapi "festaloc-backend/internal/api/http"
	"festaloc-backend/internal/config"
	"festaloc-backend/internal/jobs"
	"festaloc-backend/internal/logger"
	"festaloc-backend/internal/repository"
	"festaloc-backend/internal/repository/firestore"
	"festaloc-backend/internal/repository/localstore"
	"festaloc-backend/internal/scheduler"
	"festaloc-backend/internal/security"
	"festaloc-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real deployments set environment variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rental console backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.Address())

	ctx := context.Background()

	// Initialize persistence: Firestore when a project is configured, the
	// local JSON store otherwise.
	var store *repository.Store
	if cfg.Firestore.ProjectID != "" {
		logger.Info("Using Firestore", "project_id", cfg.Firestore.ProjectID)
		fs, err := firestore.NewStore(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
		if err != nil {
			logger.Error("Failed to connect to Firestore", "error", err)
			log.Fatalf("Failed to connect to Firestore: %v", err)
		}
		defer fs.Close()
		store = &fs.Store
	} else {
		logger.Info("Using local JSON store", "data_dir", cfg.LocalStore.DataDir)
		ls, err := localstore.NewStore(cfg.LocalStore.DataDir)
		if err != nil {
			logger.Error("Failed to initialize local store", "error", err)
			log.Fatalf("Failed to initialize local store: %v", err)
		}
		store = &ls.Store
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenExpiry())
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Services
	emailSvc := service.NewSendGridEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
		cfg.SendGrid.OperatorEmail,
	)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.InventoryRepository,
		store.ClientRepository,
		store.KitRepository,
	)
	availabilitySvc := service.NewAvailabilityService(store.RentalRepository, store.InventoryRepository)
	financeSvc := service.NewFinanceService(
		store.RentalRepository,
		store.InventoryRepository,
		store.ClientRepository,
		store.ExpenseRepository,
		store.RevenueRepository,
	)
	notificationSvc := service.NewNotificationService(store.RentalRepository, store.InventoryRepository)
	catalogSvc := service.NewCatalogService(
		availabilitySvc,
		store.RentalRepository,
		store.InventoryRepository,
		store.ClientRepository,
	)
	inventorySvc := service.NewInventoryService(store.InventoryRepository, store.ExpenseRepository)
	clientSvc := service.NewClientService(store.ClientRepository)
	kitSvc := service.NewKitService(store.KitRepository, store.InventoryRepository)
	settingsSvc := service.NewSettingsService(store.SettingsRepository)
	logisticsSvc := service.NewLogisticsService(store.RentalRepository)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(tokenManager, cfg.Admin.Username, cfg.Admin.PasswordHash),
		Inventory:    httpapi.NewInventoryHandler(inventorySvc),
		Clients:      httpapi.NewClientHandler(clientSvc),
		Kits:         httpapi.NewKitHandler(kitSvc),
		Rentals:      httpapi.NewRentalHandler(rentalSvc),
		Availability: httpapi.NewAvailabilityHandler(availabilitySvc),
		Finance:      httpapi.NewFinanceHandler(financeSvc),
		Settings:     httpapi.NewSettingsHandler(settingsSvc),
		Notification: httpapi.NewNotificationHandler(notificationSvc),
		Logistics:    httpapi.NewLogisticsHandler(logisticsSvc),
		Catalog:      httpapi.NewCatalogHandler(catalogSvc, rentalSvc, settingsSvc),
	}
	router := httpapi.NewRouter(handlers, authMiddleware, cfg.Server.AllowedOrigins)

	// Optionally run the reminder scheduler inside the server process
	if cfg.Scheduler.Enabled {
		jobRunner := jobs.NewJobRunner(&jobs.Services{
			Email:        emailSvc,
			Rental:       rentalSvc,
			Notification: notificationSvc,
		}, cfg)
		cronScheduler := scheduler.NewScheduler(jobRunner)
		cronScheduler.Start()
		defer cronScheduler.Stop()
	}

	logger.Info("HTTP server listening", "address", cfg.Address())
	if err := http.ListenAndServe(cfg.Address(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
