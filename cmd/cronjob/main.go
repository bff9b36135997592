package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"festaloc-backend/internal/config"
	"festaloc-backend/internal/jobs"
	"festaloc-backend/internal/logger"
	"festaloc-backend/internal/repository"
	"festaloc-backend/internal/repository/firestore"
	"festaloc-backend/internal/repository/localstore"
	"festaloc-backend/internal/scheduler"
	"festaloc-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'alert-digest', 'all-daily')")
	flag.Parse()

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
	logger.Info("Starting reminder job runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize persistence
	var store *repository.Store
	if cfg.Firestore.ProjectID != "" {
		fs, err := firestore.NewStore(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
		if err != nil {
			logger.Error("Failed to connect to Firestore", "error", err)
			log.Fatalf("Failed to connect to Firestore: %v", err)
		}
		defer fs.Close()
		store = &fs.Store
	} else {
		ls, err := localstore.NewStore(cfg.LocalStore.DataDir)
		if err != nil {
			logger.Error("Failed to initialize local store", "error", err)
			log.Fatalf("Failed to initialize local store: %v", err)
		}
		store = &ls.Store
	}

	// Initialize Services
	emailService := service.NewSendGridEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
		cfg.SendGrid.OperatorEmail,
	)
	rentalService := service.NewRentalService(
		store.RentalRepository,
		store.InventoryRepository,
		store.ClientRepository,
		store.KitRepository,
	)
	notificationService := service.NewNotificationService(store.RentalRepository, store.InventoryRepository)

	jobServices := &jobs.Services{
		Email:        emailService,
		Rental:       rentalService,
		Notification: notificationService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Reminder scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down reminder scheduler...")
	cronScheduler.Stop()
	logger.Info("Reminder scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "alert-digest":
		jobRunner.SendAlertDigest()
	case "payment-reminders":
		jobRunner.SendPaymentReminders()
	case "overdue-reminders":
		jobRunner.SendOverdueReminders()
	case "all-daily":
		jobRunner.RunAllDailyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - alert-digest\n")
		fmt.Printf("  - payment-reminders\n")
		fmt.Printf("  - overdue-reminders\n")
		fmt.Printf("  - all-daily\n")
		os.Exit(1)
	}
}
