package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"agrimarket-backend/internal/config"
	"agrimarket-backend/internal/jobs"
	"agrimarket-backend/internal/logger"
	"agrimarket-backend/internal/repository/postgres"
	"agrimarket-backend/internal/scheduler"
	"agrimarket-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit ('start-due', 'complete-elapsed', 'expire-stale', 'refresh-refs', 'all')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AgriMarket cronjob runner...", "log_level", cfg.Log.Level)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	refSvc := service.NewReferenceService(store.CategoryRepository)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)

	runner := jobs.NewJobRunner(db, store, &jobs.Services{
		References:    refSvc,
		Notifications: notificationSvc,
	}, cfg)

	if *runOnce != "" {
		runJobOnce(runner, *runOnce)
		return
	}

	sched := scheduler.NewScheduler(runner)
	sched.Start()

	// Block until asked to stop.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	sched.Stop()
}

func runJobOnce(runner *jobs.JobRunner, name string) {
	switch name {
	case "start-due":
		runner.StartDueReservations()
	case "complete-elapsed":
		runner.CompleteElapsedReservations()
	case "expire-stale":
		runner.ExpireStalePending()
	case "refresh-refs":
		runner.RefreshReferenceCache()
	case "all":
		runner.RunAllDailyJobs()
	default:
		log.Fatalf("Unknown job: %s", name)
	}
}
