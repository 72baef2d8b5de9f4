package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "agrimarket-backend/internal/api/http"
	"agrimarket-backend/internal/cache"
	"agrimarket-backend/internal/config"
	"agrimarket-backend/internal/diagnosis"
	"agrimarket-backend/internal/history"
	"agrimarket-backend/internal/logger"
	"agrimarket-backend/internal/repository/postgres"
	"agrimarket-backend/internal/security"
	"agrimarket-backend/internal/service"
	"agrimarket-backend/internal/weather"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AgriMarket backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	rdb, err := cache.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()
	logger.Info("Redis connection established", "addr", cfg.Redis.Addr)

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	refSvc := service.NewReferenceService(store.CategoryRepository)
	profileSvc := service.NewProfileService(store.UserRepository, store.ProfileRepository)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, emailSvc)
	listingSvc := service.NewListingService(store.ListingRepository, store.ProfileRepository, profileSvc, refSvc)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, store.ReservationRepository,
		store.ReviewRepository, store.ProfileRepository, profileSvc, refSvc)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)
	reservationSvc := service.NewReservationService(store.ReservationRepository, store.EquipmentRepository,
		store.ProfileRepository, store.UserRepository, notificationSvc, emailSvc)
	statsSvc := service.NewStatsService(store.StatsRepository)

	// Provider selection; only the mock backends ship today, so any
	// other value is a configuration mistake worth failing on.
	if cfg.Providers.Diagnosis != "mock" {
		log.Fatalf("Unsupported diagnosis provider: %s", cfg.Providers.Diagnosis)
	}
	if cfg.Providers.Weather != "mock" {
		log.Fatalf("Unsupported weather provider: %s", cfg.Providers.Weather)
	}
	analyzer := diagnosis.NewMock(time.Now().UnixNano())
	forecaster := weather.NewMock()

	diagnosisSvc := service.NewDiagnosisService(analyzer, history.NewLog(history.NewRedisKV(rdb)))
	weatherSvc := service.NewWeatherService(forecaster)

	router := httpapi.NewRouter(httpapi.Services{
		Auth:          authSvc,
		Profiles:      profileSvc,
		Listings:      listingSvc,
		Equipment:     equipmentSvc,
		Reservations:  reservationSvc,
		References:    refSvc,
		Diagnoses:     diagnosisSvc,
		Weather:       weatherSvc,
		Stats:         statsSvc,
		Notifications: notificationSvc,
	}, tokenManager, db, rdb)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
