package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	api "campusrent-backend/internal/api/http"
	"campusrent-backend/internal/config"
	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/jobs"
	"campusrent-backend/internal/ledger"
	"campusrent-backend/internal/logger"
	"campusrent-backend/internal/repository/postgres"
	"campusrent-backend/internal/scheduler"
	"campusrent-backend/internal/security"
	"campusrent-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting campusrent backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	ctx := context.Background()
	if err := seedIfEmpty(ctx, store); err != nil {
		log.Fatalf("Failed to seed initial data: %v", err)
	}

	// Hydrate the in-memory ledger. Observer registrations are runtime-only,
	// so the availability logger below re-subscribes after every start.
	items, err := store.ItemRepository.List(ctx)
	if err != nil {
		log.Fatalf("Failed to load item catalog: %v", err)
	}
	records, err := store.RecordRepository.List(ctx)
	if err != nil {
		log.Fatalf("Failed to load rental history: %v", err)
	}
	rentalLedger := ledger.New()
	rentalLedger.Hydrate(items, records)
	logger.Info("Ledger hydrated", "items", len(items), "records", len(records))

	rentalLedger.SubscribeAll(domain.ObserverFunc(func(item *domain.Item) {
		logger.Info("item availability changed", "item", item.Name, "current_stock", item.CurrentStock(), "max_stock", item.MaxStock)
	}))

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName, cfg.Email.AdminTo)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	rentalSvc := service.NewRentalService(rentalLedger, store.UserRepository, store.ItemRepository, store.RecordRepository)
	adminSvc := service.NewAdminService(rentalLedger, store.ItemRepository, store.UserRepository)

	jobRunner := jobs.NewJobRunner(rentalLedger, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	router := api.NewRouter(
		api.NewAuthHandler(authSvc),
		api.NewRentalHandler(rentalSvc),
		api.NewAdminHandler(adminSvc),
		api.NewAuthMiddleware(tokenManager),
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
