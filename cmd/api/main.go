package main

import (
	"log/slog"
	"os"

	dailyclaim "todaybanner/contexts/banner/daily-claim"
	fileadapter "todaybanner/contexts/banner/daily-claim/adapters/file"
	postgresadapter "todaybanner/contexts/banner/daily-claim/adapters/postgres"
	"todaybanner/contexts/banner/daily-claim/domain/services"
	"todaybanner/contexts/banner/daily-claim/ports"
	"todaybanner/internal/platform/config"
	"todaybanner/internal/platform/db"
	"todaybanner/internal/platform/httpserver"

	"github.com/joho/godotenv"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build the claim module against the configured store.
// 3) Start HTTP server.
//
// Configuration problems (bad timezone, unknown backend, unreachable
// database) stop the process here; nothing is deferred to request time.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err.Error())
		os.Exit(1)
	}

	days, err := services.NewDayKeyResolver(cfg.Timezone)
	if err != nil {
		logger.Error("timezone invalid", "timezone", cfg.Timezone, "error", err.Error())
		os.Exit(1)
	}

	var store ports.ClaimStore
	switch cfg.StoreBackend {
	case config.StorePostgres:
		gormDB, err := db.Connect(cfg.PostgresDSN)
		if err != nil {
			logger.Error("postgres connect failed", "error", err.Error())
			os.Exit(1)
		}
		defer func() { _ = db.Close(gormDB) }()
		if err := postgresadapter.Migrate(gormDB); err != nil {
			logger.Error("postgres migrate failed", "error", err.Error())
			os.Exit(1)
		}
		store = postgresadapter.NewRepository(gormDB, logger)
	case config.StoreFile:
		store = fileadapter.NewStore(cfg.DataFilePath, logger)
	}

	module := dailyclaim.NewModule(dailyclaim.Dependencies{
		Store:         store,
		Days:          days,
		MaxTextLength: cfg.MaxTextLength,
		Logger:        logger,
	})

	logger.Info("today-banner api starting",
		"service", cfg.ServiceName,
		"store", cfg.StoreBackend,
		"timezone", cfg.Timezone,
		"max_text_length", cfg.MaxTextLength,
	)

	server := httpserver.New(module, logger, ":"+cfg.HTTPPort, cfg.PublicDir)
	if err := server.Start(); err != nil {
		logger.Error("http server stopped", "error", err.Error())
		os.Exit(1)
	}
}
