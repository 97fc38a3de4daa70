package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"placement-service/internal/common/config"
	"placement-service/internal/common/logging"
	"placement-service/internal/common/middleware"
	"placement-service/internal/fitcheck/checker"
	"placement-service/internal/fitcheck/handlers"
	"placement-service/internal/fitcheck/repository"
	"placement-service/internal/fitcheck/rules"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// ============================================================
// Fit-Check Service
// ============================================================

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.IsDevelopment()).With().Str("service", "fitcheck").Logger()

	store, err := rules.Load(cfg.RulesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.RulesPath).Msg("failed to load fit-check rules")
	}

	// ============================================================
	// Report Log
	// ============================================================

	var reports *repository.Repository
	if cfg.ReportsDBPath != "" {
		db, err := repository.OpenSQLite(cfg.ReportsDBPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open reports db")
		}
		defer db.Close()

		reports = repository.New(db)
		if err := reports.Init(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to init reports db")
		}
		log.Info().Str("path", cfg.ReportsDBPath).Msg("report log enabled")
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Fit-Check Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger(log))
	app.Use(middleware.CORS())

	// ============================================================
	// Fit-Check Routes
	// ============================================================

	handlers.NewFitCheckHandler(checker.New(store), reports, log).Register(app)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Environment).Msg("starting fit-check service")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
