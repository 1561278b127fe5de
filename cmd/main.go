package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"Maltio-Backend/cmd/config"
	migration "Maltio-Backend/cmd/database/migrate"
	"Maltio-Backend/internal/logging"
	"Maltio-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()
	logging.Init(logging.Config{
		Level:  utils.GetConfigOrDefault("LOG_LEVEL", "info"),
		Format: utils.GetConfigOrDefault("LOG_FORMAT", "json"),
	})

	db, err := config.ConnectDB()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect database")
	}

	// `maltio migrate` only runs the migrations
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := migration.Migrate(db); err != nil {
			logging.Fatal().Err(err).Msg("migration failed")
		}
		return
	}

	app, err := config.NewApp(db)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to build app")
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		logging.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logging.Error().Err(err).Msg("shutdown failed")
		}
	}()

	port := utils.GetConfigOrDefault("APP_PORT", "8080")
	logging.Info().Str("port", port).Msg("listening")
	if err := app.Listen(":" + port); err != nil {
		logging.Fatal().Err(err).Msg("server stopped")
	}
}
