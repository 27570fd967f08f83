package main

import (
	"arena/config"
	"arena/di"
	"arena/helper"
	"arena/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Arena Admin API
// @version 1.0
// @description Admin dashboard API for sports venue booking management.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
