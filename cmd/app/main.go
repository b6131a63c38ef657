package main

import (
	"os"

	"roomio/config"
	"roomio/di"
	"roomio/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetOutput(cfg, os.Stdout)
	logger.SetLogLevel(cfg)

	http, cleanup := di.InitializeService()
	defer cleanup()

	if err := http.Serve(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped")
	}
}
