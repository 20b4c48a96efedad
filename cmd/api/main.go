package main

import (
	"os"

	"github.com/rs/zerolog"

	httpadapter "todoapi/internal/adapter/http"
	"todoapi/pkg/config"
)

func main() {
	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "todoapi").Logger()

	if err := httpadapter.StartServer(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
