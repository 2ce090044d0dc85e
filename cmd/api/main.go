package main

import (
	"context"
	"os"

	"github.com/yigit/sharelearning/internal/pkg/logger"
	"github.com/yigit/sharelearning/internal/server"
)

func main() {
	// NewServer loads the configuration, connects to PostgreSQL, applies migrations
	// and builds the router.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until SIGINT/SIGTERM
	if err := srv.Run(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
