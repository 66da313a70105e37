package discord

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

// SetupCloseHandler creates a handler that will catch SIGINT and SIGTERM signals
// and gracefully close the application
func SetupCloseHandler(logger zerolog.Logger, cleanupFunc func() error) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logger.Info().Msg("shutting down")
		err := cleanupFunc()
		if err != nil {
			logger.Error().Err(err).Msg("error during cleanup")
			os.Exit(1)
		}
		os.Exit(0)
	}()
}
