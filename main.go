package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/daanteeab/demacia/internal/discord"
	"github.com/daanteeab/demacia/internal/metrics"
	"github.com/daanteeab/demacia/internal/riot"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables")
	}

	config, err := discord.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading configuration")
	}
	if err := config.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("configuration validation failed")
	}

	riotClient := riot.NewClient(config.RiotAPIKey, logger)
	stopJanitor := riotClient.Cache().StartJanitor(5 * time.Minute)

	bot, err := discord.NewDiscordBot(config, riotClient, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating bot")
	}

	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("error starting bot")
	}

	if config.MetricsAddr != "" {
		metrics.Serve(config.MetricsAddr, logger)
	}

	discord.SetupCloseHandler(logger, func() error {
		stopJanitor()
		return bot.Stop()
	})

	logger.Info().Msg("bot is now running, press CTRL-C to exit")
	select {}
}
