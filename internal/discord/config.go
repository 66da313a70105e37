package discord

import (
	"fmt"
	"os"
	"strconv"
)

func LoadConfig() (*Config, error) {
	maxTokens := 300
	if maxTokensStr := os.Getenv("MAX_TOKENS"); maxTokensStr != "" {
		if mt, err := strconv.Atoi(maxTokensStr); err == nil {
			maxTokens = mt
		}
	}

	temperature := 0.7
	if tempStr := os.Getenv("TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 64); err == nil {
			temperature = temp
		}
	}

	return &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		RiotAPIKey:   os.Getenv("RIOT_API_KEY"),
		OpenAIToken:  os.Getenv("OPENAI_API_KEY"),
		GuildID:      os.Getenv("GUILD_ID"),
		MetricsAddr:  getEnv("METRICS_ADDR", ""),
		MaxTokens:    maxTokens,
		Temperature:  temperature,
	}, nil
}

func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.RiotAPIKey == "" {
		return fmt.Errorf("RIOT_API_KEY is required")
	}
	// OPENAI_API_KEY is optional; without it the coach subcommand degrades
	// to the plain stats report.
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
