package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/daanteeab/demacia/internal/riot"
)

// DiscordBot represents a Discord bot
type DiscordBot struct {
	Session         *discordgo.Session
	Config          *Config
	Riot            *riot.Client
	OpenAI          *OpenAIClient // nil when no OpenAI key is configured
	Logger          zerolog.Logger
	BotUserID       string
	GuildID         string
	Commands        []*discordgo.ApplicationCommand
	CommandHandlers map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
}

// Config holds bot configuration
type Config struct {
	DiscordToken string
	RiotAPIKey   string
	OpenAIToken  string
	GuildID      string
	MetricsAddr  string
	MaxTokens    int
	Temperature  float64
}

// OpenAIClient wraps the OpenAI API client
type OpenAIClient struct {
	client      *openai.Client
	maxTokens   int
	temperature float32
}
