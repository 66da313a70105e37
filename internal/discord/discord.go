package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/daanteeab/demacia/internal/riot"
)

// Command definitions
var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "demacia",
		Description: "League of Legends game statistics and info",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "stats",
				Description: "Get daily ranked stats (use Riot ID: gameName#tagLine)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "riotid",
						Description: "Riot ID (e.g., PlayerName#EUW or PlayerName#1234)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "live",
				Description: "Check if a player is currently in a game",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "riotid",
						Description: "Riot ID (e.g., PlayerName#EUW or PlayerName#1234)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "coach",
				Description: "Daily ranked stats with AI improvement tips",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "riotid",
						Description: "Riot ID (e.g., PlayerName#EUW or PlayerName#1234)",
						Required:    true,
					},
				},
			},
		},
	},
}

// NewDiscordBot creates a new Discord bot with the provided configuration
func NewDiscordBot(config *Config, riotClient *riot.Client, logger zerolog.Logger) (*DiscordBot, error) {
	session, err := discordgo.New("Bot " + config.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	var openAI *OpenAIClient
	if config.OpenAIToken != "" {
		openAI = NewOpenAIClient(config.OpenAIToken, config.MaxTokens, config.Temperature)
	}

	bot := &DiscordBot{
		Session:         session,
		Config:          config,
		Riot:            riotClient,
		OpenAI:          openAI,
		Logger:          logger.With().Str("component", "discord").Logger(),
		GuildID:         config.GuildID,
		CommandHandlers: make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)),
	}

	// Set up command handlers
	bot.CommandHandlers["demacia"] = bot.handleDemaciaCommand

	return bot, nil
}

// Start starts the Discord bot
func (b *DiscordBot) Start() error {
	// Get bot user ID
	user, err := b.Session.User("@me")
	if err != nil {
		return fmt.Errorf("error getting bot user: %w", err)
	}
	b.BotUserID = user.ID

	// Register interaction handler
	b.Session.AddHandler(b.interactionHandler)

	// Open a websocket connection to Discord
	err = b.Session.Open()
	if err != nil {
		return fmt.Errorf("error opening Discord session: %w", err)
	}

	// Register commands
	registeredCommands, err := b.registerCommands()
	if err != nil {
		return fmt.Errorf("error registering commands: %w", err)
	}
	b.Commands = registeredCommands

	b.Logger.Info().Int("commands", len(registeredCommands)).Msg("bot running with slash commands registered")
	return nil
}

// Stop stops the Discord bot and removes registered commands
func (b *DiscordBot) Stop() error {
	b.Logger.Info().Msg("removing commands")
	for _, cmd := range b.Commands {
		err := b.Session.ApplicationCommandDelete(b.Session.State.User.ID, b.GuildID, cmd.ID)
		if err != nil {
			b.Logger.Error().Err(err).Str("command", cmd.Name).Msg("error removing command")
		}
	}

	return b.Session.Close()
}

// registerCommands registers the defined slash commands
func (b *DiscordBot) registerCommands() ([]*discordgo.ApplicationCommand, error) {
	registeredCommands := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		registered, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, b.GuildID, cmd)
		if err != nil {
			return nil, fmt.Errorf("error creating command '%s': %w", cmd.Name, err)
		}
		registeredCommands[i] = registered
	}

	return registeredCommands, nil
}

// interactionHandler handles Discord interaction events
func (b *DiscordBot) interactionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type == discordgo.InteractionApplicationCommand {
		commandName := i.ApplicationCommandData().Name

		if handler, ok := b.CommandHandlers[commandName]; ok {
			handler(s, i)
		}
	}
}

// followUp delivers the command's single outcome message. Delivery failures
// are logged and dropped; there is no further escalation path.
func (b *DiscordBot) followUp(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
	})
	if err != nil {
		b.Logger.Error().Err(err).Msg("failed to send follow-up message")
	}
}
