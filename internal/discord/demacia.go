package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/daanteeab/demacia/internal/metrics"
	"github.com/daanteeab/demacia/internal/riot"
)

// handleDemaciaCommand handles the /demacia command and its subcommands.
// The interaction is acknowledged before any Riot call starts, so the user
// sees an immediate "thinking" state regardless of pipeline latency; the
// pipeline then delivers exactly one follow-up message, success or failure.
func (b *DiscordBot) handleDemaciaCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		b.Logger.Error().Err(err).Msg("error acknowledging interaction")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}
	sub := options[0]

	var riotID string
	if len(sub.Options) > 0 {
		riotID = sub.Options[0].StringValue()
	}

	logger := b.Logger.With().
		Str("request_id", uuid.NewString()).
		Str("subcommand", sub.Name).
		Str("riot_id", riotID).
		Logger()
	logger.Info().Msg("handling command")

	ctx := context.Background()

	var err error
	switch sub.Name {
	case "stats":
		err = b.runStats(ctx, s, i, riotID, false)
	case "live":
		err = b.runLive(ctx, s, i, riotID)
	case "coach":
		err = b.runStats(ctx, s, i, riotID, true)
	default:
		logger.Error().Msg("unknown subcommand")
		return
	}

	status := "ok"
	if err != nil {
		status = errorStatus(err)
		logger.Warn().Err(err).Msg("command pipeline failed")
	}
	metrics.CommandsTotal.WithLabelValues(sub.Name, status).Inc()
}

// runStats builds and delivers the daily ranked report. With coach set, an
// AI commentary is appended below the report when available.
func (b *DiscordBot) runStats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, riotID string, coach bool) error {
	stats, err := b.Riot.GetDailyStats(ctx, riotID)
	if err != nil {
		b.followUp(s, i, errorMessage("fetching stats", riotID, err))
		return err
	}

	message := FormatStatsMessage(stats)

	if coach {
		commentary, coachErr := b.coachCommentary(ctx, stats)
		if coachErr != nil {
			// Coaching is decoration; the report still goes out.
			b.Logger.Warn().Err(coachErr).Msg("coach commentary unavailable")
		} else if commentary != "" {
			message += "\n🧠 **Coach says:**\n" + commentary
		}
	}

	b.followUp(s, i, message)
	return nil
}

// runLive builds and delivers the live-game view.
func (b *DiscordBot) runLive(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, riotID string) error {
	gameName, tagLine := riot.SplitRiotID(riotID)

	view, err := b.Riot.GetLiveGame(ctx, gameName, tagLine)
	if err != nil {
		b.followUp(s, i, errorMessage("checking live game", riotID, err))
		return err
	}

	b.followUp(s, i, FormatLiveGameMessage(view))
	return nil
}

// errorMessage renders a pipeline failure into the user-facing error text,
// with a contextual hint per error kind.
func errorMessage(action, riotID string, err error) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "❌ **Error %s for \"%s\"**\n\n", action, riotID)

	var apiErr *riot.APIError
	if !errors.As(err, &apiErr) {
		fmt.Fprintf(&sb, "**Details:** %v\n", err)
		return sb.String()
	}

	switch apiErr.Kind {
	case riot.KindNotInGame:
		sb.WriteString("**Details:** Player is not currently in a game\n\n")
		sb.WriteString("💡 The player is not in an active game right now.")
	case riot.KindNotFound:
		fmt.Fprintf(&sb, "**Details:** Riot ID \"%s\" not found\n\n", riotID)
		sb.WriteString("💡 Make sure to use Riot ID format: **gameName#tagLine** (e.g., PlayerName#EUW)")
	case riot.KindAuthFailure:
		fmt.Fprintf(&sb, "**Details:** API key invalid, expired, or lacks permissions (HTTP %d)\n\n", apiErr.StatusCode)
		sb.WriteString("💡 Check your RIOT_API_KEY in the .env file. Development keys expire after 24 hours.")
	case riot.KindRateLimited:
		sb.WriteString("**Details:** Rate limit exceeded\n\n")
		sb.WriteString("💡 You've hit the rate limit. Wait a minute and try again.")
	case riot.KindNetwork:
		fmt.Fprintf(&sb, "**Details:** Network error: %v\n\n", apiErr.Err)
		sb.WriteString("💡 Check your internet connection or try again later.")
	default:
		fmt.Fprintf(&sb, "**Details:** API error: HTTP %d\n", apiErr.StatusCode)
	}

	return sb.String()
}

// errorStatus maps a pipeline error to a low-cardinality metrics label.
func errorStatus(err error) string {
	var apiErr *riot.APIError
	if errors.As(err, &apiErr) {
		return strings.ReplaceAll(apiErr.Kind.String(), " ", "_")
	}
	return "error"
}
