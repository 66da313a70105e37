package discord

import (
	"fmt"
	"strings"

	"github.com/daanteeab/demacia/internal/riot"
)

// FormatStatsMessage renders a daily ranked report into a single chat
// message. Pure string construction; identical input yields identical output.
func FormatStatsMessage(stats *riot.DailyStats) string {
	if stats.NoGames {
		return fmt.Sprintf("**%s** has not played any ranked games today.", stats.DisplayName)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 **Daily Stats for %s**\n\n", stats.DisplayName)

	// Win/loss record, omitting queues with zero games
	sb.WriteString("**Win/Loss Record:**\n")
	if stats.Solo.Games() > 0 {
		fmt.Fprintf(&sb, "🏆 Solo/Duo: %dW - %dL\n", stats.Solo.Wins, stats.Solo.Losses)
	}
	if stats.Flex.Games() > 0 {
		fmt.Fprintf(&sb, "🏆 Flex: %dW - %dL\n", stats.Flex.Wins, stats.Flex.Losses)
	}

	fmt.Fprintf(&sb, "\n**Overall K/D/A:** %d/%d/%d (%s)\n",
		stats.TotalKills, stats.TotalDeaths, stats.TotalAssists, stats.OverallKDA)

	sb.WriteString("\n**Match History:**\n")
	for idx, match := range stats.Matches {
		result := "❌ Loss"
		if match.Win {
			result = "✅ Win"
		}
		fmt.Fprintf(&sb, "%d. **%s** - %s - %s\n", idx+1, match.Champion, match.Queue, result)
		fmt.Fprintf(&sb, "   K/D/A: %d/%d/%d (%s) - %dmin\n",
			match.Kills, match.Deaths, match.Assists, match.KDA, match.DurationMinutes)
	}

	return sb.String()
}

// FormatLiveGameMessage renders a live-game view into a single chat message.
func FormatLiveGameMessage(view *riot.LiveGameView) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🎮 **LIVE GAME** - %s\n", view.QueueName)
	fmt.Fprintf(&sb, "⏱️ Game Duration: %d:%02d\n", view.DurationSeconds/60, view.DurationSeconds%60)
	fmt.Fprintf(&sb, "📍 Map: %s\n\n", view.MapName)

	writeTeam(&sb, view.BlueTeam, "Blue Side", "🔵")
	writeTeam(&sb, view.RedTeam, "Red Side", "🔴")

	if view.HasBans {
		fmt.Fprintf(&sb, "🚫 **Bans:** Blue (%d) | Red (%d)\n", view.BlueBans, view.RedBans)
	}

	sb.WriteString("\n💡 *Note: Real-time K/D/A data not available via API. Showing rank stats.*")

	return sb.String()
}

func writeTeam(sb *strings.Builder, team []riot.ParticipantView, teamName, glyph string) {
	fmt.Fprintf(sb, "%s **%s**\n", glyph, teamName)

	for _, player := range team {
		prefix := "   "
		if player.IsSearched {
			prefix = "➤ "
		}

		fmt.Fprintf(sb, "%s**%s** - %s\n", prefix, player.Champion, player.PlayerLabel)
		fmt.Fprintf(sb, "%s   %s\n", prefix, player.Rank)
		if player.RunePrimary != 0 {
			fmt.Fprintf(sb, "%s   Runes: Primary %d\n", prefix, player.RunePrimary)
		}
	}

	sb.WriteString("\n")
}
