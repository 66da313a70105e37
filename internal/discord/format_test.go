package discord

import (
	"strings"
	"testing"

	"github.com/daanteeab/demacia/internal/riot"
)

func sampleStats() *riot.DailyStats {
	return &riot.DailyStats{
		DisplayName:  "PlayerOne#EUW",
		Solo:         riot.Record{Wins: 3, Losses: 2},
		TotalKills:   20,
		TotalDeaths:  15,
		TotalAssists: 25,
		OverallKDA:   "3.00",
		Matches: []riot.MatchSummary{
			{Queue: riot.QueueKindSolo, Champion: "Lux", Win: true, Kills: 5, Deaths: 2, Assists: 7, KDA: "6.00", DurationMinutes: 28},
			{Queue: riot.QueueKindSolo, Champion: "Ahri", Win: false, Kills: 2, Deaths: 6, Assists: 3, KDA: "0.83", DurationMinutes: 31},
		},
	}
}

func TestFormatStatsMessage_NoGames(t *testing.T) {
	stats := &riot.DailyStats{DisplayName: "PlayerOne#EUW", NoGames: true}

	got := FormatStatsMessage(stats)
	want := "**PlayerOne#EUW** has not played any ranked games today."
	if got != want {
		t.Errorf("FormatStatsMessage = %q, want %q", got, want)
	}
}

func TestFormatStatsMessage_OmitsEmptyQueueRecords(t *testing.T) {
	message := FormatStatsMessage(sampleStats())

	if !strings.Contains(message, "🏆 Solo/Duo: 3W - 2L") {
		t.Errorf("Expected solo record line, got:\n%s", message)
	}
	if strings.Contains(message, "Flex:") {
		t.Errorf("Flex line should be omitted with zero flex games, got:\n%s", message)
	}
}

func TestFormatStatsMessage_BothQueues(t *testing.T) {
	stats := sampleStats()
	stats.Flex = riot.Record{Wins: 1, Losses: 0}

	message := FormatStatsMessage(stats)
	if !strings.Contains(message, "🏆 Flex: 1W - 0L") {
		t.Errorf("Expected flex record line, got:\n%s", message)
	}
}

func TestFormatStatsMessage_MatchList(t *testing.T) {
	message := FormatStatsMessage(sampleStats())

	if !strings.Contains(message, "1. **Lux** - Solo/Duo - ✅ Win") {
		t.Errorf("Expected numbered win line, got:\n%s", message)
	}
	if !strings.Contains(message, "2. **Ahri** - Solo/Duo - ❌ Loss") {
		t.Errorf("Expected numbered loss line, got:\n%s", message)
	}
	if !strings.Contains(message, "K/D/A: 5/2/7 (6.00) - 28min") {
		t.Errorf("Expected per-match KDA line, got:\n%s", message)
	}
	if !strings.Contains(message, "**Overall K/D/A:** 20/15/25 (3.00)") {
		t.Errorf("Expected overall KDA line, got:\n%s", message)
	}
}

func TestFormatStatsMessage_Idempotent(t *testing.T) {
	stats := sampleStats()

	first := FormatStatsMessage(stats)
	second := FormatStatsMessage(stats)
	if first != second {
		t.Error("Formatting the same report twice must yield identical output")
	}
}

func sampleLiveView() *riot.LiveGameView {
	return &riot.LiveGameView{
		QueueName:       "Ranked Solo/Duo",
		DurationSeconds: 754,
		MapID:           11,
		MapName:         "Summoner's Rift",
		BlueTeam: []riot.ParticipantView{
			{Champion: "Lux", PlayerLabel: "PlayerOne#EUW", Rank: "GOLD II 54LP (30W 20L - 60%)", IsSearched: true},
			{Champion: "Garen", PlayerLabel: "Ally#EUW", Rank: "Unranked", RunePrimary: 8100},
		},
		RedTeam: []riot.ParticipantView{
			{Champion: "Ahri", PlayerLabel: "Enemy#EUW", Rank: "Unranked"},
		},
		BlueBans: 2,
		RedBans:  1,
		HasBans:  true,
	}
}

func TestFormatLiveGameMessage_Header(t *testing.T) {
	message := FormatLiveGameMessage(sampleLiveView())

	if !strings.Contains(message, "🎮 **LIVE GAME** - Ranked Solo/Duo") {
		t.Errorf("Expected queue header, got:\n%s", message)
	}
	// 754s renders as 12:34 with zero-padded seconds.
	if !strings.Contains(message, "⏱️ Game Duration: 12:34") {
		t.Errorf("Expected m:ss duration, got:\n%s", message)
	}
	if !strings.Contains(message, "📍 Map: Summoner's Rift") {
		t.Errorf("Expected map line, got:\n%s", message)
	}
}

func TestFormatLiveGameMessage_SecondsZeroPadded(t *testing.T) {
	view := sampleLiveView()
	view.DurationSeconds = 305

	message := FormatLiveGameMessage(view)
	if !strings.Contains(message, "Game Duration: 5:05") {
		t.Errorf("Expected 5:05, got:\n%s", message)
	}
}

func TestFormatLiveGameMessage_MarksOnlySearchedPlayer(t *testing.T) {
	message := FormatLiveGameMessage(sampleLiveView())

	if strings.Count(message, "➤ ") != 2 {
		// The marker prefixes both lines of the searched player's block.
		t.Errorf("Expected the searched marker on exactly one player's block, got:\n%s", message)
	}
	if !strings.Contains(message, "➤ **Lux** - PlayerOne#EUW") {
		t.Errorf("Expected marked player line, got:\n%s", message)
	}
	if strings.Contains(message, "➤ **Garen**") || strings.Contains(message, "➤ **Ahri**") {
		t.Errorf("Only the searched player may carry the marker, got:\n%s", message)
	}
}

func TestFormatLiveGameMessage_TeamsAndRunes(t *testing.T) {
	message := FormatLiveGameMessage(sampleLiveView())

	if !strings.Contains(message, "🔵 **Blue Side**") || !strings.Contains(message, "🔴 **Red Side**") {
		t.Errorf("Expected both team headers, got:\n%s", message)
	}
	if !strings.Contains(message, "Runes: Primary 8100") {
		t.Errorf("Expected rune annotation for the enriched player, got:\n%s", message)
	}
	if strings.Count(message, "Runes: Primary") != 1 {
		t.Errorf("Rune annotation must be omitted without perks data, got:\n%s", message)
	}
}

func TestFormatLiveGameMessage_Bans(t *testing.T) {
	message := FormatLiveGameMessage(sampleLiveView())
	if !strings.Contains(message, "🚫 **Bans:** Blue (2) | Red (1)") {
		t.Errorf("Expected bans line, got:\n%s", message)
	}

	view := sampleLiveView()
	view.HasBans = false
	if strings.Contains(FormatLiveGameMessage(view), "Bans:") {
		t.Error("Bans line must be omitted when no bans are present")
	}
}

func TestFormatLiveGameMessage_UnknownQueueHeader(t *testing.T) {
	view := sampleLiveView()
	view.QueueName = "Queue 9999"

	message := FormatLiveGameMessage(view)
	if !strings.Contains(message, "🎮 **LIVE GAME** - Queue 9999") {
		t.Errorf("Expected fallback queue header, got:\n%s", message)
	}
}

func TestFormatLiveGameMessage_Idempotent(t *testing.T) {
	view := sampleLiveView()
	if FormatLiveGameMessage(view) != FormatLiveGameMessage(view) {
		t.Error("Formatting the same view twice must yield identical output")
	}
}
