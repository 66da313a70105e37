package riot

import (
	"context"
	"fmt"
)

// QueueKind is the display name of a ranked queue in a daily report.
type QueueKind string

const (
	QueueKindSolo QueueKind = "Solo/Duo"
	QueueKindFlex QueueKind = "Flex"
)

// MatchSummary is the per-match slice of a daily report. It is derived once
// from raw match detail and never mutated afterwards.
type MatchSummary struct {
	MatchID         string
	Queue           QueueKind
	Champion        string
	Win             bool
	Kills           int
	Deaths          int
	Assists         int
	KDA             string
	DurationMinutes int
}

// Record is a win/loss count for one queue.
type Record struct {
	Wins   int
	Losses int
}

// Games reports how many matches the record covers.
func (r Record) Games() int {
	return r.Wins + r.Losses
}

// DailyStats is the aggregated ranked report for one player and one day.
// Matches keeps the reverse-chronological order the match API returned.
type DailyStats struct {
	DisplayName  string
	NoGames      bool
	Solo         Record
	Flex         Record
	TotalKills   int
	TotalDeaths  int
	TotalAssists int
	OverallKDA   string
	Matches      []MatchSummary
}

// FormatKDA renders a KDA ratio to two decimal places. Zero deaths is always
// the literal "Perfect", never a division error.
func FormatKDA(kills, deaths, assists int) string {
	if deaths == 0 {
		return "Perfect"
	}
	return fmt.Sprintf("%.2f", float64(kills+assists)/float64(deaths))
}

// BuildDailyStats aggregates raw matches into a DailyStats report. Only the
// ranked solo and flex queues count; other queues are discarded. A match
// whose participant list does not contain the player is skipped. An empty
// input produces the no-games variant.
func BuildDailyStats(puuid, displayName string, matches []*MatchDto) *DailyStats {
	if len(matches) == 0 {
		return &DailyStats{DisplayName: displayName, NoGames: true}
	}

	stats := &DailyStats{DisplayName: displayName}

	for _, match := range matches {
		queueID := match.Info.QueueID
		if queueID != QueueRankedSolo && queueID != QueueRankedFlex {
			continue
		}

		participant := findParticipant(match, puuid)
		if participant == nil {
			continue
		}

		queue := QueueKindFlex
		if queueID == QueueRankedSolo {
			queue = QueueKindSolo
		}

		if queueID == QueueRankedSolo {
			if participant.Win {
				stats.Solo.Wins++
			} else {
				stats.Solo.Losses++
			}
		} else {
			if participant.Win {
				stats.Flex.Wins++
			} else {
				stats.Flex.Losses++
			}
		}

		stats.TotalKills += participant.Kills
		stats.TotalDeaths += participant.Deaths
		stats.TotalAssists += participant.Assists

		stats.Matches = append(stats.Matches, MatchSummary{
			MatchID:         match.Metadata.MatchID,
			Queue:           queue,
			Champion:        participant.ChampionName,
			Win:             participant.Win,
			Kills:           participant.Kills,
			Deaths:          participant.Deaths,
			Assists:         participant.Assists,
			KDA:             FormatKDA(participant.Kills, participant.Deaths, participant.Assists),
			DurationMinutes: int(match.Info.GameDuration / 60),
		})
	}

	stats.OverallKDA = FormatKDA(stats.TotalKills, stats.TotalDeaths, stats.TotalAssists)
	return stats
}

func findParticipant(match *MatchDto, puuid string) *ParticipantDto {
	for idx := range match.Info.Participants {
		if match.Info.Participants[idx].PUUID == puuid {
			return &match.Info.Participants[idx]
		}
	}
	return nil
}

// GetDailyStats runs the full stats pipeline for a Riot ID: resolve the
// identity, fetch today's matches, aggregate.
func (c *Client) GetDailyStats(ctx context.Context, riotID string) (*DailyStats, error) {
	gameName, tagLine := SplitRiotID(riotID)

	identity, err := c.ResolveRiotID(ctx, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	matches, err := c.GetRecentMatches(ctx, identity.PUUID)
	if err != nil {
		return nil, err
	}

	stats := BuildDailyStats(identity.PUUID, identity.DisplayName, matches)
	c.logger.Debug().
		Str("display_name", identity.DisplayName).
		Int("matches", len(stats.Matches)).
		Bool("no_games", stats.NoGames).
		Msg("daily stats aggregated")
	return stats, nil
}
