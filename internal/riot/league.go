package riot

import (
	"context"
	"fmt"
	"math"
)

// UnrankedLabel is shown for players with no ranked entries, or when the
// ranked lookup fails during best-effort enrichment.
const UnrankedLabel = "Unranked"

// GetLeagueEntries returns the ranked league entries for a summoner. Entries
// are cached briefly since live-game views look up ten rosters at once.
func (c *Client) GetLeagueEntries(ctx context.Context, summonerID string) ([]LeagueEntry, error) {
	if cached, ok := c.cache.GetLeagueEntries(summonerID); ok {
		return cached, nil
	}

	reqURL := fmt.Sprintf("%s/lol/league/v4/entries/by-summoner/%s", c.PlatformURL, summonerID)

	var entries []LeagueEntry
	if err := c.get(ctx, "league-entries-by-summoner", reqURL, &entries); err != nil {
		return nil, err
	}

	c.cache.SetLeagueEntries(summonerID, entries)
	return entries, nil
}

// RankLabel renders a one-line rank summary from league entries, preferring
// the solo queue entry over flex. No ranked entries yields "Unranked".
func RankLabel(entries []LeagueEntry) string {
	var solo, flex string
	for _, entry := range entries {
		switch entry.QueueType {
		case QueueTypeSolo:
			solo = formatEntry(entry)
		case QueueTypeFlex:
			flex = formatEntry(entry)
		}
	}

	if solo != "" {
		return solo
	}
	if flex != "" {
		return flex
	}
	return UnrankedLabel
}

func formatEntry(entry LeagueEntry) string {
	winRate := 0
	if total := entry.Wins + entry.Losses; total > 0 {
		winRate = int(math.Round(float64(entry.Wins) / float64(total) * 100))
	}
	return fmt.Sprintf("%s %s %dLP (%dW %dL - %d%%)",
		entry.Tier, entry.Rank, entry.LeaguePoints, entry.Wins, entry.Losses, winRate)
}
