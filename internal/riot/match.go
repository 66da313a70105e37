package riot

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// MaxMatchesPerDay caps how many match IDs are requested for a daily report.
const MaxMatchesPerDay = 20

// GetMatchIDs returns match IDs for a PUUID, newest first. startTime is an
// epoch in seconds; matches older than it are excluded.
func (c *Client) GetMatchIDs(ctx context.Context, puuid string, startTime int64, count int) ([]string, error) {
	query := url.Values{}
	query.Set("startTime", strconv.FormatInt(startTime, 10))
	query.Set("count", strconv.Itoa(count))

	reqURL := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?%s",
		c.RegionalURL, puuid, query.Encode())

	var matchIDs []string
	if err := c.get(ctx, "match-ids-by-puuid", reqURL, &matchIDs); err != nil {
		return nil, err
	}
	return matchIDs, nil
}

// GetMatch returns full match detail for a match ID. Finished matches never
// change, so results are served from the cache when possible.
func (c *Client) GetMatch(ctx context.Context, matchID string) (*MatchDto, error) {
	if cached, ok := c.cache.GetMatch(matchID); ok {
		return cached, nil
	}

	reqURL := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.RegionalURL, matchID)

	var match MatchDto
	if err := c.get(ctx, "match-by-id", reqURL, &match); err != nil {
		return nil, err
	}

	c.cache.SetMatch(matchID, &match)
	return &match, nil
}

// GetRecentMatches fetches full detail for every match the player played
// since the start of the current calendar day, in the order the match API
// returned the IDs (reverse-chronological). Detail fetches run concurrently;
// any single failure fails the whole batch. An empty day yields an empty
// slice, not an error.
func (c *Client) GetRecentMatches(ctx context.Context, puuid string) ([]*MatchDto, error) {
	startTime := startOfDayUnix(time.Now())

	matchIDs, err := c.GetMatchIDs(ctx, puuid, startTime, MaxMatchesPerDay)
	if err != nil {
		return nil, err
	}
	if len(matchIDs) == 0 {
		return nil, nil
	}

	matches := make([]*MatchDto, len(matchIDs))
	g, gCtx := errgroup.WithContext(ctx)
	for idx, matchID := range matchIDs {
		idx, matchID := idx, matchID
		g.Go(func() error {
			match, err := c.GetMatch(gCtx, matchID)
			if err != nil {
				return err
			}
			matches[idx] = match
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return matches, nil
}

// startOfDayUnix returns midnight of now's calendar day in now's location,
// as an epoch in seconds.
func startOfDayUnix(now time.Time) int64 {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).Unix()
}
