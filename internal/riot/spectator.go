package riot

import (
	"context"
	"errors"
	"fmt"
)

// GetActiveGame returns the game a summoner is currently playing. A 404 from
// the spectator endpoint means the player is simply not in a game, so it is
// remapped to KindNotInGame.
func (c *Client) GetActiveGame(ctx context.Context, summonerID string) (*CurrentGameInfo, error) {
	reqURL := fmt.Sprintf("%s/lol/spectator/v5/active-games/by-summoner/%s", c.PlatformURL, summonerID)

	var info CurrentGameInfo
	if err := c.get(ctx, "active-game-by-summoner", reqURL, &info); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Kind == KindNotFound {
			apiErr.Kind = KindNotInGame
		}
		return nil, err
	}
	return &info, nil
}
