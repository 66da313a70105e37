package riot

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// DefaultTagLine is assumed when a Riot ID is given without a #tag.
const DefaultTagLine = "EUW"

// SplitRiotID splits a "gameName#tagLine" input into its parts, defaulting
// the tag line to EUW when the input carries no '#'.
func SplitRiotID(riotID string) (gameName, tagLine string) {
	if name, tag, ok := strings.Cut(riotID, "#"); ok {
		return name, tag
	}
	return riotID, DefaultTagLine
}

// GetAccountByRiotID looks up an account by game name and tag line.
func (c *Client) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	reqURL := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.RegionalURL, url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := c.get(ctx, "account-by-riot-id", reqURL, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetSummonerByPUUID looks up the EUW summoner profile for a PUUID.
func (c *Client) GetSummonerByPUUID(ctx context.Context, puuid string) (*Summoner, error) {
	reqURL := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", c.PlatformURL, puuid)

	var summoner Summoner
	if err := c.get(ctx, "summoner-by-puuid", reqURL, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// ResolveRiotID resolves a Riot ID into a PlayerIdentity via two sequential
// lookups: account by Riot ID, then summoner by PUUID. No retries; the first
// failure aborts the resolution.
func (c *Client) ResolveRiotID(ctx context.Context, gameName, tagLine string) (*PlayerIdentity, error) {
	account, err := c.GetAccountByRiotID(ctx, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	summoner, err := c.GetSummonerByPUUID(ctx, account.PUUID)
	if err != nil {
		return nil, err
	}

	return &PlayerIdentity{
		PUUID:       account.PUUID,
		SummonerID:  summoner.ID,
		DisplayName: fmt.Sprintf("%s#%s", account.GameName, account.TagLine),
	}, nil
}
