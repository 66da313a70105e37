package riot

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Team IDs as reported by the spectator API.
const (
	TeamBlue = 100
	TeamRed  = 200
)

// rankLookupLimit bounds how many league lookups run at once while enriching
// a live-game roster.
const rankLookupLimit = 4

// ParticipantView is one player's row in a live-game listing.
type ParticipantView struct {
	Champion    string
	PlayerLabel string
	Rank        string
	IsSearched  bool
	RunePrimary int64 // primary perk style, 0 when the API sent no perks
}

// LiveGameView is the render-ready shape of an active game.
type LiveGameView struct {
	QueueName       string
	DurationSeconds int64
	MapID           int
	MapName         string
	BlueTeam        []ParticipantView
	RedTeam         []ParticipantView
	BlueBans        int
	RedBans         int
	HasBans         bool
}

// GetLiveGame resolves a Riot ID and returns the active game the player is
// in, with both rosters rank-enriched. Players not in a game surface as a
// KindNotInGame error.
func (c *Client) GetLiveGame(ctx context.Context, gameName, tagLine string) (*LiveGameView, error) {
	identity, err := c.ResolveRiotID(ctx, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	game, err := c.GetActiveGame(ctx, identity.SummonerID)
	if err != nil {
		return nil, err
	}

	return c.buildLiveGameView(ctx, game, identity.SummonerID), nil
}

// buildLiveGameView partitions participants into the two teams and attaches a
// rank label to every player. Rank lookups are best-effort decoration: a
// failed lookup degrades to "Unranked" instead of failing the view. At most
// rankLookupLimit lookups run concurrently.
func (c *Client) buildLiveGameView(ctx context.Context, game *CurrentGameInfo, searchedSummonerID string) *LiveGameView {
	ranks := make([]string, len(game.Participants))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(rankLookupLimit)
	for idx, participant := range game.Participants {
		idx, participant := idx, participant
		g.Go(func() error {
			entries, err := c.GetLeagueEntries(gCtx, participant.SummonerID)
			if err != nil {
				c.logger.Warn().Err(err).
					Str("summoner_id", participant.SummonerID).
					Msg("rank lookup failed, showing unranked")
				ranks[idx] = UnrankedLabel
				return nil
			}
			ranks[idx] = RankLabel(entries)
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	view := &LiveGameView{
		QueueName:       QueueName(game.GameQueueConfigID),
		DurationSeconds: game.GameLength,
		MapID:           game.MapID,
		MapName:         MapName(game.MapID),
	}

	for idx, participant := range game.Participants {
		pv := ParticipantView{
			Champion:    participant.ChampionName,
			PlayerLabel: playerLabel(participant),
			Rank:        ranks[idx],
			IsSearched:  participant.SummonerID == searchedSummonerID,
		}
		if participant.Perks != nil {
			pv.RunePrimary = participant.Perks.PerkStyle
		}

		if participant.TeamID == TeamBlue {
			view.BlueTeam = append(view.BlueTeam, pv)
		} else {
			view.RedTeam = append(view.RedTeam, pv)
		}
	}

	for _, ban := range game.BannedChampions {
		if ban.ChampionID == -1 {
			continue // no champion was banned in this slot
		}
		if ban.TeamID == TeamBlue {
			view.BlueBans++
		} else {
			view.RedBans++
		}
	}
	view.HasBans = view.BlueBans > 0 || view.RedBans > 0

	return view
}

func playerLabel(participant CurrentGameParticipant) string {
	if participant.RiotID != "" {
		return participant.RiotID
	}
	return participant.SummonerName
}
