package riot

import "fmt"

// Ranked queue IDs as used by match-v5.
const (
	QueueRankedSolo = 420
	QueueRankedFlex = 440
)

// queueNames maps queue config IDs to display names.
var queueNames = map[int]string{
	0:    "Custom",
	400:  "Normal Draft",
	420:  "Ranked Solo/Duo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	700:  "Clash",
	720:  "ARAM Clash",
	830:  "Co-op vs AI Intro",
	840:  "Co-op vs AI Beginner",
	850:  "Co-op vs AI Intermediate",
	900:  "URF",
	1020: "One For All",
	1300: "Nexus Blitz",
	1400: "Ultimate Spellbook",
	1700: "Arena",
	1900: "Pick URF",
}

// QueueName returns the display name for a queue config ID, falling back to
// "Queue <code>" for unmapped codes.
func QueueName(queueID int) string {
	if name, ok := queueNames[queueID]; ok {
		return name
	}
	return fmt.Sprintf("Queue %d", queueID)
}

// MapName returns the display name for a map ID. Only Summoner's Rift is
// named; everything else renders as "Map <id>".
func MapName(mapID int) string {
	if mapID == 11 {
		return "Summoner's Rift"
	}
	return fmt.Sprintf("Map %d", mapID)
}

// Account and Summoner Types

type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// PlayerIdentity is a resolved Riot ID, valid for one command invocation.
type PlayerIdentity struct {
	PUUID       string
	SummonerID  string
	DisplayName string // gameName#tagLine as returned by the account API
}

// Match v5 Types

type MatchDto struct {
	Metadata MetadataDto `json:"metadata"`
	Info     InfoDto     `json:"info"`
}

type MetadataDto struct {
	DataVersion  string   `json:"dataVersion"`
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type InfoDto struct {
	GameCreation       int64            `json:"gameCreation"`
	GameDuration       int64            `json:"gameDuration"` // seconds
	GameStartTimestamp int64            `json:"gameStartTimestamp"`
	GameEndTimestamp   int64            `json:"gameEndTimestamp"`
	QueueID            int              `json:"queueId"`
	MapID              int              `json:"mapId"`
	GameMode           string           `json:"gameMode"`
	GameVersion        string           `json:"gameVersion"`
	Participants       []ParticipantDto `json:"participants"`
}

type ParticipantDto struct {
	PUUID          string `json:"puuid"`
	SummonerID     string `json:"summonerId"`
	SummonerName   string `json:"summonerName"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
	TeamID         int    `json:"teamId"`
	ChampionName   string `json:"championName"`
	ChampionID     int    `json:"championId"`
	Kills          int    `json:"kills"`
	Deaths         int    `json:"deaths"`
	Assists        int    `json:"assists"`
	Win            bool   `json:"win"`
}

// Spectator v5 Types

type CurrentGameInfo struct {
	GameID            int64                    `json:"gameId"`
	GameType          string                   `json:"gameType"`
	GameStartTime     int64                    `json:"gameStartTime"`
	MapID             int                      `json:"mapId"`
	GameLength        int64                    `json:"gameLength"` // seconds
	PlatformID        string                   `json:"platformId"`
	GameMode          string                   `json:"gameMode"`
	BannedChampions   []BannedChampion         `json:"bannedChampions"`
	GameQueueConfigID int                      `json:"gameQueueConfigId"`
	Participants      []CurrentGameParticipant `json:"participants"`
}

type BannedChampion struct {
	PickTurn   int   `json:"pickTurn"`
	ChampionID int64 `json:"championId"`
	TeamID     int   `json:"teamId"`
}

type CurrentGameParticipant struct {
	PUUID         string `json:"puuid"`
	SummonerID    string `json:"summonerId"`
	SummonerName  string `json:"summonerName"`
	RiotID        string `json:"riotId"`
	TeamID        int    `json:"teamId"`
	ChampionID    int64  `json:"championId"`
	ChampionName  string `json:"championName"`
	Spell1ID      int64  `json:"spell1Id"`
	Spell2ID      int64  `json:"spell2Id"`
	ProfileIconID int64  `json:"profileIconId"`
	Bot           bool   `json:"bot"`
	Perks         *Perks `json:"perks,omitempty"`
}

type Perks struct {
	PerkIDs      []int64 `json:"perkIds"`
	PerkStyle    int64   `json:"perkStyle"`
	PerkSubStyle int64   `json:"perkSubStyle"`
}

// League v4 Types

const (
	QueueTypeSolo = "RANKED_SOLO_5x5"
	QueueTypeFlex = "RANKED_FLEX_SR"
)

type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}
