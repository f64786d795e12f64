package lounge

import "time"

// GameMode identifies which game a match was played in. Legacy seasons only
// ran the original game; later seasons run both.
type GameMode string

const (
	GameMK8DX   GameMode = "mk8dx"
	GameMKWorld GameMode = "mkworld"
)

// Tier is the queue type a match was played under. Matches imported from
// legacy seasons carry no tier.
type Tier string

const (
	TierNone  Tier = ""
	TierSolo  Tier = "solo"
	TierSquad Tier = "squad"
)

// FormatFFA marks a free-for-all match. FFA matches have no meaningful
// teammates, so carry/anchor statistics skip them.
const FormatFFA = "FFA"

// ReasonTable is the MMR-change reason that links an entry to a match.
// Other reasons (penalties, bonuses, manual corrections) carry no match id.
const ReasonTable = "Table"

// Match is one completed race event as reported by the lounge API. Matches
// are immutable once completed: the remote never rewrites them, so a cached
// copy is authoritative forever.
type Match struct {
	ID         int64
	Season     int
	Game       GameMode
	Tier       Tier
	Format     string
	NumPlayers int
	CreatedOn  time.Time
	Teams      []Team
}

// Team is one team within a match, ordered by placement.
type Team struct {
	Rank    int
	Players []PlayerResult
}

// PlayerResult is one participant's outcome within a team.
type PlayerResult struct {
	PlayerID  int64
	DiscordID string
	Score     int
	PrevMMR   int
	NewMMR    int
	Delta     int
}

// PlayerDetails is the per-season, per-game summary for a player.
type PlayerDetails struct {
	PlayerID     int64
	Season       int
	Game         GameMode
	EventsPlayed int
	MMRChanges   []MMRChange
}

// MMRChange is one entry in a player's rating history. Entries with reason
// ReasonTable reference the match that produced them via MatchID.
type MMRChange struct {
	MatchID int64
	Reason  string
	Delta   int
	NewMMR  int
	Time    time.Time
}

// loungeDetailsResponse defines the JSON response for the player details endpoint.
type loungeDetailsResponse struct {
	PlayerID     int64                 `json:"playerId"`
	Season       int                   `json:"season"`
	Game         string                `json:"game"`
	EventsPlayed int                   `json:"eventsPlayed"`
	MMRChanges   []loungeChangeDetails `json:"mmrChanges"`
}

type loungeChangeDetails struct {
	ChangeID int64  `json:"changeId"`
	Reason   string `json:"reason"`
	Delta    int    `json:"mmrDelta"`
	NewMMR   int    `json:"newMmr"`
	Time     string `json:"time"`
}

// loungeMatchResponse defines the JSON response for the match (table) endpoint.
type loungeMatchResponse struct {
	TableID    int64                `json:"tableId"`
	Season     int                  `json:"season"`
	Game       string               `json:"game"`
	Tier       string               `json:"tier"`
	Format     string               `json:"format"`
	NumPlayers int                  `json:"numPlayers"`
	CreatedOn  string               `json:"createdOn"`
	Teams      []loungeTeamResponse `json:"teams"`
}

type loungeTeamResponse struct {
	Rank   int                   `json:"rank"`
	Scores []loungeScoreResponse `json:"scores"`
}

type loungeScoreResponse struct {
	PlayerID  int64  `json:"playerId"`
	DiscordID string `json:"playerDiscordId"`
	Score     int    `json:"score"`
	PrevMMR   int    `json:"prevMmr"`
	NewMMR    int    `json:"newMmr"`
	Delta     int    `json:"delta"`
}
