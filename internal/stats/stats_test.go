package stats_test

import (
	"strconv"
	"time"

	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// entrant is a compact participant description for building test matches.
type entrant struct {
	id      int64
	score   int
	prevMMR int
	delta   int
}

func (e entrant) result() lounge.PlayerResult {
	return lounge.PlayerResult{
		PlayerID:  e.id,
		DiscordID: "discord-" + strconv.FormatInt(e.id, 10),
		Score:     e.score,
		PrevMMR:   e.prevMMR,
		NewMMR:    e.prevMMR + e.delta,
		Delta:     e.delta,
	}
}

var baseTime = time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)

// ffa builds a free-for-all match where every entrant races alone.
func ffa(id int64, created time.Time, entrants ...entrant) *lounge.Match {
	match := &lounge.Match{
		ID:         id,
		Season:     8,
		Game:       lounge.GameMK8DX,
		Format:     lounge.FormatFFA,
		NumPlayers: len(entrants),
		CreatedOn:  created,
	}
	for i, e := range entrants {
		match.Teams = append(match.Teams, lounge.Team{
			Rank:    i + 1,
			Players: []lounge.PlayerResult{e.result()},
		})
	}
	return match
}

// teamMatch builds a match with the given team composition. Team rank is
// the 1-based position of the team.
func teamMatch(id int64, format string, created time.Time, teams ...[]entrant) *lounge.Match {
	match := &lounge.Match{
		ID:        id,
		Season:    8,
		Game:      lounge.GameMK8DX,
		Tier:      lounge.TierSquad,
		Format:    format,
		CreatedOn: created,
	}
	for i, members := range teams {
		team := lounge.Team{Rank: i + 1}
		for _, e := range members {
			team.Players = append(team.Players, e.result())
		}
		match.NumPlayers += len(members)
		match.Teams = append(match.Teams, team)
	}
	return match
}

func pid(id int64) string {
	return strconv.FormatInt(id, 10)
}
