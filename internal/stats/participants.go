// Package stats derives rankings, seeds, streaks and comparative records
// from an in-memory match collection. Every function is pure: callers hand
// in the matches (typically MatchSet.Sorted(), ascending match id, which
// makes record tie-breaks deterministic) and get plain values back.
package stats

import (
	"sort"

	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// Participant is one player's outcome in a match, tagged with the placement
// and index of the team it raced for. Rank, Tied and Seed are filled by the
// ranking functions below.
type Participant struct {
	lounge.PlayerResult
	TeamRank  int
	TeamIndex int
	Rank      int
	Tied      bool
	Seed      int
}

// Participants flattens all player results out of a match's teams.
func Participants(match *lounge.Match) []Participant {
	var participants []Participant
	for teamIndex, team := range match.Teams {
		for _, player := range team.Players {
			participants = append(participants, Participant{
				PlayerResult: player,
				TeamRank:     team.Rank,
				TeamIndex:    teamIndex,
			})
		}
	}
	return participants
}

// RankParticipants orders a match's participants by score descending and
// assigns individual ranks. Participants with equal scores share the rank
// of the first of them; the next lower score takes its 1-based position.
// Everyone whose score is shared by another participant is flagged tied.
func RankParticipants(match *lounge.Match) []Participant {
	participants := Participants(match)
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].Score > participants[j].Score
	})

	scoreCounts := make(map[int]int, len(participants))
	for _, p := range participants {
		scoreCounts[p.Score]++
	}

	for i := range participants {
		if i > 0 && participants[i].Score == participants[i-1].Score {
			participants[i].Rank = participants[i-1].Rank
		} else {
			participants[i].Rank = i + 1
		}
		participants[i].Tied = scoreCounts[participants[i].Score] > 1
	}
	return participants
}

// RankBySeed orders a match's participants by pre-match rating descending
// and assigns 1-based seeds. Equal ratings are tie-broken by ascending
// player id so the seeding is deterministic.
func RankBySeed(match *lounge.Match) []Participant {
	participants := Participants(match)
	sort.SliceStable(participants, func(i, j int) bool {
		if participants[i].PrevMMR != participants[j].PrevMMR {
			return participants[i].PrevMMR > participants[j].PrevMMR
		}
		return participants[i].PlayerID < participants[j].PlayerID
	})
	for i := range participants {
		participants[i].Seed = i + 1
	}
	return participants
}

// PlayerRank returns a player's individual rank within a match.
func PlayerRank(match *lounge.Match, id string) (int, bool) {
	for _, p := range RankParticipants(match) {
		if p.Is(id) {
			return p.Rank, true
		}
	}
	return 0, false
}

// PlayerSeed returns a player's seed within a match.
func PlayerSeed(match *lounge.Match, id string) (int, bool) {
	for _, p := range RankBySeed(match) {
		if p.Is(id) {
			return p.Seed, true
		}
	}
	return 0, false
}

// resultFor returns a player's flattened result in a match.
func resultFor(match *lounge.Match, id string) (Participant, bool) {
	for _, p := range Participants(match) {
		if p.Is(id) {
			return p, true
		}
	}
	return Participant{}, false
}

// hasPlayer reports whether a match contains the player under any alias.
func hasPlayer(match *lounge.Match, id string) bool {
	_, ok := resultFor(match, id)
	return ok
}
