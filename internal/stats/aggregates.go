package stats

import (
	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// MatchesPlayed counts the matches containing the player.
func MatchesPlayed(matches []*lounge.Match, id string) int {
	count := 0
	for _, match := range matches {
		if hasPlayer(match, id) {
			count++
		}
	}
	return count
}

// WinRate is the fraction of the player's matches finished at individual
// rank 1. The second return is false when no qualifying matches exist.
func WinRate(matches []*lounge.Match, id string) (float64, bool) {
	played, wins := 0, 0
	for _, match := range matches {
		rank, ok := PlayerRank(match, id)
		if !ok {
			continue
		}
		played++
		if rank == 1 {
			wins++
		}
	}
	if played == 0 {
		return 0, false
	}
	return float64(wins) / float64(played), true
}

// AveragePlacement is the mean individual rank across the player's matches.
func AveragePlacement(matches []*lounge.Match, id string) (float64, bool) {
	total, played := 0, 0
	for _, match := range matches {
		rank, ok := PlayerRank(match, id)
		if !ok {
			continue
		}
		total += rank
		played++
	}
	if played == 0 {
		return 0, false
	}
	return float64(total) / float64(played), true
}

// AverageScore is the mean score across the player's matches.
func AverageScore(matches []*lounge.Match, id string) (float64, bool) {
	total, played := 0, 0
	for _, match := range matches {
		p, ok := resultFor(match, id)
		if !ok {
			continue
		}
		total += p.Score
		played++
	}
	if played == 0 {
		return 0, false
	}
	return float64(total) / float64(played), true
}

// AverageSeed is the mean seed across the player's matches.
func AverageSeed(matches []*lounge.Match, id string) (float64, bool) {
	total, played := 0, 0
	for _, match := range matches {
		seed, ok := PlayerSeed(match, id)
		if !ok {
			continue
		}
		total += seed
		played++
	}
	if played == 0 {
		return 0, false
	}
	return float64(total) / float64(played), true
}

// AveragePlayerCount is the mean field size across the player's matches.
func AveragePlayerCount(matches []*lounge.Match, id string) (float64, bool) {
	total, played := 0, 0
	for _, match := range matches {
		if !hasPlayer(match, id) {
			continue
		}
		total += match.NumPlayers
		played++
	}
	if played == 0 {
		return 0, false
	}
	return float64(total) / float64(played), true
}
