package stats

import (
	"time"

	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// Filters narrow a match collection without mutating it, so they compose
// by chaining: WithTier(Since(matches, cutoff), tier).

// Since keeps matches completed at or after the cutoff.
func Since(matches []*lounge.Match, cutoff time.Time) []*lounge.Match {
	var filtered []*lounge.Match
	for _, match := range matches {
		if !match.CreatedOn.Before(cutoff) {
			filtered = append(filtered, match)
		}
	}
	return filtered
}

// InSeason keeps matches from exactly the given season.
func InSeason(matches []*lounge.Match, season int) []*lounge.Match {
	var filtered []*lounge.Match
	for _, match := range matches {
		if match.Season == season {
			filtered = append(filtered, match)
		}
	}
	return filtered
}

// WithTier keeps matches played under the given queue tier.
func WithTier(matches []*lounge.Match, tier lounge.Tier) []*lounge.Match {
	var filtered []*lounge.Match
	for _, match := range matches {
		if match.Tier == tier {
			filtered = append(filtered, match)
		}
	}
	return filtered
}

// WithGame keeps matches from the given game.
func WithGame(matches []*lounge.Match, game lounge.GameMode) []*lounge.Match {
	var filtered []*lounge.Match
	for _, match := range matches {
		if match.Game == game {
			filtered = append(filtered, match)
		}
	}
	return filtered
}

// WithPlayerCount keeps matches with exactly the given field size.
func WithPlayerCount(matches []*lounge.Match, numPlayers int) []*lounge.Match {
	var filtered []*lounge.Match
	for _, match := range matches {
		if match.NumPlayers == numPlayers {
			filtered = append(filtered, match)
		}
	}
	return filtered
}

// WithPlayer keeps matches containing the player under any alias.
func WithPlayer(matches []*lounge.Match, id string) []*lounge.Match {
	var filtered []*lounge.Match
	for _, match := range matches {
		if hasPlayer(match, id) {
			filtered = append(filtered, match)
		}
	}
	return filtered
}
