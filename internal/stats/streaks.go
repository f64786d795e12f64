package stats

import (
	"sort"
	"time"

	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// StreakStats summarizes a player's win streaks. A win is an individual
// rank of 1; any other result resets the running streak and its rating
// gain to zero.
type StreakStats struct {
	Current     int
	CurrentGain int
	Longest     int
	LongestGain int
	LongestFrom time.Time
	LongestTo   time.Time
}

// WinStreaks walks the player's matches in chronological order and tracks
// the current and longest win streaks together with the rating gained
// during each. Equal-length streaks are ranked by rating gained.
func WinStreaks(matches []*lounge.Match, id string) StreakStats {
	played := make([]*lounge.Match, 0, len(matches))
	for _, match := range matches {
		if hasPlayer(match, id) {
			played = append(played, match)
		}
	}
	sort.SliceStable(played, func(i, j int) bool {
		if !played[i].CreatedOn.Equal(played[j].CreatedOn) {
			return played[i].CreatedOn.Before(played[j].CreatedOn)
		}
		return played[i].ID < played[j].ID
	})

	var (
		stats StreakStats
		from  time.Time
	)
	for _, match := range played {
		rank, _ := PlayerRank(match, id)
		if rank != 1 {
			stats.Current = 0
			stats.CurrentGain = 0
			continue
		}

		if stats.Current == 0 {
			from = match.CreatedOn
		}
		stats.Current++
		p, _ := resultFor(match, id)
		stats.CurrentGain += p.Delta

		if stats.Current > stats.Longest ||
			(stats.Current == stats.Longest && stats.CurrentGain > stats.LongestGain) {
			stats.Longest = stats.Current
			stats.LongestGain = stats.CurrentGain
			stats.LongestFrom = from
			stats.LongestTo = match.CreatedOn
		}
	}
	return stats
}
