package stats

import (
	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// ScoreRecord is a single-match score extreme.
type ScoreRecord struct {
	Match *lounge.Match
	Score int
}

// BestScore returns the match with the player's highest score. The record
// is only replaced on a strictly greater score, so with an id-sorted input
// the lowest match id wins exact ties.
func BestScore(matches []*lounge.Match, id string) (ScoreRecord, bool) {
	var (
		best  ScoreRecord
		found bool
	)
	for _, match := range matches {
		p, ok := resultFor(match, id)
		if !ok {
			continue
		}
		if !found || p.Score > best.Score {
			best = ScoreRecord{Match: match, Score: p.Score}
			found = true
		}
	}
	return best, found
}

// WorstScore returns the match with the player's lowest score. The record
// is only replaced on a strictly lower score.
func WorstScore(matches []*lounge.Match, id string) (ScoreRecord, bool) {
	var (
		worst ScoreRecord
		found bool
	)
	for _, match := range matches {
		p, ok := resultFor(match, id)
		if !ok {
			continue
		}
		if !found || p.Score < worst.Score {
			worst = ScoreRecord{Match: match, Score: p.Score}
			found = true
		}
	}
	return worst, found
}

// PerformanceRecord captures how far a player's finish deviated from their
// seeding in one match.
type PerformanceRecord struct {
	Match *lounge.Match
	Seed  int
	Rank  int
	// Diff is seed minus rank; positive means the player finished better
	// than seeded.
	Diff int
	// Normalized is Diff divided by the field size, which makes matches of
	// different player counts comparable.
	Normalized float64
	Score      int
}

func performanceFor(match *lounge.Match, id string) (PerformanceRecord, bool) {
	if match.NumPlayers == 0 {
		return PerformanceRecord{}, false
	}
	rank, ok := PlayerRank(match, id)
	if !ok {
		return PerformanceRecord{}, false
	}
	seed, ok := PlayerSeed(match, id)
	if !ok {
		return PerformanceRecord{}, false
	}
	p, _ := resultFor(match, id)
	diff := seed - rank
	return PerformanceRecord{
		Match:      match,
		Seed:       seed,
		Rank:       rank,
		Diff:       diff,
		Normalized: float64(diff) / float64(match.NumPlayers),
		Score:      p.Score,
	}, true
}

// BestOverperformance returns the match where the player most exceeded
// their seeding, compared on the normalized value. Raw difference and then
// score break exact normalized ties.
func BestOverperformance(matches []*lounge.Match, id string) (PerformanceRecord, bool) {
	var (
		best  PerformanceRecord
		found bool
	)
	for _, match := range matches {
		record, ok := performanceFor(match, id)
		if !ok {
			continue
		}
		if !found || betterOverperformance(record, best) {
			best = record
			found = true
		}
	}
	return best, found
}

// WorstUnderperformance returns the match where the player fell furthest
// below their seeding.
func WorstUnderperformance(matches []*lounge.Match, id string) (PerformanceRecord, bool) {
	var (
		worst PerformanceRecord
		found bool
	)
	for _, match := range matches {
		record, ok := performanceFor(match, id)
		if !ok {
			continue
		}
		if !found || worseUnderperformance(record, worst) {
			worst = record
			found = true
		}
	}
	return worst, found
}

func betterOverperformance(a, b PerformanceRecord) bool {
	if a.Normalized != b.Normalized {
		return a.Normalized > b.Normalized
	}
	if a.Diff != b.Diff {
		return a.Diff > b.Diff
	}
	return a.Score > b.Score
}

func worseUnderperformance(a, b PerformanceRecord) bool {
	if a.Normalized != b.Normalized {
		return a.Normalized < b.Normalized
	}
	if a.Diff != b.Diff {
		return a.Diff < b.Diff
	}
	return a.Score < b.Score
}

// CarryRecord is a player's score relative to their teammates' average in
// one team match.
type CarryRecord struct {
	Match *lounge.Match
	// Amount is the player's score minus the average of their teammates'
	// scores. Positive means the player carried the team.
	Amount float64
	Score  int
}

func carryFor(match *lounge.Match, id string) (CarryRecord, bool) {
	// FFA matches have no meaningful teammates, whatever team-shaped data
	// they carry.
	if match.Format == lounge.FormatFFA {
		return CarryRecord{}, false
	}
	p, ok := resultFor(match, id)
	if !ok {
		return CarryRecord{}, false
	}
	if p.TeamIndex >= len(match.Teams) {
		return CarryRecord{}, false
	}
	var (
		teammateTotal int
		teammateCount int
	)
	for _, teammate := range match.Teams[p.TeamIndex].Players {
		if teammate.PlayerID == p.PlayerID && teammate.DiscordID == p.DiscordID {
			continue
		}
		teammateTotal += teammate.Score
		teammateCount++
	}
	if teammateCount == 0 {
		return CarryRecord{}, false
	}
	average := float64(teammateTotal) / float64(teammateCount)
	return CarryRecord{
		Match:  match,
		Amount: float64(p.Score) - average,
		Score:  p.Score,
	}, true
}

// BiggestCarry returns the team match where the player outscored their
// teammates by the most. Exact ties go to the higher absolute score.
func BiggestCarry(matches []*lounge.Match, id string) (CarryRecord, bool) {
	var (
		best  CarryRecord
		found bool
	)
	for _, match := range matches {
		record, ok := carryFor(match, id)
		if !ok {
			continue
		}
		if !found || record.Amount > best.Amount ||
			(record.Amount == best.Amount && record.Score > best.Score) {
			best = record
			found = true
		}
	}
	return best, found
}

// BiggestAnchor returns the team match where the player fell furthest below
// their teammates. Exact ties go to the lower absolute score.
func BiggestAnchor(matches []*lounge.Match, id string) (CarryRecord, bool) {
	var (
		worst CarryRecord
		found bool
	)
	for _, match := range matches {
		record, ok := carryFor(match, id)
		if !ok {
			continue
		}
		if !found || record.Amount < worst.Amount ||
			(record.Amount == worst.Amount && record.Score < worst.Score) {
			worst = record
			found = true
		}
	}
	return worst, found
}
