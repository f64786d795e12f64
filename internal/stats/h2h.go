package stats

import (
	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// H2HRecord accumulates head-to-head results from the first player's
// perspective.
type H2HRecord struct {
	Wins   int
	Losses int
	Ties   int
}

// HeadToHead compares two players across every match containing both. The
// lower individual rank wins a match; equal ranks tie. Asking for a player
// against themselves returns a zeroed record.
func HeadToHead(matches []*lounge.Match, id1, id2 string) H2HRecord {
	var record H2HRecord
	if id1 == id2 {
		return record
	}
	for _, match := range matches {
		rank1, rank2, ok := sharedRanks(match, id1, id2)
		if !ok {
			continue
		}
		switch {
		case rank1 < rank2:
			record.Wins++
		case rank1 > rank2:
			record.Losses++
		default:
			record.Ties++
		}
	}
	return record
}

// MarginRecord is the widest winning score gap between two players.
type MarginRecord struct {
	Match  *lounge.Match
	Score1 int
	Score2 int
	Margin int
	Rank1  int
	Rank2  int
}

// BiggestDifference returns the match where player1 beat player2 by the
// largest score margin. Equal margins are broken by the larger rank gap.
func BiggestDifference(matches []*lounge.Match, id1, id2 string) (MarginRecord, bool) {
	var (
		best  MarginRecord
		found bool
	)
	if id1 == id2 {
		return best, false
	}
	for _, match := range matches {
		rank1, rank2, ok := sharedRanks(match, id1, id2)
		if !ok || rank1 >= rank2 {
			continue
		}
		p1, _ := resultFor(match, id1)
		p2, _ := resultFor(match, id2)
		record := MarginRecord{
			Match:  match,
			Score1: p1.Score,
			Score2: p2.Score,
			Margin: p1.Score - p2.Score,
			Rank1:  rank1,
			Rank2:  rank2,
		}
		if !found || record.Margin > best.Margin ||
			(record.Margin == best.Margin && record.Rank2-record.Rank1 > best.Rank2-best.Rank1) {
			best = record
			found = true
		}
	}
	return best, found
}

// sharedRanks returns both players' individual ranks when a match contains
// two distinct participants answering to the two ids.
func sharedRanks(match *lounge.Match, id1, id2 string) (int, int, bool) {
	p1, ok1 := resultFor(match, id1)
	p2, ok2 := resultFor(match, id2)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	// Both ids resolving to the same participant is not a head-to-head.
	if p1.Is(id2) || p2.Is(id1) {
		return 0, 0, false
	}
	rank1, _ := PlayerRank(match, id1)
	rank2, _ := PlayerRank(match, id2)
	return rank1, rank2, true
}
