package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lounge-tools/lounge-tracker/internal/lounge"
	"github.com/lounge-tools/lounge-tracker/internal/stats"
)

func TestBestAndWorstScore(t *testing.T) {
	matches := []*lounge.Match{
		ffa(1, baseTime, entrant{id: 1, score: 90}, entrant{id: 2, score: 80}),
		ffa(2, baseTime.Add(time.Hour), entrant{id: 1, score: 120}, entrant{id: 2, score: 70}),
		ffa(3, baseTime.Add(2*time.Hour), entrant{id: 1, score: 60}, entrant{id: 2, score: 95}),
	}

	best, ok := stats.BestScore(matches, pid(1))
	require.True(t, ok)
	assert.Equal(t, int64(2), best.Match.ID)
	assert.Equal(t, 120, best.Score)

	worst, ok := stats.WorstScore(matches, pid(1))
	require.True(t, ok)
	assert.Equal(t, int64(3), worst.Match.ID)
	assert.Equal(t, 60, worst.Score)
}

func TestScoreRecordTiesKeepEarliestMatch(t *testing.T) {
	matches := []*lounge.Match{
		ffa(10, baseTime, entrant{id: 1, score: 100}, entrant{id: 2, score: 50}),
		ffa(20, baseTime.Add(time.Hour), entrant{id: 1, score: 100}, entrant{id: 2, score: 50}),
	}

	best, ok := stats.BestScore(matches, pid(1))
	require.True(t, ok)
	assert.Equal(t, int64(10), best.Match.ID, "an equal score must not displace the earlier record")

	worst, ok := stats.WorstScore(matches, pid(1))
	require.True(t, ok)
	assert.Equal(t, int64(10), worst.Match.ID)
}

func TestScoreRecordsEmptyWhenPlayerAbsent(t *testing.T) {
	matches := []*lounge.Match{
		ffa(1, baseTime, entrant{id: 2, score: 80}, entrant{id: 3, score: 70}),
	}

	_, ok := stats.BestScore(matches, pid(1))
	assert.False(t, ok)
	_, ok = stats.WorstScore(matches, pid(1))
	assert.False(t, ok)
	_, ok = stats.BestScore(nil, pid(1))
	assert.False(t, ok)
}

func TestBestOverperformanceNormalizesByFieldSize(t *testing.T) {
	// Seeded last, finished first in a 3-player match: diff 2 of 3.
	small := ffa(1, baseTime,
		entrant{id: 1, score: 100, prevMMR: 4000},
		entrant{id: 2, score: 90, prevMMR: 6000},
		entrant{id: 3, score: 80, prevMMR: 5000},
	)
	// Seeded 4th, finished 1st in a 6-player match: diff 3 of 6, a smaller
	// share of the field than the 3-player result.
	large := ffa(2, baseTime.Add(time.Hour),
		entrant{id: 1, score: 100, prevMMR: 4500},
		entrant{id: 2, score: 90, prevMMR: 6000},
		entrant{id: 3, score: 80, prevMMR: 5500},
		entrant{id: 4, score: 70, prevMMR: 5000},
		entrant{id: 5, score: 60, prevMMR: 4000},
		entrant{id: 6, score: 50, prevMMR: 3500},
	)

	record, ok := stats.BestOverperformance([]*lounge.Match{large, small}, pid(1))
	require.True(t, ok)
	assert.Equal(t, int64(1), record.Match.ID)
	assert.Equal(t, 3, record.Seed)
	assert.Equal(t, 1, record.Rank)
	assert.Equal(t, 2, record.Diff)
	assert.InDelta(t, 2.0/3.0, record.Normalized, 1e-9)
}

func TestWorstUnderperformance(t *testing.T) {
	// Seeded first, finished last.
	collapse := ffa(1, baseTime,
		entrant{id: 1, score: 40, prevMMR: 7000},
		entrant{id: 2, score: 90, prevMMR: 6000},
		entrant{id: 3, score: 80, prevMMR: 5000},
	)
	// Seeded first, finished second.
	slip := ffa(2, baseTime.Add(time.Hour),
		entrant{id: 1, score: 85, prevMMR: 7000},
		entrant{id: 2, score: 90, prevMMR: 6000},
		entrant{id: 3, score: 80, prevMMR: 5000},
	)

	record, ok := stats.WorstUnderperformance([]*lounge.Match{slip, collapse}, pid(1))
	require.True(t, ok)
	assert.Equal(t, int64(1), record.Match.ID)
	assert.Equal(t, -2, record.Diff)
	assert.InDelta(t, -2.0/3.0, record.Normalized, 1e-9)
}

func TestBiggestCarrySkipsFreeForAll(t *testing.T) {
	matches := []*lounge.Match{
		ffa(1, baseTime, entrant{id: 1, score: 150}, entrant{id: 2, score: 10}),
		teamMatch(2, "2v2", baseTime.Add(time.Hour),
			[]entrant{{id: 1, score: 110}, {id: 3, score: 70}},
			[]entrant{{id: 2, score: 90}, {id: 4, score: 80}},
		),
	}

	record, ok := stats.BiggestCarry(matches, pid(1))
	require.True(t, ok)
	assert.Equal(t, int64(2), record.Match.ID, "free-for-all results have no teammates to carry")
	assert.InDelta(t, 40.0, record.Amount, 1e-9)
}

func TestBiggestCarryAndAnchorAmounts(t *testing.T) {
	matches := []*lounge.Match{
		// Player 1 scores 100 against a 60/70 teammate average of 65.
		teamMatch(1, "3v3", baseTime,
			[]entrant{{id: 1, score: 100}, {id: 2, score: 60}, {id: 3, score: 70}},
			[]entrant{{id: 4, score: 80}, {id: 5, score: 75}, {id: 6, score: 85}},
		),
		// Player 1 scores 50 against a 90/100 teammate average of 95.
		teamMatch(2, "3v3", baseTime.Add(time.Hour),
			[]entrant{{id: 1, score: 50}, {id: 2, score: 90}, {id: 3, score: 100}},
			[]entrant{{id: 4, score: 80}, {id: 5, score: 75}, {id: 6, score: 85}},
		),
	}

	carry, ok := stats.BiggestCarry(matches, pid(1))
	require.True(t, ok)
	assert.Equal(t, int64(1), carry.Match.ID)
	assert.InDelta(t, 35.0, carry.Amount, 1e-9)

	anchor, ok := stats.BiggestAnchor(matches, pid(1))
	require.True(t, ok)
	assert.Equal(t, int64(2), anchor.Match.ID)
	assert.InDelta(t, -45.0, anchor.Amount, 1e-9)
}

func TestCarryRequiresTeammates(t *testing.T) {
	solo := teamMatch(1, "2v2", baseTime,
		[]entrant{{id: 1, score: 100}},
		[]entrant{{id: 2, score: 90}, {id: 3, score: 80}},
	)

	_, ok := stats.BiggestCarry([]*lounge.Match{solo}, pid(1))
	assert.False(t, ok, "a one-player team has no teammate average")
}
