package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lounge-tools/lounge-tracker/internal/stats"
)

func TestParticipantsFlattensTeams(t *testing.T) {
	match := teamMatch(1, "2v2", baseTime,
		[]entrant{{id: 1, score: 95}, {id: 2, score: 80}},
		[]entrant{{id: 3, score: 70}, {id: 4, score: 60}},
	)

	participants := stats.Participants(match)
	require.Len(t, participants, 4)
	assert.Equal(t, int64(1), participants[0].PlayerID)
	assert.Equal(t, 1, participants[0].TeamRank)
	assert.Equal(t, 0, participants[0].TeamIndex)
	assert.Equal(t, int64(4), participants[3].PlayerID)
	assert.Equal(t, 2, participants[3].TeamRank)
	assert.Equal(t, 1, participants[3].TeamIndex)
}

func TestRankParticipantsSharesRanksOnTies(t *testing.T) {
	match := ffa(1, baseTime,
		entrant{id: 1, score: 100},
		entrant{id: 2, score: 100},
		entrant{id: 3, score: 90},
	)

	ranked := stats.RankParticipants(match)
	require.Len(t, ranked, 3)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
	assert.Equal(t, 3, ranked[2].Rank, "rank after a tie is the 1-based position, not the next rank")
	assert.True(t, ranked[0].Tied)
	assert.True(t, ranked[1].Tied)
	assert.False(t, ranked[2].Tied)
}

func TestRankParticipantsSortsByScoreDescending(t *testing.T) {
	match := ffa(1, baseTime,
		entrant{id: 1, score: 50},
		entrant{id: 2, score: 90},
		entrant{id: 3, score: 70},
	)

	ranked := stats.RankParticipants(match)
	assert.Equal(t, int64(2), ranked[0].PlayerID)
	assert.Equal(t, int64(3), ranked[1].PlayerID)
	assert.Equal(t, int64(1), ranked[2].PlayerID)
	assert.Equal(t, []int{1, 2, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})
}

func TestRankBySeedOrdersByRatingDescending(t *testing.T) {
	match := ffa(1, baseTime,
		entrant{id: 1, prevMMR: 5000},
		entrant{id: 2, prevMMR: 7000},
		entrant{id: 3, prevMMR: 6000},
	)

	seeded := stats.RankBySeed(match)
	require.Len(t, seeded, 3)
	assert.Equal(t, int64(2), seeded[0].PlayerID)
	assert.Equal(t, 1, seeded[0].Seed)
	assert.Equal(t, int64(3), seeded[1].PlayerID)
	assert.Equal(t, 2, seeded[1].Seed)
	assert.Equal(t, int64(1), seeded[2].PlayerID)
	assert.Equal(t, 3, seeded[2].Seed)

	seed, ok := stats.PlayerSeed(match, pid(2))
	require.True(t, ok)
	assert.Equal(t, 1, seed)
	seed, ok = stats.PlayerSeed(match, pid(3))
	require.True(t, ok)
	assert.Equal(t, 2, seed)
	seed, ok = stats.PlayerSeed(match, pid(1))
	require.True(t, ok)
	assert.Equal(t, 3, seed)
}

func TestRankBySeedBreaksRatingTiesByPlayerID(t *testing.T) {
	match := ffa(1, baseTime,
		entrant{id: 9, prevMMR: 5000},
		entrant{id: 3, prevMMR: 5000},
	)

	seeded := stats.RankBySeed(match)
	assert.Equal(t, int64(3), seeded[0].PlayerID, "equal ratings seed by ascending player id")
	assert.Equal(t, int64(9), seeded[1].PlayerID)
}

func TestPlayerRankFindsAnyAlias(t *testing.T) {
	match := ffa(1, baseTime,
		entrant{id: 1, score: 90},
		entrant{id: 2, score: 80},
	)

	rank, ok := stats.PlayerRank(match, "discord-2")
	require.True(t, ok, "participants must be searchable by external account id")
	assert.Equal(t, 2, rank)

	_, ok = stats.PlayerRank(match, "discord-404")
	assert.False(t, ok)
}
