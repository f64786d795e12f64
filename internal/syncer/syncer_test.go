package syncer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lounge-tools/lounge-tracker/internal/config"
	"github.com/lounge-tools/lounge-tracker/internal/lounge"
	"github.com/lounge-tools/lounge-tracker/internal/matchstore"
	"github.com/lounge-tools/lounge-tracker/internal/metrics"
	"github.com/lounge-tools/lounge-tracker/internal/syncer"
)

// testSeasons is a two-season history: season 7 is legacy (one game),
// season 8 runs both games.
var testSeasons = config.SeasonConfig{
	7: {lounge.GameMK8DX},
	8: {lounge.GameMK8DX, lounge.GameMKWorld},
}

func testMatch(id int64) *lounge.Match {
	return &lounge.Match{
		ID:         id,
		Season:     8,
		Game:       lounge.GameMK8DX,
		Format:     "FFA",
		NumPlayers: 12,
		CreatedOn:  time.Date(2025, 7, 9, 18, 0, 0, 0, time.UTC),
	}
}

func tableChange(matchID int64) lounge.MMRChange {
	return lounge.MMRChange{MatchID: matchID, Reason: lounge.ReasonTable, Delta: 50}
}

func setup(t *testing.T) (*syncer.Syncer, *lounge.MockClient, *matchstore.Mock, *metrics.Mock) {
	t.Helper()
	client := lounge.NewMockClient()
	store := matchstore.NewMock()
	m := metrics.NewMock()
	return syncer.New(client, store, m, testSeasons), client, store, m
}

func TestSyncFetchesMissingMatches(t *testing.T) {
	s, client, store, m := setup(t)

	client.GetPlayerDetailsFunc = func(playerID int64, season int, game lounge.GameMode) (*lounge.PlayerDetails, error) {
		if season == 8 && game == lounge.GameMK8DX {
			return &lounge.PlayerDetails{
				PlayerID: 42, Season: 8, Game: game, EventsPlayed: 2,
				MMRChanges: []lounge.MMRChange{
					tableChange(100),
					tableChange(200),
					{Reason: "Bonus", Delta: 100}, // not match-linked
				},
			}, nil
		}
		return nil, lounge.ErrNotFound
	}
	client.GetMatchFunc = func(matchID int64) (*lounge.Match, error) {
		return testMatch(matchID), nil
	}

	matches, err := s.SyncPlayerMatches(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Contains(t, matches, int64(100))
	assert.Contains(t, matches, int64(200))

	// Every configured combination was consulted.
	assert.Len(t, client.GetPlayerDetailsCalls, 3)

	// Both matches and the index were persisted.
	stored, err := store.GetMatch(100)
	require.NoError(t, err)
	assert.NotNil(t, stored)
	ids, err := store.GetMatchIndex(42)
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 200}, ids)

	assert.Equal(t, 2, m.MatchesFetched())
	assert.Equal(t, 1, m.SyncRuns())
}

func TestSyncIsIdempotent(t *testing.T) {
	s, client, _, m := setup(t)

	client.GetPlayerDetailsFunc = func(playerID int64, season int, game lounge.GameMode) (*lounge.PlayerDetails, error) {
		if season == 7 {
			return &lounge.PlayerDetails{
				PlayerID: 42, Season: 7, Game: game, EventsPlayed: 1,
				MMRChanges: []lounge.MMRChange{tableChange(100)},
			}, nil
		}
		return nil, lounge.ErrNotFound
	}
	client.GetMatchFunc = func(matchID int64) (*lounge.Match, error) {
		return testMatch(matchID), nil
	}

	first, err := s.SyncPlayerMatches(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Len(t, client.GetMatchCalls, 1)

	client.Reset()

	second, err := s.SyncPlayerMatches(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, client.GetMatchCalls, "second pass must perform zero remote match fetches")
	require.Len(t, second, 1)
	assert.Equal(t, first[100].ID, second[100].ID)
	assert.Equal(t, 1, m.CacheHits(), "second pass serves the match from cache")
}

func TestSyncInvalidPlayerID(t *testing.T) {
	s, client, _, m := setup(t)

	for _, playerID := range []int64{0, -5} {
		_, err := s.SyncPlayerMatches(context.Background(), playerID)
		require.Error(t, err)
		assert.ErrorIs(t, err, lounge.ErrInvalidArgument)
	}
	assert.Empty(t, client.GetPlayerDetailsCalls, "no network call before validation")
	assert.Equal(t, 0, m.SyncRuns())
}

func TestSyncIsolatesMatchFetchFailures(t *testing.T) {
	s, client, store, m := setup(t)

	client.GetPlayerDetailsFunc = func(playerID int64, season int, game lounge.GameMode) (*lounge.PlayerDetails, error) {
		if season == 7 {
			return &lounge.PlayerDetails{
				PlayerID: 42, Season: 7, Game: game, EventsPlayed: 2,
				MMRChanges: []lounge.MMRChange{tableChange(100), tableChange(200)},
			}, nil
		}
		return nil, lounge.ErrNotFound
	}
	client.GetMatchFunc = func(matchID int64) (*lounge.Match, error) {
		if matchID == 200 {
			return nil, &lounge.StatusError{Code: 500, Body: "boom"}
		}
		return testMatch(matchID), nil
	}

	matches, err := s.SyncPlayerMatches(context.Background(), 42)
	require.NoError(t, err, "a single failed match fetch must not fail the pass")
	require.Len(t, matches, 1)
	assert.Contains(t, matches, int64(100))
	assert.Equal(t, 1, m.FetchErrors())

	ids, err := store.GetMatchIndex(42)
	require.NoError(t, err)
	assert.Equal(t, []int64{100}, ids, "failed match must not be indexed")
}

func TestSyncIsolatesCombinationFailures(t *testing.T) {
	s, client, _, m := setup(t)

	client.GetPlayerDetailsFunc = func(playerID int64, season int, game lounge.GameMode) (*lounge.PlayerDetails, error) {
		switch {
		case season == 7:
			return nil, &lounge.StatusError{Code: 503, Body: "unavailable"}
		case season == 8 && game == lounge.GameMKWorld:
			return &lounge.PlayerDetails{
				PlayerID: 42, Season: 8, Game: game, EventsPlayed: 1,
				MMRChanges: []lounge.MMRChange{tableChange(300)},
			}, nil
		default:
			return nil, lounge.ErrNotFound
		}
	}
	client.GetMatchFunc = func(matchID int64) (*lounge.Match, error) {
		return testMatch(matchID), nil
	}

	matches, err := s.SyncPlayerMatches(context.Background(), 42)
	require.NoError(t, err, "a failing combination must not block the others")
	require.Len(t, matches, 1)
	assert.Contains(t, matches, int64(300))
	assert.Equal(t, 1, m.FetchErrors())
}

func TestSyncUsesPrefetchedDetails(t *testing.T) {
	s, client, _, _ := setup(t)

	client.GetMatchFunc = func(matchID int64) (*lounge.Match, error) {
		return testMatch(matchID), nil
	}

	prefetched := syncer.PrefetchedDetails{
		Season: 8,
		Game:   lounge.GameMK8DX,
		Details: &lounge.PlayerDetails{
			PlayerID: 42, Season: 8, Game: lounge.GameMK8DX, EventsPlayed: 1,
			MMRChanges: []lounge.MMRChange{tableChange(100)},
		},
	}

	matches, err := s.SyncPlayerMatches(context.Background(), 42, prefetched)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	for _, call := range client.GetPlayerDetailsCalls {
		if call.Season == 8 && call.Game == lounge.GameMK8DX {
			t.Fatalf("detail summary for the prefetched combination must not be re-fetched")
		}
	}
	// The other two combinations were still consulted.
	assert.Len(t, client.GetPlayerDetailsCalls, 2)
}

func TestSyncSkipsCombinationWithoutHistory(t *testing.T) {
	s, client, _, _ := setup(t)

	client.GetPlayerDetailsFunc = func(playerID int64, season int, game lounge.GameMode) (*lounge.PlayerDetails, error) {
		return &lounge.PlayerDetails{PlayerID: 42, Season: season, Game: game, EventsPlayed: 0}, nil
	}

	matches, err := s.SyncPlayerMatches(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Empty(t, client.GetMatchCalls)
}

func TestSyncSurvivesStoreReadFailure(t *testing.T) {
	s, client, store, _ := setup(t)
	store.GetMatchIndexErr = errors.New("disk on fire")

	client.GetPlayerDetailsFunc = func(playerID int64, season int, game lounge.GameMode) (*lounge.PlayerDetails, error) {
		if season == 7 {
			return &lounge.PlayerDetails{
				PlayerID: 42, Season: 7, Game: game, EventsPlayed: 1,
				MMRChanges: []lounge.MMRChange{tableChange(100)},
			}, nil
		}
		return nil, lounge.ErrNotFound
	}
	client.GetMatchFunc = func(matchID int64) (*lounge.Match, error) {
		return testMatch(matchID), nil
	}

	matches, err := s.SyncPlayerMatches(context.Background(), 42)
	require.NoError(t, err, "a store read failure degrades the pass, it does not abort it")
	assert.Len(t, matches, 1)
}
