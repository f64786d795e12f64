package syncer

import (
	"context"

	"github.com/lounge-tools/lounge-tracker/internal/lounge"
	"github.com/lounge-tools/lounge-tracker/internal/matchstore"
)

// MatchSyncer defines the synchronization entry point the HTTP layer calls.
// This allows for mock implementations to be used in tests.
type MatchSyncer interface {
	SyncPlayerMatches(ctx context.Context, playerID int64, prefetched ...PrefetchedDetails) (matchstore.MatchSet, error)
}

// PrefetchedDetails lets a caller hand over a detail payload it already
// holds so the pass skips the remote call for that exact season and game.
type PrefetchedDetails struct {
	Season  int
	Game    lounge.GameMode
	Details *lounge.PlayerDetails
}
