package lounge

import "context"

// LoungeClient defines the interface for interacting with the lounge ranking API.
// This allows for mock implementations to be used in tests.
type LoungeClient interface {
	GetPlayerDetails(ctx context.Context, playerID int64, season int, game GameMode) (*PlayerDetails, error)
	GetMatch(ctx context.Context, matchID int64) (*Match, error)
}
