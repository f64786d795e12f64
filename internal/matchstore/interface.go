package matchstore

import (
	"database/sql"
	"sync"

	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// MatchStore is the persistence boundary for cached matches and the
// per-player match-id index. Matches are immutable, so every write is an
// idempotent upsert keyed by the globally unique match id, and the index
// only ever grows.
type MatchStore interface {
	// GetMatchIndex returns the set of match ids known to involve a player.
	GetMatchIndex(playerID int64) ([]int64, error)
	// GetMatch returns a cached match, or nil when the id is not cached.
	GetMatch(matchID int64) (*lounge.Match, error)
	// PutMatch stores a match. Writing the same id twice converges to the
	// same row.
	PutMatch(match *lounge.Match) error
	// PutMatchIndex records match ids for a player. Ids are added with
	// union semantics; existing entries are never removed.
	PutMatchIndex(playerID int64, matchIDs []int64) error
	// GetAllMatches returns every cached match ordered by id.
	GetAllMatches() ([]*lounge.Match, error)
	// Clear wipes the cache. Exposed for the maintenance endpoint only.
	Clear() error
}

type store struct {
	db *sql.DB
	mu sync.RWMutex
}
