package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lounge-tools/lounge-tracker/internal/config"
	"github.com/lounge-tools/lounge-tracker/internal/lounge"
	"github.com/lounge-tools/lounge-tracker/internal/matchstore"
	"github.com/lounge-tools/lounge-tracker/internal/metrics"
)

// maxInFlightFetches bounds concurrent match lookups against the remote
// API, which is rate limited.
const maxInFlightFetches = 5

// Syncer reconciles the local match cache against the remote ranking API.
// A pass never re-fetches a match whose id is already indexed, so repeated
// passes against an unchanged remote are free of remote match lookups.
type Syncer struct {
	client  lounge.LoungeClient
	store   matchstore.MatchStore
	metrics metrics.Metrics
	seasons config.SeasonConfig
}

// New creates a new Syncer.
func New(client lounge.LoungeClient, store matchstore.MatchStore, metrics metrics.Metrics, seasons config.SeasonConfig) *Syncer {
	return &Syncer{
		client:  client,
		store:   store,
		metrics: metrics,
		seasons: seasons,
	}
}

var _ MatchSyncer = (*Syncer)(nil)

// SyncPlayerMatches returns the complete-as-possible mapping of match id to
// match for one player, fetching and persisting anything the cache is
// missing. Failures are isolated per season/game combination and per match
// id: they reduce completeness but never abort the pass. Only an invalid
// player id is a hard failure.
func (s *Syncer) SyncPlayerMatches(ctx context.Context, playerID int64, prefetched ...PrefetchedDetails) (matchstore.MatchSet, error) {
	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be positive, got %d", lounge.ErrInvalidArgument, playerID)
	}

	s.metrics.IncSyncRuns()
	start := time.Now()
	defer func() {
		s.metrics.ObserveSyncDuration(time.Since(start).Seconds())
	}()

	matches := make(matchstore.MatchSet)
	knownIDs := make(map[int64]struct{})

	index, err := s.store.GetMatchIndex(playerID)
	if err != nil {
		// Degraded pass: the remote walk below rebuilds the index.
		log.Warn("Failed to load match index, continuing with empty cache", "error", err, "playerID", playerID)
	}
	for _, id := range index {
		knownIDs[id] = struct{}{}
		match, err := s.store.GetMatch(id)
		if err != nil {
			log.Warn("Skipping corrupt cached match", "error", err, "matchID", id, "playerID", playerID)
			continue
		}
		if match == nil {
			log.Warn("Indexed match missing from cache", "matchID", id, "playerID", playerID)
			continue
		}
		matches[id] = match
	}
	s.metrics.IncCacheHits(len(matches))
	log.Debug("Hydrated cached matches", "playerID", playerID, "cached", len(matches), "indexed", len(index))

	newCount := 0
	for _, season := range s.seasons.Seasons() {
		for _, game := range s.seasons[season] {
			details := prefetchedFor(prefetched, season, game)
			if details == nil {
				details, err = s.client.GetPlayerDetails(ctx, playerID, season, game)
				if errors.Is(err, lounge.ErrNotFound) {
					log.Debug("Player has no data for combination", "playerID", playerID, "season", season, "game", game)
					continue
				}
				if err != nil {
					// Treated as zero matches found; other combinations proceed.
					s.metrics.IncFetchErrors()
					log.Error("Failed to fetch detail summary", "error", err, "playerID", playerID, "season", season, "game", game)
					continue
				}
			}

			if len(details.MMRChanges) == 0 {
				log.Debug("Player did not compete in combination", "playerID", playerID, "season", season, "game", game)
				continue
			}

			missing := missingMatchIDs(details, knownIDs)
			if len(missing) == 0 {
				continue
			}
			log.Info("Fetching missing matches", "playerID", playerID, "season", season, "game", game, "count", len(missing))

			for _, match := range s.fetchMatches(ctx, missing) {
				if err := s.store.PutMatch(match); err != nil {
					log.Error("Failed to persist match", "error", err, "matchID", match.ID)
					// Still part of the in-memory result for this pass.
				}
				matches[match.ID] = match
				knownIDs[match.ID] = struct{}{}
				newCount++
			}
		}
	}

	if newCount > 0 {
		if err := s.store.PutMatchIndex(playerID, matches.IDs()); err != nil {
			log.Error("Failed to persist match index", "error", err, "playerID", playerID)
		}
	}

	log.Info("Sync pass finished", "playerID", playerID, "total", len(matches), "new", newCount)
	return matches, nil
}

// fetchMatches looks up the given match ids concurrently, bounded to
// maxInFlightFetches. A failed lookup is logged and skipped; it never
// aborts the batch.
func (s *Syncer) fetchMatches(ctx context.Context, matchIDs []int64) []*lounge.Match {
	var (
		mu      sync.Mutex
		fetched []*lounge.Match
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxInFlightFetches)
	for _, matchID := range matchIDs {
		group.Go(func() error {
			match, err := s.client.GetMatch(groupCtx, matchID)
			if err != nil {
				s.metrics.IncFetchErrors()
				log.Error("Failed to fetch match", "error", err, "matchID", matchID)
				return nil
			}
			mu.Lock()
			fetched = append(fetched, match)
			mu.Unlock()
			return nil
		})
	}
	group.Wait()

	s.metrics.IncMatchesFetched(len(fetched))
	return fetched
}

// missingMatchIDs extracts the ids of match-linked rating changes that are
// not cached yet.
func missingMatchIDs(details *lounge.PlayerDetails, knownIDs map[int64]struct{}) []int64 {
	var missing []int64
	seen := make(map[int64]struct{})
	for _, change := range details.MMRChanges {
		if change.Reason != lounge.ReasonTable || change.MatchID == 0 {
			continue
		}
		if _, known := knownIDs[change.MatchID]; known {
			continue
		}
		if _, dup := seen[change.MatchID]; dup {
			continue
		}
		seen[change.MatchID] = struct{}{}
		missing = append(missing, change.MatchID)
	}
	return missing
}

func prefetchedFor(prefetched []PrefetchedDetails, season int, game lounge.GameMode) *lounge.PlayerDetails {
	for _, p := range prefetched {
		if p.Season == season && p.Game == game && p.Details != nil {
			return p.Details
		}
	}
	return nil
}
