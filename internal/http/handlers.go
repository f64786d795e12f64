package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lounge-tools/lounge-tracker/internal/lounge"
	"github.com/lounge-tools/lounge-tracker/internal/stats"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		if err := s.Store.Clear(); err != nil {
			log.Error("Failed to clear store", "error", err)
			http.Error(w, "Failed to clear store", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Store.GetAllMatches()
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err)
			return
		}
		writeJSON(w, applyFilters(matches, r))
	}
}

type syncResponse struct {
	PlayerID   int64   `json:"playerId"`
	MatchCount int     `json:"matchCount"`
	MatchIDs   []int64 `json:"matchIds"`
}

// SyncPlayerHandler runs a full sync pass for one player and reports the
// matches now known for them.
func (s *Server) SyncPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := parsePlayerID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Info("Starting player sync", "playerID", playerID, "requestID", requestIDFromContext(r))
		matches, err := s.Syncer.SyncPlayerMatches(r.Context(), playerID)
		if err != nil {
			if errors.Is(err, lounge.ErrInvalidArgument) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("Player sync failed", "playerID", playerID, "error", err)
			http.Error(w, "Failed to sync player", http.StatusInternalServerError)
			return
		}

		writeJSON(w, syncResponse{
			PlayerID:   playerID,
			MatchCount: len(matches),
			MatchIDs:   matches.IDs(),
		})
		log.Info("Player sync finished", "playerID", playerID, "matches", len(matches))
	}
}

type playerStatsResponse struct {
	PlayerID           int64             `json:"playerId"`
	MatchesPlayed      int               `json:"matchesPlayed"`
	WinRate            *float64          `json:"winRate"`
	AveragePlacement   *float64          `json:"averagePlacement"`
	AverageScore       *float64          `json:"averageScore"`
	AverageSeed        *float64          `json:"averageSeed"`
	AveragePlayerCount *float64          `json:"averagePlayerCount"`
	Streaks            stats.StreakStats `json:"streaks"`
}

// PlayerStatsHandler syncs a player and returns their aggregate statistics
// over the (optionally filtered) match collection.
func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := parsePlayerID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		matches, err := s.syncedMatches(r, playerID)
		if err != nil {
			writeSyncError(w, playerID, err)
			return
		}

		id := strconv.FormatInt(playerID, 10)
		resp := playerStatsResponse{
			PlayerID:           playerID,
			MatchesPlayed:      stats.MatchesPlayed(matches, id),
			WinRate:            optional(stats.WinRate(matches, id)),
			AveragePlacement:   optional(stats.AveragePlacement(matches, id)),
			AverageScore:       optional(stats.AverageScore(matches, id)),
			AverageSeed:        optional(stats.AverageSeed(matches, id)),
			AveragePlayerCount: optional(stats.AveragePlayerCount(matches, id)),
			Streaks:            stats.WinStreaks(matches, id),
		}
		writeJSON(w, resp)
	}
}

type scoreRecord struct {
	MatchID int64 `json:"matchId"`
	Score   int   `json:"score"`
}

type performanceRecord struct {
	MatchID    int64   `json:"matchId"`
	Seed       int     `json:"seed"`
	Rank       int     `json:"rank"`
	Diff       int     `json:"diff"`
	Normalized float64 `json:"normalized"`
}

type carryRecord struct {
	MatchID int64   `json:"matchId"`
	Amount  float64 `json:"amount"`
	Score   int     `json:"score"`
}

type playerRecordsResponse struct {
	PlayerID              int64              `json:"playerId"`
	BestScore             *scoreRecord       `json:"bestScore"`
	WorstScore            *scoreRecord       `json:"worstScore"`
	BestOverperformance   *performanceRecord `json:"bestOverperformance"`
	WorstUnderperformance *performanceRecord `json:"worstUnderperformance"`
	BiggestCarry          *carryRecord       `json:"biggestCarry"`
	BiggestAnchor         *carryRecord       `json:"biggestAnchor"`
}

// PlayerRecordsHandler syncs a player and returns their single-match
// extremes. Absent records are null rather than zeroed.
func (s *Server) PlayerRecordsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := parsePlayerID(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		matches, err := s.syncedMatches(r, playerID)
		if err != nil {
			writeSyncError(w, playerID, err)
			return
		}

		id := strconv.FormatInt(playerID, 10)
		resp := playerRecordsResponse{PlayerID: playerID}
		if record, ok := stats.BestScore(matches, id); ok {
			resp.BestScore = &scoreRecord{MatchID: record.Match.ID, Score: record.Score}
		}
		if record, ok := stats.WorstScore(matches, id); ok {
			resp.WorstScore = &scoreRecord{MatchID: record.Match.ID, Score: record.Score}
		}
		if record, ok := stats.BestOverperformance(matches, id); ok {
			resp.BestOverperformance = newPerformanceRecord(record)
		}
		if record, ok := stats.WorstUnderperformance(matches, id); ok {
			resp.WorstUnderperformance = newPerformanceRecord(record)
		}
		if record, ok := stats.BiggestCarry(matches, id); ok {
			resp.BiggestCarry = &carryRecord{MatchID: record.Match.ID, Amount: record.Amount, Score: record.Score}
		}
		if record, ok := stats.BiggestAnchor(matches, id); ok {
			resp.BiggestAnchor = &carryRecord{MatchID: record.Match.ID, Amount: record.Amount, Score: record.Score}
		}
		writeJSON(w, resp)
	}
}

func newPerformanceRecord(record stats.PerformanceRecord) *performanceRecord {
	return &performanceRecord{
		MatchID:    record.Match.ID,
		Seed:       record.Seed,
		Rank:       record.Rank,
		Diff:       record.Diff,
		Normalized: record.Normalized,
	}
}

type marginRecord struct {
	MatchID int64 `json:"matchId"`
	Score1  int   `json:"score1"`
	Score2  int   `json:"score2"`
	Margin  int   `json:"margin"`
	Rank1   int   `json:"rank1"`
	Rank2   int   `json:"rank2"`
}

type headToHeadResponse struct {
	Player1           int64         `json:"player1"`
	Player2           int64         `json:"player2"`
	Wins              int           `json:"wins"`
	Losses            int           `json:"losses"`
	Ties              int           `json:"ties"`
	BiggestDifference *marginRecord `json:"biggestDifference"`
}

// HeadToHeadHandler syncs both players and compares them across every
// match containing both.
func (s *Server) HeadToHeadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player1, err := parsePlayerIDParam(r, "player1")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		player2, err := parsePlayerIDParam(r, "player2")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		set1, err := s.Syncer.SyncPlayerMatches(r.Context(), player1)
		if err != nil {
			writeSyncError(w, player1, err)
			return
		}
		set2, err := s.Syncer.SyncPlayerMatches(r.Context(), player2)
		if err != nil {
			writeSyncError(w, player2, err)
			return
		}
		for id, match := range set2 {
			set1[id] = match
		}
		matches := applyFilters(set1.Sorted(), r)

		id1 := strconv.FormatInt(player1, 10)
		id2 := strconv.FormatInt(player2, 10)
		record := stats.HeadToHead(matches, id1, id2)
		resp := headToHeadResponse{
			Player1: player1,
			Player2: player2,
			Wins:    record.Wins,
			Losses:  record.Losses,
			Ties:    record.Ties,
		}
		if margin, ok := stats.BiggestDifference(matches, id1, id2); ok {
			resp.BiggestDifference = &marginRecord{
				MatchID: margin.Match.ID,
				Score1:  margin.Score1,
				Score2:  margin.Score2,
				Margin:  margin.Margin,
				Rank1:   margin.Rank1,
				Rank2:   margin.Rank2,
			}
		}
		writeJSON(w, resp)
	}
}

// syncedMatches runs a sync pass and returns the player's matches sorted
// by id with the request's filters applied.
func (s *Server) syncedMatches(r *http.Request, playerID int64) ([]*lounge.Match, error) {
	set, err := s.Syncer.SyncPlayerMatches(r.Context(), playerID)
	if err != nil {
		return nil, err
	}
	return applyFilters(set.Sorted(), r), nil
}

// applyFilters narrows a match slice by the optional query parameters
// 'season', 'game', 'tier', 'players' and 'since' (RFC 3339).
func applyFilters(matches []*lounge.Match, r *http.Request) []*lounge.Match {
	query := r.URL.Query()
	if seasonStr := query.Get("season"); seasonStr != "" {
		if season, err := strconv.Atoi(seasonStr); err == nil {
			matches = stats.InSeason(matches, season)
		} else {
			log.Warn("Invalid 'season' parameter provided. Ignoring.", "season_param", seasonStr)
		}
	}
	if game := query.Get("game"); game != "" {
		matches = stats.WithGame(matches, lounge.GameMode(game))
	}
	if tier := query.Get("tier"); tier != "" {
		matches = stats.WithTier(matches, lounge.Tier(tier))
	}
	if playersStr := query.Get("players"); playersStr != "" {
		if players, err := strconv.Atoi(playersStr); err == nil {
			matches = stats.WithPlayerCount(matches, players)
		} else {
			log.Warn("Invalid 'players' parameter provided. Ignoring.", "players_param", playersStr)
		}
	}
	if sinceStr := query.Get("since"); sinceStr != "" {
		if since, err := time.Parse(time.RFC3339, sinceStr); err == nil {
			matches = stats.Since(matches, since)
		} else {
			log.Warn("Invalid 'since' parameter provided. Ignoring.", "since_param", sinceStr)
		}
	}
	return matches
}

func parsePlayerID(r *http.Request) (int64, error) {
	return parsePlayerIDParam(r, "player")
}

func parsePlayerIDParam(r *http.Request, param string) (int64, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", param)
	}
	playerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || playerID <= 0 {
		return 0, fmt.Errorf("parameter %q must be a positive player id", param)
	}
	return playerID, nil
}

func writeSyncError(w http.ResponseWriter, playerID int64, err error) {
	if errors.Is(err, lounge.ErrInvalidArgument) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Error("Player sync failed", "playerID", playerID, "error", err)
	http.Error(w, "Failed to sync player", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func optional(value float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &value
}
