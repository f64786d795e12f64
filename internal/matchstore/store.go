package matchstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// New creates a new MatchStore backed by the given database.
func New(db *sql.DB) MatchStore {
	return &store{
		db: db,
	}
}

// GetMatchIndex retrieves the known match ids for a player.
func (s *store) GetMatchIndex(playerID int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT match_id FROM player_matches WHERE player_id = ? ORDER BY match_id", playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query match index: %w", err)
	}
	defer rows.Close()

	var matchIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			log.Error("Failed to scan match index row", "error", err, "playerID", playerID)
			continue
		}
		matchIDs = append(matchIDs, id)
	}
	return matchIDs, rows.Err()
}

// GetMatch retrieves a single cached match. Returns (nil, nil) when the
// match is not cached.
func (s *store) GetMatch(matchID int64) (*lounge.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, season, game, tier, format, num_players, created_on, teams_blob
		FROM matches WHERE id = ?
	`, matchID)

	match, err := scanMatch(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return match, nil
}

// PutMatch inserts or overwrites a match. Matches are immutable upstream,
// so concurrent writers racing on the same id converge to the same row.
func (s *store) PutMatch(match *lounge.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	teamsBlob, err := msgpack.Marshal(match.Teams)
	if err != nil {
		return fmt.Errorf("failed to encode teams: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO matches (id, season, game, tier, format, num_players, created_on, teams_blob)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			season = excluded.season,
			game = excluded.game,
			tier = excluded.tier,
			format = excluded.format,
			num_players = excluded.num_players,
			created_on = excluded.created_on,
			teams_blob = excluded.teams_blob;
	`, match.ID, match.Season, match.Game, match.Tier, match.Format, match.NumPlayers, match.CreatedOn.Unix(), teamsBlob)
	if err != nil {
		return fmt.Errorf("failed to upsert match %d: %w", match.ID, err)
	}
	return nil
}

// PutMatchIndex records match ids for a player. Entries are additive: the
// index grows monotonically and concurrent passes merging the same player
// are safe in either order.
func (s *store) PutMatchIndex(playerID int64, matchIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(matchIDs) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO player_matches (player_id, match_id) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, matchID := range matchIDs {
		if _, err := stmt.Exec(playerID, matchID); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to index match %d for player %d: %w", matchID, playerID, err)
		}
	}
	return tx.Commit()
}

// GetAllMatches retrieves every cached match ordered by id.
func (s *store) GetAllMatches() ([]*lounge.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, season, game, tier, format, num_players, created_on, teams_blob
		FROM matches ORDER BY id
	`)
	if err != nil {
		log.Error("Failed to query all matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	var matches []*lounge.Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

// Clear wipes all cached matches and index entries.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM player_matches"); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("DELETE FROM matches"); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// scanMatch is a helper function to scan a single match row.
func scanMatch(scanner interface{ Scan(...any) error }) (*lounge.Match, error) {
	var (
		match     lounge.Match
		createdOn int64
		teamsBlob []byte
	)
	err := scanner.Scan(&match.ID, &match.Season, &match.Game, &match.Tier, &match.Format, &match.NumPlayers, &createdOn, &teamsBlob)
	if err != nil {
		return nil, err
	}
	match.CreatedOn = time.Unix(createdOn, 0).UTC()

	if len(teamsBlob) > 0 {
		if err := msgpack.Unmarshal(teamsBlob, &match.Teams); err != nil {
			return nil, fmt.Errorf("failed to decode teams for match %d: %w", match.ID, err)
		}
	}
	return &match, nil
}
