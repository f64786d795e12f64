package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/lounge-tools/lounge-tracker/internal/lounge"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"github.com/vmihailenco/msgpack/v5"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

// dummyPlayerIDs are the players every seeded match is built from.
var dummyPlayerIDs = []int64{9001, 9002, 9003, 9004}

func seededTeams(rng *rand.Rand) []lounge.Team {
	teams := make([]lounge.Team, 0, len(dummyPlayerIDs))
	for i, playerID := range dummyPlayerIDs {
		prevMMR := 4000 + rng.Intn(4000)
		delta := rng.Intn(161) - 80
		teams = append(teams, lounge.Team{
			Rank: i + 1,
			Players: []lounge.PlayerResult{{
				PlayerID: playerID,
				Score:    120 - i*15 + rng.Intn(10),
				PrevMMR:  prevMMR,
				NewMMR:   prevMMR + delta,
				Delta:    delta,
			}},
		})
	}
	return teams
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	const batchSize = 100 // Insert 100 matches at a time
	const numMatches = 10000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*8) // 8 columns per match

	for i := 0; i < numMatches; i++ {
		matchID := int64(1_000_000 + i)
		matchTime := time.Now().Add(-time.Duration(rng.Intn(365*24)) * time.Hour)
		teamsBlob, _ := msgpack.Marshal(seededTeams(rng))

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			matchID,
			15,
			string(lounge.GameMK8DX),
			string(lounge.TierSolo),
			lounge.FormatFFA,
			len(dummyPlayerIDs),
			matchTime.Unix(),
			teamsBlob,
		)

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			stmt := fmt.Sprintf(`
				INSERT OR IGNORE INTO matches (id, season, game, tier, format, num_players, created_on, teams_blob)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*8)
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	// Index every seeded match for the dummy players so sync passes treat
	// them as already known.
	for _, playerID := range dummyPlayerIDs {
		_, err := tx.Exec(`
			INSERT OR IGNORE INTO player_matches (player_id, match_id)
			SELECT ?, id FROM matches WHERE id >= ? AND id < ?;`,
			playerID, int64(1_000_000), int64(1_000_000+numMatches))
		if err != nil {
			tx.Rollback()
			log.Fatalf("Failed to index dummy player %d: %s", playerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy matches.", "duration", duration)
}
