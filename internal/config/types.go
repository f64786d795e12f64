package config

import (
	"sort"

	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// Config holds all configuration for the application.
type Config struct {
	DBName  string
	Port    string
	Lounge  LoungeConfig
	Turso   TursoConfig
	Seasons SeasonConfig
}

type LoungeConfig struct {
	BaseURL string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// SeasonConfig maps each supported season to the game modes it ran. The
// sync engine enumerates exactly this table, so adding a season or a mode
// is a data change, not a code change.
type SeasonConfig map[int][]lounge.GameMode

// Seasons returns the configured seasons in ascending order.
func (s SeasonConfig) Seasons() []int {
	seasons := make([]int, 0, len(s))
	for season := range s {
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)
	return seasons
}

// DefaultSeasons builds the standard league history: seasons 0 through
// current, where legacy seasons ran only the original game and seasons
// from twoGameSince onward run both.
func DefaultSeasons(current, twoGameSince int) SeasonConfig {
	seasons := make(SeasonConfig, current+1)
	for season := 0; season <= current; season++ {
		if season >= twoGameSince {
			seasons[season] = []lounge.GameMode{lounge.GameMK8DX, lounge.GameMKWorld}
		} else {
			seasons[season] = []lounge.GameMode{lounge.GameMK8DX}
		}
	}
	return seasons
}
