package lounge

import (
	"context"
	"sync"
)

// DetailsCall records the arguments of one GetPlayerDetails invocation.
type DetailsCall struct {
	PlayerID int64
	Season   int
	Game     GameMode
}

// MockClient is a mock implementation of the LoungeClient interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetPlayerDetailsFunc func(playerID int64, season int, game GameMode) (*PlayerDetails, error)
	GetMatchFunc         func(matchID int64) (*Match, error)

	// Call records
	GetPlayerDetailsCalls []DetailsCall
	GetMatchCalls         []int64
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerDetailsCalls = nil
	m.GetMatchCalls = nil
}

func (m *MockClient) GetPlayerDetails(ctx context.Context, playerID int64, season int, game GameMode) (*PlayerDetails, error) {
	m.mu.Lock()
	m.GetPlayerDetailsCalls = append(m.GetPlayerDetailsCalls, DetailsCall{PlayerID: playerID, Season: season, Game: game})
	fn := m.GetPlayerDetailsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(playerID, season, game)
	}
	return nil, ErrNotFound
}

func (m *MockClient) GetMatch(ctx context.Context, matchID int64) (*Match, error) {
	m.mu.Lock()
	m.GetMatchCalls = append(m.GetMatchCalls, matchID)
	fn := m.GetMatchFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(matchID)
	}
	return nil, ErrNotFound
}
