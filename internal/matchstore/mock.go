package matchstore

import (
	"sort"
	"sync"

	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// Mock is an in-memory implementation of the MatchStore interface for
// testing. It records writes and supports per-method error injection.
// It is safe for concurrent use.
type Mock struct {
	mu      sync.Mutex
	matches map[int64]*lounge.Match
	index   map[int64]map[int64]struct{}

	// Error injection
	GetMatchIndexErr error
	GetMatchErr      error
	PutMatchErr      error
	PutMatchIndexErr error

	// Call records
	PutMatchCalls      []int64
	PutMatchIndexCalls int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		matches: make(map[int64]*lounge.Match),
		index:   make(map[int64]map[int64]struct{}),
	}
}

var _ MatchStore = (*Mock)(nil)

func (m *Mock) GetMatchIndex(playerID int64) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchIndexErr != nil {
		return nil, m.GetMatchIndexErr
	}
	var ids []int64
	for id := range m.index[playerID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *Mock) GetMatch(matchID int64) (*lounge.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchErr != nil {
		return nil, m.GetMatchErr
	}
	return m.matches[matchID], nil
}

func (m *Mock) PutMatch(match *lounge.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutMatchCalls = append(m.PutMatchCalls, match.ID)
	if m.PutMatchErr != nil {
		return m.PutMatchErr
	}
	m.matches[match.ID] = match
	return nil
}

func (m *Mock) PutMatchIndex(playerID int64, matchIDs []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutMatchIndexCalls++
	if m.PutMatchIndexErr != nil {
		return m.PutMatchIndexErr
	}
	if m.index[playerID] == nil {
		m.index[playerID] = make(map[int64]struct{})
	}
	for _, id := range matchIDs {
		m.index[playerID][id] = struct{}{}
	}
	return nil
}

func (m *Mock) GetAllMatches() ([]*lounge.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := make(MatchSet, len(m.matches))
	for id, match := range m.matches {
		set[id] = match
	}
	return set.Sorted(), nil
}

func (m *Mock) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches = make(map[int64]*lounge.Match)
	m.index = make(map[int64]map[int64]struct{})
	return nil
}
