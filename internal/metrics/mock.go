package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu             sync.Mutex
	syncRuns       int
	matchesFetched int
	fetchErrors    int
	cacheHits      int
	syncDurations  []float64
	startupTime    float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		syncDurations: make([]float64, 0),
	}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) IncSyncRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncRuns++
}

func (m *Mock) IncMatchesFetched(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesFetched += count
}

func (m *Mock) IncFetchErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchErrors++
}

func (m *Mock) IncCacheHits(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits += count
}

func (m *Mock) ObserveSyncDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncDurations = append(m.syncDurations, seconds)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// SyncRuns returns the number of times IncSyncRuns was called.
func (m *Mock) SyncRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.syncRuns
}

// MatchesFetched returns the accumulated fetched-match count.
func (m *Mock) MatchesFetched() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesFetched
}

// FetchErrors returns the number of times IncFetchErrors was called.
func (m *Mock) FetchErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchErrors
}

// CacheHits returns the accumulated cache-hit count.
func (m *Mock) CacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits
}
