package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncSyncRuns()
	IncMatchesFetched(count int)
	IncFetchErrors()
	IncCacheHits(count int)
	ObserveSyncDuration(seconds float64)
	SetStartupTime(duration float64)
}
