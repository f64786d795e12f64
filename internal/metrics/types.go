package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	SyncRuns           prometheus.Counter
	MatchesFetched     prometheus.Counter
	FetchErrors        prometheus.Counter
	CacheHits          prometheus.Counter
	SyncDuration       prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
