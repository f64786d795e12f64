package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		SyncRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lounge_sync_runs_total",
			Help: "The total number of player sync passes started.",
		}),
		MatchesFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lounge_matches_fetched_total",
			Help: "The total number of matches fetched from the remote API.",
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lounge_fetch_errors_total",
			Help: "The total number of failed remote fetches (matches and detail summaries).",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lounge_cache_hits_total",
			Help: "The total number of matches served from the local cache during sync passes.",
		}),
		SyncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lounge_sync_duration_seconds",
			Help:    "The duration of individual player sync passes.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lounge_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.SyncRuns,
		s.MatchesFetched,
		s.FetchErrors,
		s.CacheHits,
		s.SyncDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSyncRuns() {
	s.SyncRuns.Inc()
}

func (s *Service) IncMatchesFetched(count int) {
	s.MatchesFetched.Add(float64(count))
}

func (s *Service) IncFetchErrors() {
	s.FetchErrors.Inc()
}

func (s *Service) IncCacheHits(count int) {
	s.CacheHits.Add(float64(count))
}

func (s *Service) ObserveSyncDuration(seconds float64) {
	s.SyncDuration.Observe(seconds)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
