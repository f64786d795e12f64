package http

import (
	"net/http"

	"github.com/lounge-tools/lounge-tracker/internal/config"
	"github.com/lounge-tools/lounge-tracker/internal/matchstore"
	"github.com/lounge-tools/lounge-tracker/internal/metrics"
	"github.com/lounge-tools/lounge-tracker/internal/syncer"
)

func NewServer(store matchstore.MatchStore, matchSyncer syncer.MatchSyncer, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Syncer:         matchSyncer,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/sync", Chain(s.SyncPlayerHandler(), paramsMiddleware))
	s.Router.Handle("/stats/player", Chain(s.PlayerStatsHandler(), paramsMiddleware))
	s.Router.Handle("/stats/records", Chain(s.PlayerRecordsHandler(), paramsMiddleware))
	s.Router.Handle("/stats/h2h", Chain(s.HeadToHeadHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
