package http

import (
	"net/http"

	"github.com/lounge-tools/lounge-tracker/internal/config"
	"github.com/lounge-tools/lounge-tracker/internal/matchstore"
	"github.com/lounge-tools/lounge-tracker/internal/metrics"
	"github.com/lounge-tools/lounge-tracker/internal/syncer"
)

type Server struct {
	Store          matchstore.MatchStore
	Syncer         syncer.MatchSyncer
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
