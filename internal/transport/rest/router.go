package rest

import (
	"log/slog"
	"net/http"

	"github.com/xnillio/lexigraph/internal/config"
	"github.com/xnillio/lexigraph/internal/transport/middleware"
)

// NewRouter assembles the route table and wraps it in the middleware chain
// (outermost first): Recovery, RequestID, Logger, CORS.
func NewRouter(
	logger *slog.Logger,
	corsCfg config.CORSConfig,
	words *WordHandler,
	stats *StatsHandler,
	health *HealthHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/words/search/{prefix}", words.Search)
	mux.HandleFunc("GET /api/words/{word}", words.Get)
	mux.HandleFunc("GET /api/words/{word}/neighbors", words.Neighbors)

	mux.HandleFunc("GET /api/stats/overview", stats.Overview)
	mux.HandleFunc("GET /api/stats/graph", stats.Graph)
	mux.HandleFunc("GET /api/stats/top-words", stats.TopWords)
	mux.HandleFunc("GET /api/stats/cycles", stats.Cycles)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(corsCfg),
	)
	return chain(mux)
}
