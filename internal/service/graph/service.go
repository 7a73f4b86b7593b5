// Package graph implements the definition-graph engine: a directed graph
// over all lexicon headwords whose edges come from the persisted link store,
// answering degree statistics, neighborhood expansion, component sizing, and
// cycle enumeration.
package graph

import (
	"context"
	"log/slog"
	"sync"

	"github.com/xnillio/lexigraph/internal/config"
	"github.com/xnillio/lexigraph/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type lexiconRepo interface {
	AllWordSet(ctx context.Context) (map[string]struct{}, error)
	Count(ctx context.Context) (int, error)
	AvgDefinitionLength(ctx context.Context) (float64, error)
}

type linkStore interface {
	All(ctx context.Context) ([]domain.Link, error)
}

// Service answers structural queries over the definition graph.
//
// The materialized graph is a single cached snapshot: unbuilt until the
// first query that needs it, then immutable for the rest of the process
// lifetime. Queries never observe a half-built graph.
type Service struct {
	log     *slog.Logger
	cfg     config.GraphConfig
	lexicon lexiconRepo
	links   linkStore

	mu   sync.Mutex
	snap *snapshot
}

// New creates a graph Service. The snapshot is built lazily on first use.
func New(log *slog.Logger, cfg config.GraphConfig, lexicon lexiconRepo, links linkStore) *Service {
	return &Service{log: log, cfg: cfg, lexicon: lexicon, links: links}
}
