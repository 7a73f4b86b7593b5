package dictionary

import (
	"context"
	"log/slog"

	"github.com/xnillio/lexigraph/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type lexiconRepo interface {
	GetByWord(ctx context.Context, wordLower string) (*domain.Word, error)
	SearchPrefix(ctx context.Context, prefix string, limit int) ([]string, error)
}

type linkExtractor interface {
	Extract(ctx context.Context, sourceWord, definition string) ([]string, error)
}

type graphEngine interface {
	GetDegree(ctx context.Context, wordLower string) (in, out int, found bool, err error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements dictionary lookups: word detail pages and prefix search.
type Service struct {
	log     *slog.Logger
	lexicon lexiconRepo
	linker  linkExtractor
	graph   graphEngine
}

// NewService creates a new Dictionary service.
func NewService(logger *slog.Logger, lexicon lexiconRepo, linker linkExtractor, graph graphEngine) *Service {
	return &Service{
		log:     logger.With("service", "dictionary"),
		lexicon: lexicon,
		linker:  linker,
		graph:   graph,
	}
}
