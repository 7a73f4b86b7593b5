// Package linker implements link extraction: deriving, for a definition
// text, the set of lexicon entries it references, with compound-phrase
// precedence over the individual words inside a matched span.
package linker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type lexiconRepo interface {
	AllWordSet(ctx context.Context) (map[string]struct{}, error)
	AllCompoundWords(ctx context.Context) ([]string, error)
}

// Service extracts definition links against a lexicon snapshot.
//
// The phrase index and the all-words set are built on first use and then
// treated as immutable for the rest of the process lifetime. Both are pure
// derivations of durable storage, so a concurrent first build is harmless;
// the mutex makes it a single build followed by publication.
type Service struct {
	log     *slog.Logger
	lexicon lexiconRepo

	mu      sync.Mutex
	phrases *PhraseIndex
	wordSet map[string]struct{}
}

// New creates a linker Service. Caches are built lazily on first extraction.
func New(log *slog.Logger, lexicon lexiconRepo) *Service {
	return &Service{log: log, lexicon: lexicon}
}

// caches returns the phrase index and all-words set, building them on the
// first call. A failed build is not sticky: the next call retries.
func (s *Service) caches(ctx context.Context) (*PhraseIndex, map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phrases != nil {
		return s.phrases, s.wordSet, nil
	}

	words, err := s.lexicon.AllWordSet(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load word set: %w", err)
	}

	compounds, err := s.lexicon.AllCompoundWords(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load compound words: %w", err)
	}

	idx := NewPhraseIndex(compounds)

	s.log.Info("linker caches built",
		slog.Int("words", len(words)),
		slog.Int("compounds", idx.Len()),
	)

	s.wordSet = words
	s.phrases = idx
	return s.phrases, s.wordSet, nil
}
