package linker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xnillio/lexigraph/internal/domain"
)

// progressEvery controls how often the recompute job logs progress.
const progressEvery = 10000

type definitionSource interface {
	AllEntries(ctx context.Context) ([]domain.DefinitionEntry, error)
}

type linkStore interface {
	ReplaceAll(ctx context.Context, links []domain.Link) (int, error)
}

// RecomputeResult summarizes an offline link recompute run.
type RecomputeResult struct {
	Words    int
	Edges    int
	Duration time.Duration
}

// RecomputeAll replays the link extractor over every lexicon entry and
// atomically replaces the persisted edge set with the result. The job is
// restartable: the replace is transactional and edge insertion is
// idempotent, so re-running it in full is always safe.
//
// The extraction rules here are byte-for-byte the ones used by on-demand
// extraction (same stop words, same phrase index), which keeps the stored
// edges consistent with what the API reports live.
func (s *Service) RecomputeAll(ctx context.Context, source definitionSource, store linkStore) (*RecomputeResult, error) {
	start := time.Now()

	phrases, wordSet, err := s.caches(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := source.AllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	var links []domain.Link
	for i, e := range entries {
		for _, target := range extract(e.WordLower, e.Definition, phrases, wordSet) {
			links = append(links, domain.Link{SourceLower: e.WordLower, TargetLower: target})
		}

		if (i+1)%progressEvery == 0 {
			s.log.Info("recompute progress",
				slog.Int("processed", i+1),
				slog.Int("total", len(entries)),
				slog.Int("edges", len(links)),
			)
		}
	}

	inserted, err := store.ReplaceAll(ctx, links)
	if err != nil {
		return nil, fmt.Errorf("replace links: %w", err)
	}

	result := &RecomputeResult{
		Words:    len(entries),
		Edges:    inserted,
		Duration: time.Since(start),
	}

	s.log.Info("link recompute finished",
		slog.Int("words", result.Words),
		slog.Int("edges", result.Edges),
		slog.Duration("duration", result.Duration),
	)

	return result, nil
}
