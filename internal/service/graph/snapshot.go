package graph

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// snapshot is the in-memory materialization of the definition graph.
// It is read-only after construction.
type snapshot struct {
	nodes map[string]struct{}
	out   map[string][]string // sorted, deduplicated targets per source
	inDeg map[string]int
	edges int
}

// ensureSnapshot returns the cached snapshot, building it on the first call.
// A failed build is not sticky: the next query retries.
func (s *Service) ensureSnapshot(ctx context.Context) (*snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap != nil {
		return s.snap, nil
	}

	start := time.Now()

	words, err := s.lexicon.AllWordSet(ctx)
	if err != nil {
		return nil, fmt.Errorf("load word set: %w", err)
	}

	links, err := s.links.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}

	snap := &snapshot{
		nodes: words,
		out:   make(map[string][]string),
		inDeg: make(map[string]int),
	}

	seen := make(map[[2]string]struct{}, len(links))
	for _, l := range links {
		pair := [2]string{l.SourceLower, l.TargetLower}
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}

		// Endpoints outside the lexicon snapshot become nodes too; the edge
		// list and the word set are loaded in two reads and may straddle a
		// concurrent ingest.
		snap.nodes[l.SourceLower] = struct{}{}
		snap.nodes[l.TargetLower] = struct{}{}

		snap.out[l.SourceLower] = append(snap.out[l.SourceLower], l.TargetLower)
		snap.inDeg[l.TargetLower]++
		snap.edges++
	}

	for _, targets := range snap.out {
		sort.Strings(targets)
	}

	s.log.Info("graph snapshot built",
		slog.Int("nodes", len(snap.nodes)),
		slog.Int("edges", snap.edges),
		slog.Duration("duration", time.Since(start)),
	)

	s.snap = snap
	return snap, nil
}

// sortedNodes returns all node names in lexicographic order.
func (g *snapshot) sortedNodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}
