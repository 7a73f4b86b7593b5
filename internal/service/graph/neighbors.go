package graph

import (
	"context"
	"fmt"
	"sort"

	"github.com/xnillio/lexigraph/internal/domain"
)

// Neighborhood is the result of a bounded-depth neighbor expansion.
type Neighborhood struct {
	Word    string
	ByDepth map[int][]string
}

// GetNeighbors expands the word's neighborhood breadth-first up to the given
// depth. Returns domain.ErrNotFound for a word that is not a graph node and
// domain.ErrValidation for a depth outside [1, cfg.MaxDepth].
//
// A word is visited at most once globally: if it is reachable at several
// depths it is recorded only at the depth of first visitation and never
// re-expanded later. The resulting depth map can therefore look asymmetric;
// that is the intended traversal semantics, not a defect to smooth over.
func (s *Service) GetNeighbors(ctx context.Context, word string, depth int) (*Neighborhood, error) {
	if depth < 1 || depth > s.cfg.MaxDepth {
		return nil, fmt.Errorf("depth %d outside [1, %d]: %w", depth, s.cfg.MaxDepth, domain.ErrValidation)
	}

	wordLower := domain.NormalizeWord(word)

	snap, err := s.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := snap.nodes[wordLower]; !ok {
		return nil, fmt.Errorf("word %q: %w", wordLower, domain.ErrNotFound)
	}

	result := &Neighborhood{
		Word:    wordLower,
		ByDepth: make(map[int][]string),
	}

	visited := map[string]struct{}{wordLower: {}}
	frontier := []string{wordLower}

	for d := 1; d <= depth; d++ {
		var level []string
		for _, w := range frontier {
			for _, target := range snap.out[w] {
				if _, seen := visited[target]; seen {
					continue
				}
				visited[target] = struct{}{}
				level = append(level, target)
			}
		}

		if len(level) == 0 {
			// Depth 1 is always reported, even when empty; deeper levels
			// with nothing new are omitted.
			if d == 1 {
				result.ByDepth[1] = []string{}
			}
			break
		}

		sort.Strings(level)
		result.ByDepth[d] = level
		frontier = level
	}

	return result, nil
}
