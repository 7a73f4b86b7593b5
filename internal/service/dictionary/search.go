package dictionary

import (
	"context"
	"fmt"

	"github.com/xnillio/lexigraph/internal/domain"
)

const (
	searchLimitDefault = 10
	searchLimitMax     = 50
)

// Search returns up to limit words starting with the given prefix, ordered
// alphabetically. A non-positive limit defaults to 10; limits above 50 are
// clamped down. Returns domain.ErrValidation for an empty prefix.
func (s *Service) Search(ctx context.Context, prefix string, limit int) ([]string, error) {
	prefixLower := domain.NormalizeWord(prefix)
	if prefixLower == "" {
		return nil, fmt.Errorf("empty prefix: %w", domain.ErrValidation)
	}

	if limit <= 0 {
		limit = searchLimitDefault
	}
	if limit > searchLimitMax {
		limit = searchLimitMax
	}

	words, err := s.lexicon.SearchPrefix(ctx, prefixLower, limit)
	if err != nil {
		return nil, fmt.Errorf("search prefix %q: %w", prefixLower, err)
	}
	return words, nil
}
