package dictionary

import (
	"context"
	"fmt"

	"github.com/xnillio/lexigraph/internal/domain"
)

// WordDetail is the full lookup payload for a single word.
type WordDetail struct {
	Word          string
	Pronunciation *string
	Definition    string
	LinkedWords   []string
	InDegree      int
	OutDegree     int
}

// GetWord looks up a word and assembles its detail payload: the stored entry,
// the reference targets extracted live from its definition, and its degree
// numbers in the link graph. Returns domain.ErrNotFound for an unknown word
// and domain.ErrValidation for input that normalizes to nothing.
func (s *Service) GetWord(ctx context.Context, raw string) (*WordDetail, error) {
	wordLower := domain.NormalizeWord(raw)
	if wordLower == "" {
		return nil, fmt.Errorf("empty word: %w", domain.ErrValidation)
	}

	word, err := s.lexicon.GetByWord(ctx, wordLower)
	if err != nil {
		return nil, fmt.Errorf("get word %q: %w", wordLower, err)
	}

	linked, err := s.linker.Extract(ctx, word.Word, word.Definition)
	if err != nil {
		return nil, fmt.Errorf("extract links for %q: %w", wordLower, err)
	}

	in, out, _, err := s.graph.GetDegree(ctx, wordLower)
	if err != nil {
		return nil, fmt.Errorf("degree for %q: %w", wordLower, err)
	}

	return &WordDetail{
		Word:          word.Word,
		Pronunciation: word.Pronunciation,
		Definition:    word.Definition,
		LinkedWords:   linked,
		InDegree:      in,
		OutDegree:     out,
	}, nil
}
