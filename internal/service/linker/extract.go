package linker

import (
	"context"
	"sort"
	"strings"

	"github.com/xnillio/lexigraph/internal/domain"
)

// minTargetLength excludes very short tokens from linking: a target must be
// longer than 2 characters.
const minTargetLength = 2

// Extract returns the distinct lexicon entries referenced by the definition
// of sourceWord, in lexicographic order. Guarantees: no self-reference, no
// stop words, minimum target length, and compound precedence: a matched
// multi-word headword suppresses the individual words inside its span.
//
// The scan is purely positional (left to right, longest phrase first at each
// position), so for a fixed definition and lexicon snapshot the output is
// fully deterministic.
func (s *Service) Extract(ctx context.Context, sourceWord, definition string) ([]string, error) {
	phrases, wordSet, err := s.caches(ctx)
	if err != nil {
		return nil, err
	}

	return extract(sourceWord, definition, phrases, wordSet), nil
}

// extract is the cache-independent core, shared with the offline recompute
// job so both paths apply identical rules.
func extract(sourceWord, definition string, phrases *PhraseIndex, wordSet map[string]struct{}) []string {
	sourceLower := domain.NormalizeWord(sourceWord)
	tokens := tokenize(definition)

	covered := make([]bool, len(definition))
	targets := make(map[string]struct{})

	// Greedy compound scan: longest phrase first at each start position. A
	// span overlapping an already-covered offset is skipped; once a phrase
	// matches, shorter candidates at the same start are not retried.
	for i := range tokens {
		for length := domain.MaxCompoundTokens; length >= domain.MinCompoundTokens; length-- {
			if i+length > len(tokens) {
				continue
			}

			start, end := tokens[i].start, tokens[i+length-1].end
			if anyCovered(covered, start, end) {
				continue
			}

			parts := make([]string, length)
			for j := 0; j < length; j++ {
				parts[j] = tokens[i+j].text
			}

			canonical, ok := phrases.Resolve(strings.Join(parts, " "))
			if !ok {
				continue
			}

			// A compound occurrence always claims its span, even when it is
			// the source headword itself: its inner words must not leak out
			// as individual links.
			if canonical != sourceLower {
				targets[canonical] = struct{}{}
			}
			markCovered(covered, start, end)
			break
		}
	}

	// Individual-word scan over tokens not claimed by a compound.
	for _, tok := range tokens {
		if anyCovered(covered, tok.start, tok.end) {
			continue
		}
		w := tok.text
		if len(w) <= minTargetLength {
			continue
		}
		if domain.IsStopWord(w) {
			continue
		}
		if w == sourceLower {
			continue
		}
		if _, ok := wordSet[w]; !ok {
			continue
		}
		targets[w] = struct{}{}
	}

	out := make([]string, 0, len(targets))
	for w := range targets {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

func anyCovered(covered []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

func markCovered(covered []bool, start, end int) {
	for i := start; i < end; i++ {
		covered[i] = true
	}
}
