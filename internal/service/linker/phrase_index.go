package linker

import (
	"strings"

	"github.com/xnillio/lexigraph/internal/domain"
)

// PhraseIndex answers "does this candidate phrase correspond to an existing
// compound headword, in any accepted spelling variant?" in O(1) amortized.
// It is a cache derived from the lexicon, never a source of truth: a miss
// says nothing about single-word entries.
type PhraseIndex struct {
	// forms maps the space-joined and hyphen-joined normalized spellings of
	// every compound to its canonical headword.
	forms map[string]string

	// compounds backs the token-sequence fallback for separator styles the
	// two primary forms don't capture (e.g. "mother-in law").
	compounds []compoundEntry
}

type compoundEntry struct {
	tokens    []string
	canonical string
}

// NewPhraseIndex builds the index from the lexicon's compound headwords.
// Entries outside the 2..5 token range are ignored.
func NewPhraseIndex(headwords []string) *PhraseIndex {
	idx := &PhraseIndex{forms: make(map[string]string, len(headwords)*2)}

	for _, hw := range headwords {
		tokens := domain.SplitCompound(hw)
		if len(tokens) < domain.MinCompoundTokens || len(tokens) > domain.MaxCompoundTokens {
			continue
		}

		spaced := strings.Join(tokens, " ")
		hyphened := strings.Join(tokens, "-")

		// First registration wins so repeated builds stay deterministic.
		if _, ok := idx.forms[spaced]; !ok {
			idx.forms[spaced] = hw
		}
		if hyphened != spaced {
			if _, ok := idx.forms[hyphened]; !ok {
				idx.forms[hyphened] = hw
			}
		}

		idx.compounds = append(idx.compounds, compoundEntry{tokens: tokens, canonical: hw})
	}

	return idx
}

// Len returns the number of indexed compound headwords.
func (x *PhraseIndex) Len() int {
	return len(x.compounds)
}

// Resolve maps a candidate phrase to the canonical compound headword it
// spells, or reports a miss. The phrase is normalized (trim, lowercase,
// collapse whitespace) before lookup; the direct lookups cover space-joined
// and hyphen-joined spellings, and a linear token-sequence scan over all
// cached compounds handles mixed separators. The fallback is O(number of
// compounds), the accepted cost of the flexible-match path.
func (x *PhraseIndex) Resolve(phrase string) (string, bool) {
	n := domain.NormalizeWord(phrase)
	if n == "" {
		return "", false
	}

	if canonical, ok := x.forms[n]; ok {
		return canonical, true
	}
	if canonical, ok := x.forms[strings.ReplaceAll(n, " ", "-")]; ok {
		return canonical, true
	}

	tokens := domain.SplitCompound(n)
	if len(tokens) < domain.MinCompoundTokens {
		return "", false
	}
	for _, c := range x.compounds {
		if tokensEqual(tokens, c.tokens) {
			return c.canonical, true
		}
	}

	return "", false
}

func tokensEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
