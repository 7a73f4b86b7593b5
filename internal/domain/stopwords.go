package domain

// stopWords is the closed-class English function words excluded from link
// extraction. The same set is used by on-demand extraction and the offline
// link recompute job; the two must never diverge, or the persisted edge set
// stops matching what the API reports.
var stopWords = map[string]struct{}{
	"a": {}, "also": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {},
	"by": {}, "from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "must": {}, "can": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "it": {}, "its": {}, "which": {},
	"who": {}, "what": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"not": {}, "no": {}, "nor": {}, "so": {}, "than": {}, "too": {}, "very": {},
}

// IsStopWord reports whether the lowercase word is in the stop-word set.
func IsStopWord(wordLower string) bool {
	_, ok := stopWords[wordLower]
	return ok
}
