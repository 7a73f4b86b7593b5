package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Word is a single dictionary headword with its definition.
// WordLower is the normalized identity key: two spellings differing only in
// case resolve to the same WordLower, while Word keeps the original casing.
type Word struct {
	ID               uuid.UUID
	Word             string
	WordLower        string
	Pronunciation    *string
	Definition       string
	DefinitionLength int
	CreatedAt        time.Time
}

// Link is a directed edge in the definition graph: the definition of
// SourceLower mentions the headword TargetLower.
type Link struct {
	SourceLower string
	TargetLower string
}

// DefinitionEntry is the minimal headword+definition projection used when
// replaying the whole lexicon through the link extractor.
type DefinitionEntry struct {
	WordLower  string
	Definition string
}

// compound headwords contain 2..5 tokens joined by spaces or hyphens.
const (
	MinCompoundTokens = 2
	MaxCompoundTokens = 5
)

var separatorRe = regexp.MustCompile(`[-\s]+`)

// SplitCompound splits a normalized headword into its tokens, treating any
// run of hyphens and whitespace as a single separator. Empty tokens produced
// by leading or trailing separators are dropped.
func SplitCompound(wordLower string) []string {
	parts := separatorRe.Split(wordLower, -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// IsCompound reports whether the normalized headword is a compound entry:
// 2 to 5 tokens joined by spaces or hyphens.
func IsCompound(wordLower string) bool {
	n := len(SplitCompound(wordLower))
	return n >= MinCompoundTokens && n <= MaxCompoundTokens
}
