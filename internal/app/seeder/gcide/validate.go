package gcide

import (
	"regexp"
	"strings"
)

// Real dictionary headwords are rarely longer than this; longer strings are
// almost always stray prose or table fragments from the source files.
const maxHeadwordLen = 50

const minDefinitionLen = 6

var leadingJunkRe = regexp.MustCompile(`^[\d()]+`)

// ValidHeadword reports whether a raw <ent> value looks like a dictionary
// headword rather than leaked markup, table data, or documentation prose.
func ValidHeadword(word string) bool {
	word = strings.TrimSpace(word)
	if word == "" || len(word) > maxHeadwordLen {
		return false
	}
	if leadingJunkRe.MatchString(word) {
		return false
	}
	if letterRatio(word) < 0.3 {
		return false
	}
	// Wide gaps are a table-row giveaway.
	if strings.Contains(word, "   ") {
		return false
	}
	return true
}

// ValidDefinition rejects empty, placeholder, and table-like definitions.
func ValidDefinition(definition string) bool {
	if len(definition) < minDefinitionLen {
		return false
	}
	ratio := letterRatio(definition)
	if ratio < 0.3 {
		return false
	}
	if strings.Contains(definition, "    ") && ratio < 0.4 {
		return false
	}
	return true
}

func letterRatio(s string) float64 {
	if s == "" {
		return 0
	}
	letters := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			letters++
		}
	}
	return float64(letters) / float64(len(s))
}
