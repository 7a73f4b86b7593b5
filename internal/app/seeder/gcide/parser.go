// Package gcide parses the GNU GCIDE dictionary files (CIDE.A .. CIDE.Z).
//
// GCIDE uses an HTML-like markup: entries open with <p><ent>word</ent> and run
// until the next <ent> paragraph, carrying <hw> headwords, <pr> pronunciations,
// <sn> sense numbers and one or more <def> blocks.
package gcide

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Entry is one parsed dictionary entry.
type Entry struct {
	Headword      string
	Pronunciation string
	Definition    string
}

// Stats summarizes a parse run over one file.
type Stats struct {
	RawEntries int
	Parsed     int
	Rejected   int
}

var (
	entRe = regexp.MustCompile(`<p><ent>([^<]+)</ent>`)
	hwRe  = regexp.MustCompile(`<hw>[^<]*</hw>`)
	prRe  = regexp.MustCompile(`<pr>([^<]+)</pr>`)
	posRe = regexp.MustCompile(`<pos>[^<]*</pos>`)
	snRe  = regexp.MustCompile(`<sn>[^<]*</sn>`)
	defRe = regexp.MustCompile(`(?s)<def>(.*?)</def>`)

	// A sense number directly preceding a <def> block.
	senseBeforeDefRe = regexp.MustCompile(`<sn>([^<]+)</sn>\s*$`)

	etyRe       = regexp.MustCompile(`(?is)<ety>.*?</ety>`)
	sourceTagRe = regexp.MustCompile(`(?is)<source[^>]*>.*?</source>`)
	sourceRefRe = regexp.MustCompile(`\[source[^\]]+\]`)

	closeTagRe = regexp.MustCompile(`</[^>]+>`)
	openTagRe  = regexp.MustCompile(`<[^>]+>`)
	blankRe    = regexp.MustCompile(`[ \t]+`)
	newlineRe  = regexp.MustCompile(`\n+`)

	outerParensRe = regexp.MustCompile(`^\(+|\)+$`)
)

// senseSeparator joins multiple <def> senses of one entry.
const senseSeparator = "\n\n---\n\n"

// ParseFile parses a single CIDE.* file.
func ParseFile(path string) ([]Entry, Stats, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read %s: %w", path, err)
	}
	entries, stats := Parse(string(content))
	return entries, stats, nil
}

// Parse extracts entries from raw GCIDE markup. Invalid entries are counted
// in Stats.Rejected and dropped.
func Parse(content string) ([]Entry, Stats) {
	var stats Stats

	matches := entRe.FindAllStringSubmatchIndex(content, -1)
	stats.RawEntries = len(matches)

	entries := make([]Entry, 0, len(matches))
	for i, m := range matches {
		headword := strings.TrimSpace(content[m[2]:m[3]])

		// Entry body: from the end of the <ent> tag to the next entry.
		bodyStart := m[1]
		bodyEnd := len(content)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		body := content[bodyStart:bodyEnd]

		entry, ok := parseEntry(headword, body)
		if !ok {
			stats.Rejected++
			continue
		}
		entries = append(entries, entry)
	}

	stats.Parsed = len(entries)
	return entries, stats
}

func parseEntry(headword, body string) (Entry, bool) {
	if !ValidHeadword(headword) {
		return Entry{}, false
	}

	definition := extractDefinition(body)
	if !ValidDefinition(definition) {
		return Entry{}, false
	}

	return Entry{
		Headword:      headword,
		Pronunciation: extractPronunciation(body),
		Definition:    definition,
	}, true
}

// extractDefinition pulls the <def> blocks out of an entry body, strips
// markup, and joins multiple senses with their sense numbers.
func extractDefinition(body string) string {
	var senses []string

	for _, m := range defRe.FindAllStringSubmatchIndex(body, -1) {
		text := cleanDefText(body[m[2]:m[3]])
		if text == "" {
			continue
		}

		// Look back a short window for the sense number of this block.
		windowStart := max(0, m[0]-200)
		if sn := senseBeforeDefRe.FindStringSubmatch(body[windowStart:m[0]]); sn != nil {
			text = strings.TrimSpace(sn[1]) + " " + text
		}
		senses = append(senses, text)
	}

	if len(senses) > 0 {
		return strings.Join(senses, senseSeparator)
	}

	// No <def> blocks: fall back to whatever text remains after stripping
	// metadata tags. Entries with nothing substantial left are dropped.
	text := cleanDefText(body)
	if len(text) < 10 || !hasWordRun(text) {
		return ""
	}
	return text
}

// cleanDefText strips metadata tags and markup from definition text and
// collapses whitespace.
func cleanDefText(s string) string {
	s = hwRe.ReplaceAllString(s, "")
	s = prRe.ReplaceAllString(s, "")
	s = posRe.ReplaceAllString(s, "")
	s = etyRe.ReplaceAllString(s, "")
	s = snRe.ReplaceAllString(s, "")
	s = sourceRefRe.ReplaceAllString(s, "")
	s = sourceTagRe.ReplaceAllString(s, "")

	// Closing tags become spaces so adjacent words stay separated.
	s = closeTagRe.ReplaceAllString(s, " ")
	s = openTagRe.ReplaceAllString(s, " ")
	s = blankRe.ReplaceAllString(s, " ")
	s = newlineRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// extractPronunciation returns the first <pr> value with outer parentheses
// trimmed, or "" when the entry has none.
func extractPronunciation(body string) string {
	m := prRe.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(outerParensRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
}

// hasWordRun reports whether s contains a run of at least three letters.
func hasWordRun(s string) bool {
	run := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			run++
			if run >= 3 {
				return true
			}
			continue
		}
		run = 0
	}
	return false
}
