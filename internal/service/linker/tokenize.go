package linker

// token is a maximal run of ASCII letters in a definition text, with its
// character offsets in the original string ([start, end)).
type token struct {
	text  string
	start int
	end   int
}

// tokenize splits the definition into lowercase ASCII-letter tokens with
// word-boundary semantics. Digits, punctuation, and non-ASCII letters act as
// separators; non-ASCII letters are therefore invisible to extraction. That
// is a known fidelity limit of the extractor, not something callers should
// work around.
func tokenize(text string) []token {
	var tokens []token

	start := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if isLetter {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, token{text: lower(text[start:i]), start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{text: lower(text[start:]), start: start, end: len(text)})
	}

	return tokens
}

// lower is an ASCII-only lowercase; tokens contain ASCII letters by
// construction, so full Unicode case folding is unnecessary.
func lower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
