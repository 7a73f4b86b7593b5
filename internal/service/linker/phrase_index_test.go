package linker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhraseIndex_Resolve(t *testing.T) {
	idx := NewPhraseIndex([]string{
		"mother-in-law",
		"ice cream",
		"jack of all trades",
		"single",                       // 1 token: not indexed
		"one two three four five six",  // 6 tokens: not indexed
	})

	assert.Equal(t, 3, idx.Len())

	tests := []struct {
		name   string
		phrase string
		want   string
		hit    bool
	}{
		{"space form of hyphened entry", "mother in law", "mother-in-law", true},
		{"hyphen form", "mother-in-law", "mother-in-law", true},
		{"mixed separators via fallback", "mother-in law", "mother-in-law", true},
		{"case and spacing normalized", "  Mother   In LAW ", "mother-in-law", true},
		{"space entry space form", "ice cream", "ice cream", true},
		{"space entry hyphen form", "ice-cream", "ice cream", true},
		{"four tokens", "jack of all trades", "jack of all trades", true},
		{"miss", "dog house", "", false},
		{"single word never resolves", "single", "", false},
		{"too long", "one two three four five six", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := idx.Resolve(tt.phrase)
			assert.Equal(t, tt.hit, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhraseIndex_FirstRegistrationWins(t *testing.T) {
	// "ice-cream" and "ice cream" collide on both forms; the first stays.
	idx := NewPhraseIndex([]string{"ice-cream", "ice cream"})

	got, ok := idx.Resolve("ice cream")
	assert.True(t, ok)
	assert.Equal(t, "ice-cream", got)
}

func TestPhraseIndex_Empty(t *testing.T) {
	idx := NewPhraseIndex(nil)
	assert.Equal(t, 0, idx.Len())

	_, ok := idx.Resolve("anything at all")
	assert.False(t, ok)
}
