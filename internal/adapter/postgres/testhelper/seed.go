package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xnillio/lexigraph/internal/domain"
)

// SeedWord inserts a word with the given spelling and definition.
// Returns the filled domain.Word.
func SeedWord(t *testing.T, pool *pgxpool.Pool, spelling, definition string) domain.Word {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	w := domain.Word{
		ID:               uuid.New(),
		Word:             spelling,
		WordLower:        domain.NormalizeWord(spelling),
		Definition:       definition,
		DefinitionLength: len(definition),
		CreatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, word, word_lower, pronunciation, definition, definition_length, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID, w.Word, w.WordLower, w.Pronunciation, w.Definition, w.DefinitionLength, w.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert %q: %v", spelling, err)
	}

	return w
}

// TruncateAll removes all rows from every table, letting tests that share the
// container start from a clean slate.
func TruncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `TRUNCATE word_links, words`)
	if err != nil {
		t.Fatalf("testhelper: TruncateAll: %v", err)
	}
}
