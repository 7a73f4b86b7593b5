// Package word implements the Lexicon repository using PostgreSQL.
// Simple lookups use raw SQL; the prefix search is built with squirrel.
// The words table is append-only: entries are created by the seeder and
// never mutated, so the repo exposes no Update/Delete.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xnillio/lexigraph/internal/adapter/postgres"
	"github.com/xnillio/lexigraph/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const getByWordSQL = `
SELECT id, word, word_lower, pronunciation, definition, definition_length, created_at
FROM words
WHERE word_lower = $1
LIMIT 1`

const existsSQL = `
SELECT EXISTS (SELECT 1 FROM words WHERE word_lower = $1)`

const allWordsSQL = `
SELECT word_lower, definition FROM words ORDER BY word_lower`

const allWordSetSQL = `
SELECT word_lower FROM words`

const allCompoundSQL = `
SELECT word_lower FROM words
WHERE word_lower LIKE '% %' OR word_lower LIKE '%-%'`

const countSQL = `
SELECT count(*) FROM words`

const avgDefLenSQL = `
SELECT COALESCE(AVG(definition_length), 0) FROM words`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByWord returns a word by its normalized spelling.
// Returns domain.ErrNotFound if the word is not in the lexicon.
func (r *Repo) GetByWord(ctx context.Context, wordLower string) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var w domain.Word
	err := q.QueryRow(ctx, getByWordSQL, wordLower).Scan(
		&w.ID, &w.Word, &w.WordLower, &w.Pronunciation,
		&w.Definition, &w.DefinitionLength, &w.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "word", wordLower)
	}

	return &w, nil
}

// Exists reports whether the normalized word has a lexicon entry.
func (r *Repo) Exists(ctx context.Context, wordLower string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, wordLower).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "word", wordLower)
	}

	return exists, nil
}

// SearchPrefix returns original-case headwords whose normalized spelling
// starts with the given prefix, ordered by word, capped at limit.
// An empty prefix returns an empty result without a DB query.
func (r *Repo) SearchPrefix(ctx context.Context, prefix string, limit int) ([]string, error) {
	if prefix == "" {
		return []string{}, nil
	}

	query, args, err := r.sb.
		Select("word").
		From("words").
		Where(sq.Like{"word_lower": escapeLike(prefix) + "%"}).
		OrderBy("word ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build prefix search: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// AllEntries returns every normalized headword with its definition,
// ordered by word_lower. Used by the offline link recompute job.
func (r *Repo) AllEntries(ctx context.Context) ([]domain.DefinitionEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, allWordsSQL)
	if err != nil {
		return nil, fmt.Errorf("query all words: %w", err)
	}
	defer rows.Close()

	var entries []domain.DefinitionEntry
	for rows.Next() {
		var e domain.DefinitionEntry
		if err := rows.Scan(&e.WordLower, &e.Definition); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// AllWordSet returns the set of all normalized headwords.
func (r *Repo) AllWordSet(ctx context.Context) (map[string]struct{}, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, allWordSetSQL)
	if err != nil {
		return nil, fmt.Errorf("query word set: %w", err)
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		set[w] = struct{}{}
	}

	return set, rows.Err()
}

// AllCompoundWords returns the normalized headwords that contain an internal
// space or hyphen. Token-count filtering (2..5) is applied by the caller.
func (r *Repo) AllCompoundWords(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, allCompoundSQL)
	if err != nil {
		return nil, fmt.Errorf("query compound words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// Count returns the total number of words in the lexicon.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}

	return n, nil
}

// AvgDefinitionLength returns the average definition length in characters,
// 0 for an empty lexicon.
func (r *Repo) AvgDefinitionLength(ctx context.Context) (float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var avg float64
	if err := q.QueryRow(ctx, avgDefLenSQL).Scan(&avg); err != nil {
		return 0, fmt.Errorf("average definition length: %w", err)
	}

	return avg, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// BulkInsert inserts words using pgx.Batch. Existing words (by original-case
// spelling) are skipped via ON CONFLICT DO NOTHING, so re-running the seeder
// over the same dataset is idempotent. Returns the number of inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, w := range words {
		batch.Queue(
			`INSERT INTO words (id, word, word_lower, pronunciation, definition, definition_length, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (word) DO NOTHING`,
			w.ID, w.Word, w.WordLower, w.Pronunciation, w.Definition, w.DefinitionLength, w.CreatedAt,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// escapeLike escapes LIKE metacharacters so a user-supplied prefix matches
// literally.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
