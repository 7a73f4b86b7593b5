// Package link implements the Link Store repository using PostgreSQL.
// Edges are stored by word id; the repo exposes them by normalized headword
// so callers never see surrogate keys. The edge set is only ever replaced
// wholesale (drop-and-rebuild), never patched in place.
package link

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xnillio/lexigraph/internal/adapter/postgres"
	"github.com/xnillio/lexigraph/internal/domain"
)

// Repo provides word-link persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new link repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

const allLinksSQL = `
SELECT s.word_lower, t.word_lower
FROM word_links l
JOIN words s ON l.source_word_id = s.id
JOIN words t ON l.target_word_id = t.id
ORDER BY s.word_lower, t.word_lower`

const countSQL = `
SELECT count(*) FROM word_links`

const insertLinkSQL = `
INSERT INTO word_links (source_word_id, target_word_id)
SELECT s.id, t.id
FROM words s, words t
WHERE s.word_lower = $1 AND t.word_lower = $2
ON CONFLICT (source_word_id, target_word_id) DO NOTHING`

// All returns every edge as a (source, target) pair of normalized headwords,
// ordered by source then target.
func (r *Repo) All(ctx context.Context) ([]domain.Link, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, allLinksSQL)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.SourceLower, &l.TargetLower); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, l)
	}

	return links, rows.Err()
}

// Count returns the total number of edges.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count links: %w", err)
	}

	return n, nil
}

// ReplaceAll atomically replaces the full edge set: all existing edges are
// deleted and the given edges inserted in one transaction. Duplicate pairs
// and edges whose endpoints are missing from the words table are silently
// skipped, which makes a full recompute safe to re-run at any time.
// Returns the number of inserted rows.
func (r *Repo) ReplaceAll(ctx context.Context, links []domain.Link) (int, error) {
	var inserted int

	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		q := postgres.QuerierFromCtx(txCtx, r.pool)

		if _, err := q.Exec(txCtx, `DELETE FROM word_links`); err != nil {
			return fmt.Errorf("clear links: %w", err)
		}

		batch := &pgx.Batch{}
		for _, l := range links {
			batch.Queue(insertLinkSQL, l.SourceLower, l.TargetLower)
		}

		results := q.SendBatch(txCtx, batch)
		defer results.Close()

		for range batch.Len() {
			tag, err := results.Exec()
			if err != nil {
				return fmt.Errorf("batch exec: %w", err)
			}
			inserted += int(tag.RowsAffected())
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}
