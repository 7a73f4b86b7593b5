// Package seeder loads the GCIDE dictionary files into the words table.
package seeder

import (
	"context"

	"github.com/xnillio/lexigraph/internal/domain"
)

// WordBulkRepo is the batch repository contract consumed by the pipeline.
// Implemented by word.Repo.
type WordBulkRepo interface {
	// BulkInsert inserts words with ON CONFLICT DO NOTHING and returns the
	// number of rows actually inserted.
	BulkInsert(ctx context.Context, words []domain.Word) (int, error)
}
