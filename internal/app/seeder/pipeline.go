package seeder

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xnillio/lexigraph/internal/app/seeder/gcide"
	"github.com/xnillio/lexigraph/internal/config"
	"github.com/xnillio/lexigraph/internal/domain"
)

// senseSeparator joins definitions when one headword appears in several
// GCIDE entries. Matches the separator the parser uses between senses.
const senseSeparator = "\n\n---\n\n"

// Result holds the outcome of a pipeline run.
type Result struct {
	Files    int
	Parsed   int
	Rejected int
	Words    int
	Inserted int
	Duration time.Duration
}

// Pipeline parses GCIDE files and bulk-loads the words table.
type Pipeline struct {
	log  *slog.Logger
	repo WordBulkRepo
	cfg  config.SeederConfig
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo WordBulkRepo, cfg config.SeederConfig) *Pipeline {
	return &Pipeline{
		log:  log,
		repo: repo,
		cfg:  cfg,
	}
}

// Run finds the CIDE.* files under cfg.DataDir, parses them, merges duplicate
// headwords, and batch-inserts the result. With cfg.DryRun set, everything is
// parsed and counted but nothing is written.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	files, err := findDataFiles(p.cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("find data files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no CIDE.* files under %s", p.cfg.DataDir)
	}

	result := &Result{Files: len(files)}

	var words []domain.Word
	index := make(map[string]int)

	for _, path := range files {
		entries, stats, err := gcide.ParseFile(path)
		if err != nil {
			return nil, err
		}
		result.Parsed += stats.Parsed
		result.Rejected += stats.Rejected

		for _, e := range entries {
			words = mergeEntry(words, index, e)
		}

		p.log.Info("file parsed",
			slog.String("file", filepath.Base(path)),
			slog.Int("entries", stats.Parsed),
			slog.Int("rejected", stats.Rejected),
		)
	}
	result.Words = len(words)

	if p.cfg.DryRun {
		p.log.Info("dry run, skipping insert", slog.Int("words", len(words)))
		result.Duration = time.Since(start)
		return result, nil
	}

	inserted, err := batchProcess(words, p.cfg.BatchSize, func(batch []domain.Word) (int, error) {
		return p.repo.BulkInsert(ctx, batch)
	})
	if err != nil {
		return nil, fmt.Errorf("insert words: %w", err)
	}
	result.Inserted = inserted
	result.Duration = time.Since(start)

	p.log.Info("seeding completed",
		slog.Int("files", result.Files),
		slog.Int("words", result.Words),
		slog.Int("inserted", result.Inserted),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// mergeEntry appends a parsed entry as a new word, or folds it into an
// existing word with the same spelling: definitions concatenate and the first
// non-empty pronunciation wins.
func mergeEntry(words []domain.Word, index map[string]int, e gcide.Entry) []domain.Word {
	if i, ok := index[e.Headword]; ok {
		w := &words[i]
		w.Definition = w.Definition + senseSeparator + e.Definition
		w.DefinitionLength = len(w.Definition)
		if w.Pronunciation == nil && e.Pronunciation != "" {
			pr := e.Pronunciation
			w.Pronunciation = &pr
		}
		return words
	}

	word := domain.Word{
		ID:               uuid.New(),
		Word:             e.Headword,
		WordLower:        domain.NormalizeWord(e.Headword),
		Definition:       e.Definition,
		DefinitionLength: len(e.Definition),
		CreatedAt:        time.Now(),
	}
	if e.Pronunciation != "" {
		pr := e.Pronunciation
		word.Pronunciation = &pr
	}

	index[e.Headword] = len(words)
	return append(words, word)
}

// findDataFiles returns the CIDE.* files under root, sorted, searching
// subdirectories as well (archives unpack into a versioned directory).
func findDataFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasPrefix(d.Name(), "CIDE.") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
