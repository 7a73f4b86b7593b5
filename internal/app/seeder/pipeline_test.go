package seeder

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xnillio/lexigraph/internal/config"
	"github.com/xnillio/lexigraph/internal/domain"
)

type mockWordRepo struct {
	BulkInsertFunc func(ctx context.Context, words []domain.Word) (int, error)
}

func (m *mockWordRepo) BulkInsert(ctx context.Context, words []domain.Word) (int, error) {
	return m.BulkInsertFunc(ctx, words)
}

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const cideA = `<p><ent>Ale</ent><br/
<hw>Ale</hw> <pr>(al)</pr>, <pos>n.</pos> <def>A fermented malt liquor.</def></p>
<p><ent>Ant</ent><br/
<hw>Ant</hw>, <pos>n.</pos> <def>A small hymenopterous insect.</def></p>`

const cideB = `<p><ent>Ale</ent><br/
<hw>Ale</hw>, <pos>n.</pos> <def>A festival at which ale was drunk.</def></p>`

func TestPipeline_Run(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "CIDE.A", cideA)
	writeDataFile(t, dir, "CIDE.B", cideB)

	var got []domain.Word
	repo := &mockWordRepo{
		BulkInsertFunc: func(_ context.Context, words []domain.Word) (int, error) {
			got = append(got, words...)
			return len(words), nil
		},
	}

	p := NewPipeline(slog.Default(), repo, config.SeederConfig{DataDir: dir, BatchSize: 100})
	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Files)
	assert.Equal(t, 3, result.Parsed)
	assert.Equal(t, 2, result.Words)
	assert.Equal(t, 2, result.Inserted)

	require.Len(t, got, 2)

	// Duplicate headword across files folds into one word with joined senses.
	ale := got[0]
	assert.Equal(t, "Ale", ale.Word)
	assert.Equal(t, "ale", ale.WordLower)
	require.NotNil(t, ale.Pronunciation)
	assert.Equal(t, "al", *ale.Pronunciation)
	assert.Equal(t, "A fermented malt liquor.\n\n---\n\nA festival at which ale was drunk.", ale.Definition)
	assert.Equal(t, len(ale.Definition), ale.DefinitionLength)

	assert.Equal(t, "Ant", got[1].Word)
	assert.NotEqual(t, ale.ID, got[1].ID)
}

func TestPipeline_Batching(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "CIDE.A", cideA)

	callSizes := []int{}
	repo := &mockWordRepo{
		BulkInsertFunc: func(_ context.Context, words []domain.Word) (int, error) {
			callSizes = append(callSizes, len(words))
			return len(words), nil
		},
	}

	p := NewPipeline(slog.Default(), repo, config.SeederConfig{DataDir: dir, BatchSize: 1})
	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, []int{1, 1}, callSizes)
}

func TestPipeline_DryRun(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "CIDE.A", cideA)

	repo := &mockWordRepo{
		BulkInsertFunc: func(context.Context, []domain.Word) (int, error) {
			t.Fatal("insert must not be called in dry run")
			return 0, nil
		},
	}

	p := NewPipeline(slog.Default(), repo, config.SeederConfig{DataDir: dir, BatchSize: 100, DryRun: true})
	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Words)
	assert.Equal(t, 0, result.Inserted)
}

func TestPipeline_NoDataFiles(t *testing.T) {
	p := NewPipeline(slog.Default(), &mockWordRepo{}, config.SeederConfig{DataDir: t.TempDir()})

	_, err := p.Run(context.Background())
	assert.Error(t, err)
}

func TestPipeline_FindsFilesInSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "gcide-0.54")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeDataFile(t, sub, "CIDE.A", cideA)

	files, err := findDataFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "CIDE.A", filepath.Base(files[0]))
}
