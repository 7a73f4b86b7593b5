package link_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xnillio/lexigraph/internal/adapter/postgres"
	"github.com/xnillio/lexigraph/internal/adapter/postgres/link"
	"github.com/xnillio/lexigraph/internal/adapter/postgres/testhelper"
	"github.com/xnillio/lexigraph/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*link.Repo, *pgxpool.Pool) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	pool := testhelper.SetupTestDB(t)
	return link.New(pool, postgres.NewTxManager(pool)), pool
}

// seedTriple seeds three words with a shared random suffix and returns their
// normalized spellings.
func seedTriple(t *testing.T, pool *pgxpool.Pool) (string, string, string) {
	t.Helper()
	suffix := uuid.New().String()[:8]
	a := testhelper.SeedWord(t, pool, "Linka"+suffix, "Points at b.")
	b := testhelper.SeedWord(t, pool, "Linkb"+suffix, "Points at c.")
	c := testhelper.SeedWord(t, pool, "Linkc"+suffix, "Points at a.")
	return a.WordLower, b.WordLower, c.WordLower
}

func TestRepo_ReplaceAll_AndAll(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	a, b, c := seedTriple(t, pool)

	inserted, err := repo.ReplaceAll(ctx, []domain.Link{
		{SourceLower: a, TargetLower: b},
		{SourceLower: b, TargetLower: c},
		{SourceLower: a, TargetLower: b}, // duplicate pair
		{SourceLower: a, TargetLower: "no-such-word"},
	})
	if err != nil {
		t.Fatalf("ReplaceAll: unexpected error: %v", err)
	}
	if inserted != 2 {
		t.Errorf("expected 2 inserted (duplicate and dangling edge skipped), got %d", inserted)
	}

	links, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: unexpected error: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d: %v", len(links), links)
	}
	if links[0].SourceLower != a || links[0].TargetLower != b {
		t.Errorf("links[0]: got %v, want %s->%s", links[0], a, b)
	}
	if links[1].SourceLower != b || links[1].TargetLower != c {
		t.Errorf("links[1]: got %v, want %s->%s", links[1], b, c)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected count 2, got %d", n)
	}
}

func TestRepo_ReplaceAll_DropsOldEdges(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	a, b, c := seedTriple(t, pool)

	if _, err := repo.ReplaceAll(ctx, []domain.Link{{SourceLower: a, TargetLower: b}}); err != nil {
		t.Fatalf("first ReplaceAll: %v", err)
	}
	if _, err := repo.ReplaceAll(ctx, []domain.Link{{SourceLower: c, TargetLower: a}}); err != nil {
		t.Fatalf("second ReplaceAll: %v", err)
	}

	links, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: unexpected error: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("expected 1 link after rebuild, got %d: %v", len(links), links)
	}
	if links[0].SourceLower != c || links[0].TargetLower != a {
		t.Errorf("got %v, want %s->%s", links[0], c, a)
	}
}

func TestRepo_ReplaceAll_EmptySetClears(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	a, b, _ := seedTriple(t, pool)

	if _, err := repo.ReplaceAll(ctx, []domain.Link{{SourceLower: a, TargetLower: b}}); err != nil {
		t.Fatalf("seed ReplaceAll: %v", err)
	}

	inserted, err := repo.ReplaceAll(ctx, nil)
	if err != nil {
		t.Fatalf("empty ReplaceAll: %v", err)
	}
	if inserted != 0 {
		t.Errorf("expected 0 inserted, got %d", inserted)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 links, got %d", n)
	}
}
