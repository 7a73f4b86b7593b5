package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xnillio/lexigraph/internal/domain"
)

func TestGetNeighbors_SingleDepth(t *testing.T) {
	svc := newService(
		[]string{"cat", "animal", "feline", "dog"},
		[]domain.Link{edge("cat", "animal"), edge("cat", "feline"), edge("dog", "animal")},
	)

	got, err := svc.GetNeighbors(context.Background(), "cat", 1)
	require.NoError(t, err)

	assert.Equal(t, "cat", got.Word)
	require.Len(t, got.ByDepth, 1)
	assert.Equal(t, []string{"animal", "feline"}, got.ByDepth[1])
}

func TestGetNeighbors_TwoLevels(t *testing.T) {
	svc := newService(
		[]string{"cat", "animal", "organism", "life"},
		[]domain.Link{edge("cat", "animal"), edge("animal", "organism"), edge("organism", "life")},
	)

	got, err := svc.GetNeighbors(context.Background(), "cat", 2)
	require.NoError(t, err)

	require.Len(t, got.ByDepth, 2)
	assert.Equal(t, []string{"animal"}, got.ByDepth[1])
	assert.Equal(t, []string{"organism"}, got.ByDepth[2])
	assert.NotContains(t, got.ByDepth, 3)
}

func TestGetNeighbors_VisitedOnce(t *testing.T) {
	// animal is reachable both directly and through feline; it must appear
	// only at depth 1 and never again.
	svc := newService(
		[]string{"cat", "animal", "feline"},
		[]domain.Link{edge("cat", "animal"), edge("cat", "feline"), edge("feline", "animal")},
	)

	got, err := svc.GetNeighbors(context.Background(), "cat", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"animal", "feline"}, got.ByDepth[1])
	assert.NotContains(t, got.ByDepth, 2)
}

func TestGetNeighbors_SourceNeverRevisited(t *testing.T) {
	svc := newService(
		[]string{"a", "b"},
		[]domain.Link{edge("a", "b"), edge("b", "a")},
	)

	got, err := svc.GetNeighbors(context.Background(), "a", 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, got.ByDepth[1])
	assert.NotContains(t, got.ByDepth, 2)
}

func TestGetNeighbors_NoOutgoingEdges(t *testing.T) {
	svc := newService(
		[]string{"sink", "a"},
		[]domain.Link{edge("a", "sink")},
	)

	got, err := svc.GetNeighbors(context.Background(), "sink", 2)
	require.NoError(t, err)

	// Depth 1 is reported even when empty.
	require.Contains(t, got.ByDepth, 1)
	assert.Empty(t, got.ByDepth[1])
	assert.NotContains(t, got.ByDepth, 2)
}

func TestGetNeighbors_NormalizesInput(t *testing.T) {
	svc := newService(
		[]string{"cat", "animal"},
		[]domain.Link{edge("cat", "animal")},
	)

	got, err := svc.GetNeighbors(context.Background(), "  CaT  ", 1)
	require.NoError(t, err)
	assert.Equal(t, "cat", got.Word)
	assert.Equal(t, []string{"animal"}, got.ByDepth[1])
}

func TestGetNeighbors_UnknownWord(t *testing.T) {
	svc := newService([]string{"cat"}, nil)

	_, err := svc.GetNeighbors(context.Background(), "ghost", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetNeighbors_DepthValidation(t *testing.T) {
	svc := newService([]string{"cat"}, nil)

	for _, depth := range []int{0, -1, 4} {
		_, err := svc.GetNeighbors(context.Background(), "cat", depth)
		assert.ErrorIs(t, err, domain.ErrValidation, "depth %d", depth)
	}
}
