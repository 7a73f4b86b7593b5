package graph

import (
	"context"
	"math"
	"sort"
)

// Overview holds basic lexicon aggregates.
type Overview struct {
	TotalWords              int
	AverageDefinitionLength float64
}

// DegreeCount pairs a word with one of its degree counts.
type DegreeCount struct {
	Word  string
	Count int
}

// Stats holds graph-wide degree and structure statistics.
type Stats struct {
	Nodes                int
	Edges                int
	AverageInDegree      float64
	AverageOutDegree     float64
	TopByInDegree        []DegreeCount
	TopByOutDegree       []DegreeCount
	LargestComponentSize int
	CycleCount           int
	SampleCycles         [][]string
}

// RankedWord holds a word with its full degree breakdown.
type RankedWord struct {
	Word        string
	TotalDegree int
	InDegree    int
	OutDegree   int
}

const topDegreeCount = 10

// GetOverview returns basic lexicon statistics. It reads straight from the
// lexicon and does not require the graph snapshot.
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	total, err := s.lexicon.Count(ctx)
	if err != nil {
		return nil, err
	}

	avg, err := s.lexicon.AvgDefinitionLength(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalWords:              total,
		AverageDefinitionLength: round2(avg),
	}, nil
}

// GetStats returns graph-wide degree and structure statistics. An empty
// graph yields zeros and empty lists, never an error.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	snap, err := s.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Nodes:          len(snap.nodes),
		Edges:          snap.edges,
		TopByInDegree:  []DegreeCount{},
		TopByOutDegree: []DegreeCount{},
		SampleCycles:   [][]string{},
	}
	if stats.Nodes == 0 {
		return stats, nil
	}

	// Sum of in-degrees == sum of out-degrees == edge count.
	avg := float64(snap.edges) / float64(stats.Nodes)
	stats.AverageInDegree = round2(avg)
	stats.AverageOutDegree = round2(avg)

	stats.TopByInDegree = topByDegree(snap, topDegreeCount, func(w string) int {
		return snap.inDeg[w]
	})
	stats.TopByOutDegree = topByDegree(snap, topDegreeCount, func(w string) int {
		return len(snap.out[w])
	})

	stats.LargestComponentSize = largestWeakComponent(snap)

	total, cycles, _ := snap.simpleCycles(s.cfg.MaxCycles)
	stats.CycleCount = total
	if len(cycles) > s.cfg.SampleCycles {
		cycles = cycles[:s.cfg.SampleCycles]
	}
	stats.SampleCycles = cycles

	return stats, nil
}

// GetTopWords returns the words with the highest total degree (in + out),
// sorted descending. Degree ties keep map iteration order. A non-positive
// limit defaults to 10.
func (s *Service) GetTopWords(ctx context.Context, limit int) ([]RankedWord, error) {
	snap, err := s.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = topDegreeCount
	}

	ranked := make([]RankedWord, 0, len(snap.nodes))
	for w := range snap.nodes {
		in := snap.inDeg[w]
		out := len(snap.out[w])
		ranked = append(ranked, RankedWord{
			Word:        w,
			TotalDegree: in + out,
			InDegree:    in,
			OutDegree:   out,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalDegree > ranked[j].TotalDegree
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// GetDegree returns a word's in- and out-degree, and whether the word is a
// graph node at all.
func (s *Service) GetDegree(ctx context.Context, wordLower string) (in, out int, found bool, err error) {
	snap, err := s.ensureSnapshot(ctx)
	if err != nil {
		return 0, 0, false, err
	}

	if _, ok := snap.nodes[wordLower]; !ok {
		return 0, 0, false, nil
	}

	return snap.inDeg[wordLower], len(snap.out[wordLower]), true, nil
}

func topByDegree(snap *snapshot, limit int, degree func(string) int) []DegreeCount {
	counts := make([]DegreeCount, 0, len(snap.nodes))
	for w := range snap.nodes {
		counts = append(counts, DegreeCount{Word: w, Count: degree(w)})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
