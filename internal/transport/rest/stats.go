package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/xnillio/lexigraph/internal/service/graph"
)

// graphService defines the minimal interface needed by StatsHandler.
type graphService interface {
	GetOverview(ctx context.Context) (*graph.Overview, error)
	GetStats(ctx context.Context) (*graph.Stats, error)
	GetTopWords(ctx context.Context, limit int) ([]graph.RankedWord, error)
	FindCycles(ctx context.Context) (*graph.Cycles, error)
}

// StatsHandler serves lexicon and graph statistics endpoints.
type StatsHandler struct {
	svc graphService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc graphService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type overviewResponse struct {
	TotalWords              int     `json:"total_words"`
	AverageDefinitionLength float64 `json:"average_definition_length"`
}

// Overview handles GET /api/stats/overview.
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.GetOverview(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		TotalWords:              overview.TotalWords,
		AverageDefinitionLength: overview.AverageDefinitionLength,
	})
}

type degreeCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type graphStatsResponse struct {
	Nodes                int           `json:"nodes"`
	Edges                int           `json:"edges"`
	AverageInDegree      float64       `json:"average_in_degree"`
	AverageOutDegree     float64       `json:"average_out_degree"`
	TopWordsByInDegree   []degreeCount `json:"top_words_by_in_degree"`
	TopWordsByOutDegree  []degreeCount `json:"top_words_by_out_degree"`
	LargestComponentSize int           `json:"largest_component_size"`
	CycleCount           int           `json:"cycle_count"`
	SampleCycles         [][]string    `json:"sample_cycles"`
}

// Graph handles GET /api/stats/graph.
func (h *StatsHandler) Graph(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, graphStatsResponse{
		Nodes:                stats.Nodes,
		Edges:                stats.Edges,
		AverageInDegree:      stats.AverageInDegree,
		AverageOutDegree:     stats.AverageOutDegree,
		TopWordsByInDegree:   toDegreeCounts(stats.TopByInDegree),
		TopWordsByOutDegree:  toDegreeCounts(stats.TopByOutDegree),
		LargestComponentSize: stats.LargestComponentSize,
		CycleCount:           stats.CycleCount,
		SampleCycles:         stats.SampleCycles,
	})
}

type rankedWord struct {
	Word        string `json:"word"`
	TotalDegree int    `json:"total_degree"`
	InDegree    int    `json:"in_degree"`
	OutDegree   int    `json:"out_degree"`
}

// TopWords handles GET /api/stats/top-words?limit=.
func (h *StatsHandler) TopWords(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidArgument, "limit must be an integer")
			return
		}
		limit = n
	}

	ranked, err := h.svc.GetTopWords(r.Context(), limit)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	words := make([]rankedWord, len(ranked))
	for i, rw := range ranked {
		words[i] = rankedWord{
			Word:        rw.Word,
			TotalDegree: rw.TotalDegree,
			InDegree:    rw.InDegree,
			OutDegree:   rw.OutDegree,
		}
	}
	writeJSON(w, http.StatusOK, words)
}

type cyclesResponse struct {
	TotalCycles int        `json:"total_cycles"`
	Cycles      [][]string `json:"cycles"`
	Truncated   bool       `json:"truncated"`
}

// Cycles handles GET /api/stats/cycles.
func (h *StatsHandler) Cycles(w http.ResponseWriter, r *http.Request) {
	cycles, err := h.svc.FindCycles(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cyclesResponse{
		TotalCycles: cycles.TotalCycles,
		Cycles:      cycles.Cycles,
		Truncated:   cycles.Truncated,
	})
}

func toDegreeCounts(counts []graph.DegreeCount) []degreeCount {
	out := make([]degreeCount, len(counts))
	for i, c := range counts {
		out[i] = degreeCount{Word: c.Word, Count: c.Count}
	}
	return out
}
