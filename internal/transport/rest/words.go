package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/xnillio/lexigraph/internal/service/dictionary"
	"github.com/xnillio/lexigraph/internal/service/graph"
)

// dictionaryService defines the minimal interface needed by WordHandler.
type dictionaryService interface {
	GetWord(ctx context.Context, raw string) (*dictionary.WordDetail, error)
	Search(ctx context.Context, prefix string, limit int) ([]string, error)
}

// neighborService answers graph-neighborhood queries.
type neighborService interface {
	GetNeighbors(ctx context.Context, word string, depth int) (*graph.Neighborhood, error)
}

// WordHandler serves word lookup, search, and neighborhood endpoints.
type WordHandler struct {
	svc   dictionaryService
	graph neighborService
	log   *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc dictionaryService, graphSvc neighborService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, graph: graphSvc, log: logger.With("handler", "words")}
}

type wordResponse struct {
	Word          string   `json:"word"`
	Pronunciation *string  `json:"pronunciation"`
	Definition    string   `json:"definition"`
	LinkedWords   []string `json:"linked_words"`
	InDegree      int      `json:"in_degree"`
	OutDegree     int      `json:"out_degree"`
}

// Get handles GET /api/words/{word}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetWord(r.Context(), r.PathValue("word"))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	linked := detail.LinkedWords
	if linked == nil {
		linked = []string{}
	}

	writeJSON(w, http.StatusOK, wordResponse{
		Word:          detail.Word,
		Pronunciation: detail.Pronunciation,
		Definition:    detail.Definition,
		LinkedWords:   linked,
		InDegree:      detail.InDegree,
		OutDegree:     detail.OutDegree,
	})
}

type neighborsResponse struct {
	Word      string           `json:"word"`
	Depth     int              `json:"depth"`
	Neighbors map[int][]string `json:"neighbors"`
}

// Neighbors handles GET /api/words/{word}/neighbors?depth=1..3.
func (h *WordHandler) Neighbors(w http.ResponseWriter, r *http.Request) {
	depth := 1
	if s := r.URL.Query().Get("depth"); s != "" {
		d, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidArgument, "depth must be an integer")
			return
		}
		depth = d
	}

	result, err := h.graph.GetNeighbors(r.Context(), r.PathValue("word"), depth)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, neighborsResponse{
		Word:      result.Word,
		Depth:     depth,
		Neighbors: result.ByDepth,
	})
}

type searchResponse struct {
	Query   string   `json:"query"`
	Results []string `json:"results"`
	Count   int      `json:"count"`
}

// Search handles GET /api/words/search/{prefix}?limit=1..50.
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidArgument, "limit must be an integer")
			return
		}
		limit = n
	}

	prefix := r.PathValue("prefix")
	results, err := h.svc.Search(r.Context(), prefix, limit)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	if results == nil {
		results = []string{}
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:   prefix,
		Results: results,
		Count:   len(results),
	})
}
