package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dkoval/algotrack/internal/domain"
	"github.com/dkoval/algotrack/internal/service"
)

// AlgorithmHandler serves the read-only catalog endpoints.
type AlgorithmHandler struct {
	catalog *service.CatalogService
}

// NewAlgorithmHandler creates a new AlgorithmHandler.
func NewAlgorithmHandler(catalog *service.CatalogService) *AlgorithmHandler {
	return &AlgorithmHandler{catalog: catalog}
}

// HandleList returns catalog entries, newest first, optionally filtered.
// GET /api/algorithms?difficulty=Easy&category=Array&search=two
// All filters are optional and combine with AND.
func (h *AlgorithmHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.FilterSpec{
		Difficulty: domain.Difficulty(q.Get("difficulty")),
		Category:   q.Get("category"),
		Search:     q.Get("search"),
	}

	algorithms, err := h.catalog.List(r.Context(), filter)
	if err != nil {
		slog.Error("list algorithms", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"algorithms": toAlgorithmSummaryDTOs(algorithms),
		"count":      len(algorithms),
	})
}

// HandleGet returns one algorithm with its example test cases.
// GET /api/algorithms/{slug}
func (h *AlgorithmHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	alg, err := h.catalog.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Algorithm not found.")
			return
		}
		slog.Error("get algorithm", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"algorithm": toAlgorithmDTO(alg)})
}

// HandleCategories returns all categories ordered by name.
// GET /api/algorithms/meta/categories
func (h *AlgorithmHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		slog.Error("list categories", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": toCategoryDTOs(categories)})
}

// HandleDifficulties returns the catalog size per difficulty level.
// GET /api/algorithms/meta/difficulties
func (h *AlgorithmHandler) HandleDifficulties(w http.ResponseWriter, r *http.Request) {
	counts, err := h.catalog.DifficultyCounts(r.Context())
	if err != nil {
		slog.Error("difficulty counts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"difficulties": toDifficultyCountDTOs(counts)})
}
