package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dkoval/algotrack/internal/domain"
	"github.com/dkoval/algotrack/internal/service"
)

// ProgressHandler serves the per-user progress endpoints. All routes
// require authentication; the acting user comes from the request context.
type ProgressHandler struct {
	progress *service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progress *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// HandleList returns the user's full progress history, most recently
// updated first.
// GET /api/progress
func (h *ProgressHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	entries, err := h.progress.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("list progress", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"progress": toProgressEntryDTOs(entries),
		"count":    len(entries),
	})
}

// HandleGet returns the user's progress on one algorithm, referenced by
// id or slug. A pair that was never touched yields a null progress body,
// not a 404; only an unknown algorithm is a 404.
// GET /api/progress/{ref}
func (h *ProgressHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	rec, err := h.progress.Get(r.Context(), user.ID, r.PathValue("ref"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Algorithm not found.")
			return
		}
		slog.Error("get progress", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if rec == nil {
		writeJSON(w, http.StatusOK, map[string]any{"progress": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"progress": toProgressDTO(rec)})
}

// HandleUpsert records one save/submit action against an algorithm. Each
// successful call counts as one attempt; all body fields are optional.
// POST /api/progress/{ref}
// Request: {"status":"completed","userSolution":"...","notes":"..."}
func (h *ProgressHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Status       *string `json:"status"`
		UserSolution *string `json:"userSolution"`
		Notes        *string `json:"notes"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	patch := domain.ProgressPatch{
		UserSolution: req.UserSolution,
		Notes:        req.Notes,
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		patch.Status = &s
	}

	rec, err := h.progress.Upsert(r.Context(), user.ID, r.PathValue("ref"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Algorithm not found.")
			return
		}
		slog.Error("upsert progress", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"progress": toProgressDTO(rec)})
}

// HandleStats returns the user's recomputed progress summary.
// GET /api/progress/stats
func (h *ProgressHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	stats, err := h.progress.Stats(r.Context(), user.ID)
	if err != nil {
		slog.Error("progress stats", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"stats": toStatsDTO(stats)})
}
