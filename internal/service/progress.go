package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkoval/algotrack/internal/domain"
)

// ProgressService is the authoritative state machine for one user's
// relationship to one algorithm. Every operation takes the acting user's
// ID explicitly; nothing is read from ambient request state.
type ProgressService struct {
	progress domain.ProgressRepository
	catalog  *CatalogService
}

// NewProgressService creates a new ProgressService.
func NewProgressService(progress domain.ProgressRepository, catalog *CatalogService) *ProgressService {
	return &ProgressService{progress: progress, catalog: catalog}
}

// Get returns the user's progress on the referenced algorithm, or
// (nil, nil) when the pair has never been touched. An unknown algorithm
// is ErrNotFound.
func (s *ProgressService) Get(ctx context.Context, userID int64, ref string) (*domain.ProgressRecord, error) {
	alg, err := s.catalog.Resolve(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("resolve algorithm: %w", err)
	}

	rec, err := s.progress.Get(ctx, userID, alg.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Never touched: an explicit no-record result, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return rec, nil
}

// Upsert applies one save/submit action. The patch's fields are all
// optional; a nil status leaves the stored status unchanged (or defaults
// to in_progress on first touch). Validation failures and unknown
// algorithms are rejected before any write. Deliberately not idempotent:
// every successful call counts as one attempt.
func (s *ProgressService) Upsert(ctx context.Context, userID int64, ref string, patch domain.ProgressPatch) (*domain.ProgressRecord, error) {
	if patch.Status != nil && !domain.ValidStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrInvalidInput, *patch.Status)
	}

	alg, err := s.catalog.Resolve(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("resolve algorithm: %w", err)
	}

	rec, err := s.progress.Upsert(ctx, userID, alg.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}
	return rec, nil
}

// List returns all of the user's progress entries joined with algorithm
// metadata, most recently updated first.
func (s *ProgressService) List(ctx context.Context, userID int64) ([]domain.ProgressEntry, error) {
	return s.progress.ListByUser(ctx, userID)
}

// Stats recomputes the user's progress summary from the current records.
func (s *ProgressService) Stats(ctx context.Context, userID int64) (*domain.StatsSnapshot, error) {
	return s.progress.Stats(ctx, userID)
}
