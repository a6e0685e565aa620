package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dkoval/algotrack/internal/domain"
)

// CatalogService exposes the read side of the algorithm catalog.
type CatalogService struct {
	algorithms domain.AlgorithmRepository
	categories domain.CategoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(algorithms domain.AlgorithmRepository, categories domain.CategoryRepository) *CatalogService {
	return &CatalogService{algorithms: algorithms, categories: categories}
}

// List returns catalog entries matching the filter, newest first. A
// filter that matches nothing yields an empty list, not an error.
func (s *CatalogService) List(ctx context.Context, filter domain.FilterSpec) ([]domain.Algorithm, error) {
	return s.algorithms.List(ctx, filter)
}

// GetBySlug returns one algorithm with its test cases attached.
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*domain.Algorithm, error) {
	alg, err := s.algorithms.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get algorithm: %w", err)
	}

	cases, err := s.algorithms.TestCases(ctx, alg.ID)
	if err != nil {
		return nil, fmt.Errorf("get test cases: %w", err)
	}
	alg.TestCases = cases
	return alg, nil
}

// Resolve looks up an algorithm by reference: a numeric id first, then a
// slug. A miss is ErrNotFound, never a silent create.
func (s *CatalogService) Resolve(ctx context.Context, ref string) (*domain.Algorithm, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty algorithm reference", domain.ErrInvalidInput)
	}
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return s.algorithms.GetByID(ctx, id)
	}
	return s.algorithms.GetBySlug(ctx, ref)
}

// Categories returns all categories ordered by name.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// DifficultyCounts returns the catalog size per difficulty, ordered
// Easy, Medium, Hard.
func (s *CatalogService) DifficultyCounts(ctx context.Context) ([]domain.DifficultyCount, error) {
	return s.algorithms.DifficultyCounts(ctx)
}
