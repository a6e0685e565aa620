package domain

import (
	"context"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ValidDifficulty reports whether d is one of the three known levels.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Algorithm is a single problem in the catalog. The catalog is read-only
// from the progress tracker's perspective; rows are written only by
// seeding.
type Algorithm struct {
	ID               int64
	Title            string
	Slug             string
	Description      string
	Difficulty       Difficulty
	CategoryID       *int64
	CategoryName     string // joined from categories; empty when uncategorized
	ProblemStatement string
	ExampleInput     string
	ExampleOutput    string
	Constraints      string
	TimeComplexity   string
	SpaceComplexity  string
	SolutionTemplate string
	SolutionCode     string
	Explanation      string
	Hints            []string
	Tags             []string
	TestCases        []TestCase
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TestCase is an input/expected-output pair attached to an algorithm.
// Example cases are shown in the problem statement; the rest are hidden.
type TestCase struct {
	ID             int64
	AlgorithmID    int64
	Input          string
	ExpectedOutput string
	IsExample      bool
	CreatedAt      time.Time
}

// DifficultyCount is the number of catalog entries at one difficulty level.
type DifficultyCount struct {
	Difficulty Difficulty
	Count      int
}

// AlgorithmRepository defines persistence operations for the catalog.
type AlgorithmRepository interface {
	Create(ctx context.Context, alg *Algorithm) error
	GetByID(ctx context.Context, id int64) (*Algorithm, error)
	GetBySlug(ctx context.Context, slug string) (*Algorithm, error)
	List(ctx context.Context, filter FilterSpec) ([]Algorithm, error)
	DifficultyCounts(ctx context.Context) ([]DifficultyCount, error)
	TestCases(ctx context.Context, algorithmID int64) ([]TestCase, error)
	AddTestCase(ctx context.Context, tc *TestCase) error
}
