package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dkoval/algotrack/internal/domain"
)

// AlgorithmRepository implements domain.AlgorithmRepository using SQLite.
type AlgorithmRepository struct {
	db *sql.DB
}

// NewAlgorithmRepository creates a new SQLite-backed AlgorithmRepository.
func NewAlgorithmRepository(db *DB) *AlgorithmRepository {
	return &AlgorithmRepository{db: db.SqlDB}
}

const algorithmColumns = `a.id, a.title, a.slug, a.description, a.difficulty, a.category_id, c.name,
	 a.problem_statement, a.example_input, a.example_output, a.constraints,
	 a.time_complexity, a.space_complexity, a.solution_template, a.solution_code,
	 a.explanation, a.hints, a.tags, a.created_at, a.updated_at`

func (r *AlgorithmRepository) Create(ctx context.Context, alg *domain.Algorithm) error {
	hints, err := json.Marshal(alg.Hints)
	if err != nil {
		return fmt.Errorf("marshal hints: %w", err)
	}
	tags, err := json.Marshal(alg.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO algorithms (
		 title, slug, description, difficulty, category_id, problem_statement,
		 example_input, example_output, constraints, time_complexity, space_complexity,
		 solution_template, solution_code, explanation, hints, tags, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		alg.Title, alg.Slug, alg.Description, alg.Difficulty, alg.CategoryID, alg.ProblemStatement,
		alg.ExampleInput, alg.ExampleOutput, alg.Constraints, alg.TimeComplexity, alg.SpaceComplexity,
		alg.SolutionTemplate, alg.SolutionCode, alg.Explanation, string(hints), string(tags), now, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("insert algorithm: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	alg.ID = id
	alg.CreatedAt = now
	alg.UpdatedAt = now
	return nil
}

func (r *AlgorithmRepository) GetByID(ctx context.Context, id int64) (*domain.Algorithm, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+algorithmColumns+`
		 FROM algorithms a LEFT JOIN categories c ON a.category_id = c.id
		 WHERE a.id = ?`, id)
	return scanAlgorithm(row)
}

func (r *AlgorithmRepository) GetBySlug(ctx context.Context, slug string) (*domain.Algorithm, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+algorithmColumns+`
		 FROM algorithms a LEFT JOIN categories c ON a.category_id = c.id
		 WHERE a.slug = ?`, slug)
	return scanAlgorithm(row)
}

// List returns catalog entries matching the filter, newest first. Each
// predicate translates to one WHERE clause; the same predicates are
// evaluated in memory by domain.FilterSpec.Matches.
func (r *AlgorithmRepository) List(ctx context.Context, filter domain.FilterSpec) ([]domain.Algorithm, error) {
	query := `SELECT ` + algorithmColumns + `
	 FROM algorithms a LEFT JOIN categories c ON a.category_id = c.id`

	var clauses []string
	var args []any
	for _, p := range filter.Predicates() {
		switch p.Kind {
		case domain.PredicateDifficultyEquals:
			clauses = append(clauses, "a.difficulty = ?")
			args = append(args, p.Value)
		case domain.PredicateCategoryEquals:
			clauses = append(clauses, "c.name = ?")
			args = append(args, p.Value)
		case domain.PredicateTextContains:
			clauses = append(clauses, "(LOWER(a.title) LIKE ? OR LOWER(a.description) LIKE ?)")
			needle := "%" + strings.ToLower(p.Value) + "%"
			args = append(args, needle, needle)
		}
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	// Newest first; id breaks created_at ties so ordering stays stable.
	query += " ORDER BY a.created_at DESC, a.id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list algorithms: %w", err)
	}
	defer rows.Close()

	var algs []domain.Algorithm
	for rows.Next() {
		alg, err := scanAlgorithmRow(rows)
		if err != nil {
			return nil, err
		}
		algs = append(algs, *alg)
	}
	return algs, rows.Err()
}

func (r *AlgorithmRepository) DifficultyCounts(ctx context.Context) ([]domain.DifficultyCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT difficulty, COUNT(*) FROM algorithms
		 GROUP BY difficulty
		 ORDER BY CASE difficulty WHEN 'Easy' THEN 1 WHEN 'Medium' THEN 2 WHEN 'Hard' THEN 3 END`)
	if err != nil {
		return nil, fmt.Errorf("count difficulties: %w", err)
	}
	defer rows.Close()

	var counts []domain.DifficultyCount
	for rows.Next() {
		var dc domain.DifficultyCount
		if err := rows.Scan(&dc.Difficulty, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan difficulty count: %w", err)
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}

func (r *AlgorithmRepository) TestCases(ctx context.Context, algorithmID int64) ([]domain.TestCase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, algorithm_id, input, expected_output, is_example, created_at
		 FROM test_cases WHERE algorithm_id = ? ORDER BY id`, algorithmID)
	if err != nil {
		return nil, fmt.Errorf("list test cases: %w", err)
	}
	defer rows.Close()

	var cases []domain.TestCase
	for rows.Next() {
		var tc domain.TestCase
		if err := rows.Scan(&tc.ID, &tc.AlgorithmID, &tc.Input, &tc.ExpectedOutput, &tc.IsExample, &tc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan test case: %w", err)
		}
		cases = append(cases, tc)
	}
	return cases, rows.Err()
}

func (r *AlgorithmRepository) AddTestCase(ctx context.Context, tc *domain.TestCase) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO test_cases (algorithm_id, input, expected_output, is_example, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		tc.AlgorithmID, tc.Input, tc.ExpectedOutput, tc.IsExample, now,
	)
	if err != nil {
		return fmt.Errorf("insert test case: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	tc.ID = id
	tc.CreatedAt = now
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for the shared algorithm scan.
type scanner interface {
	Scan(dest ...any) error
}

func scanAlgorithm(row *sql.Row) (*domain.Algorithm, error) {
	alg, err := scanAlgorithmRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return alg, nil
}

func scanAlgorithmRow(s scanner) (*domain.Algorithm, error) {
	alg := &domain.Algorithm{}
	var categoryName sql.NullString
	var hints, tags string
	err := s.Scan(
		&alg.ID, &alg.Title, &alg.Slug, &alg.Description, &alg.Difficulty, &alg.CategoryID, &categoryName,
		&alg.ProblemStatement, &alg.ExampleInput, &alg.ExampleOutput, &alg.Constraints,
		&alg.TimeComplexity, &alg.SpaceComplexity, &alg.SolutionTemplate, &alg.SolutionCode,
		&alg.Explanation, &hints, &tags, &alg.CreatedAt, &alg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan algorithm: %w", err)
	}

	alg.CategoryName = categoryName.String
	if err := json.Unmarshal([]byte(hints), &alg.Hints); err != nil {
		return nil, fmt.Errorf("unmarshal hints: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &alg.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	return alg, nil
}
