package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dkoval/algotrack/internal/domain"
)

// ProgressRepository implements domain.ProgressRepository using SQLite.
type ProgressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new SQLite-backed ProgressRepository.
func NewProgressRepository(db *DB) *ProgressRepository {
	return &ProgressRepository{db: db.SqlDB}
}

func (r *ProgressRepository) Get(ctx context.Context, userID, algorithmID int64) (*domain.ProgressRecord, error) {
	rec := &domain.ProgressRecord{}
	var solution, notes sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, algorithm_id, status, attempts, last_attempt_at,
		 completed_at, user_solution, notes, created_at, updated_at
		 FROM user_progress WHERE user_id = ? AND algorithm_id = ?`,
		userID, algorithmID,
	).Scan(&rec.ID, &rec.UserID, &rec.AlgorithmID, &rec.Status, &rec.Attempts, &rec.LastAttemptAt,
		&rec.CompletedAt, &solution, &notes, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	rec.UserSolution = solution.String
	rec.Notes = notes.String
	return rec, nil
}

// Upsert creates or updates the record for (userID, algorithmID) in a
// single statement, so the existence check and the attempts increment
// cannot race. On creation attempts starts at 1 and a missing status
// defaults to in_progress; on update attempts always increments and
// completed_at is only ever written when this call's status is
// completed, never cleared.
func (r *ProgressRepository) Upsert(ctx context.Context, userID, algorithmID int64, patch domain.ProgressPatch) (*domain.ProgressRecord, error) {
	now := time.Now().UTC()

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	rec := &domain.ProgressRecord{}
	var solution, notes sql.NullString
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO user_progress (
		 user_id, algorithm_id, status, attempts, last_attempt_at,
		 completed_at, user_solution, notes, created_at, updated_at
		 ) VALUES (?, ?, COALESCE(?, 'in_progress'), 1, ?,
		           CASE WHEN COALESCE(?, 'in_progress') = 'completed' THEN ? END,
		           ?, ?, ?, ?)
		 ON CONFLICT (user_id, algorithm_id) DO UPDATE SET
		   status          = COALESCE(?, user_progress.status),
		   attempts        = user_progress.attempts + 1,
		   last_attempt_at = ?,
		   completed_at    = CASE WHEN ? = 'completed' THEN ? ELSE user_progress.completed_at END,
		   user_solution   = COALESCE(?, user_progress.user_solution),
		   notes           = COALESCE(?, user_progress.notes),
		   updated_at      = ?
		 RETURNING id, user_id, algorithm_id, status, attempts, last_attempt_at,
		           completed_at, user_solution, notes, created_at, updated_at`,
		userID, algorithmID, status, now,
		status, now,
		patch.UserSolution, patch.Notes, now, now,
		status, now, status, now, patch.UserSolution, patch.Notes, now,
	).Scan(&rec.ID, &rec.UserID, &rec.AlgorithmID, &rec.Status, &rec.Attempts, &rec.LastAttemptAt,
		&rec.CompletedAt, &solution, &notes, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}
	rec.UserSolution = solution.String
	rec.Notes = notes.String
	return rec, nil
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ProgressEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.user_id, p.algorithm_id, p.status, p.attempts, p.last_attempt_at,
		 p.completed_at, p.user_solution, p.notes, p.created_at, p.updated_at,
		 a.title, a.slug, a.difficulty, c.name
		 FROM user_progress p
		 JOIN algorithms a ON p.algorithm_id = a.id
		 LEFT JOIN categories c ON a.category_id = c.id
		 WHERE p.user_id = ?
		 ORDER BY p.updated_at DESC, p.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var entries []domain.ProgressEntry
	for rows.Next() {
		var e domain.ProgressEntry
		var solution, notes, categoryName sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.AlgorithmID, &e.Status, &e.Attempts, &e.LastAttemptAt,
			&e.CompletedAt, &solution, &notes, &e.CreatedAt, &e.UpdatedAt,
			&e.Title, &e.Slug, &e.Difficulty, &categoryName); err != nil {
			return nil, fmt.Errorf("scan progress entry: %w", err)
		}
		e.UserSolution = solution.String
		e.Notes = notes.String
		e.CategoryName = categoryName.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats recomputes the user's rollups from the current rows on every call.
func (r *ProgressRepository) Stats(ctx context.Context, userID int64) (*domain.StatsSnapshot, error) {
	snap := &domain.StatsSnapshot{}

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		 COUNT(CASE WHEN status = 'completed' THEN 1 END),
		 COUNT(CASE WHEN status = 'in_progress' THEN 1 END),
		 COUNT(CASE WHEN status = 'review' THEN 1 END)
		 FROM user_progress WHERE user_id = ?`, userID,
	).Scan(&snap.Overview.TotalAttempted, &snap.Overview.Completed,
		&snap.Overview.InProgress, &snap.Overview.Review)
	if err != nil {
		return nil, fmt.Errorf("overview stats: %w", err)
	}

	byDifficulty, err := r.groupStats(ctx,
		`SELECT a.difficulty, COUNT(*),
		 COUNT(CASE WHEN p.status = 'completed' THEN 1 END)
		 FROM user_progress p
		 JOIN algorithms a ON p.algorithm_id = a.id
		 WHERE p.user_id = ?
		 GROUP BY a.difficulty
		 ORDER BY CASE a.difficulty WHEN 'Easy' THEN 1 WHEN 'Medium' THEN 2 WHEN 'Hard' THEN 3 END`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("difficulty stats: %w", err)
	}
	snap.ByDifficulty = byDifficulty

	byCategory, err := r.groupStats(ctx,
		`SELECT c.name, COUNT(*),
		 COUNT(CASE WHEN p.status = 'completed' THEN 1 END)
		 FROM user_progress p
		 JOIN algorithms a ON p.algorithm_id = a.id
		 LEFT JOIN categories c ON a.category_id = c.id
		 WHERE p.user_id = ?
		 GROUP BY c.name
		 ORDER BY c.name IS NULL, c.name`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}
	snap.ByCategory = byCategory

	return snap, nil
}

func (r *ProgressRepository) groupStats(ctx context.Context, query string, userID int64) ([]domain.GroupStats, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.GroupStats
	for rows.Next() {
		var g domain.GroupStats
		var label sql.NullString
		if err := rows.Scan(&label, &g.Attempted, &g.Completed); err != nil {
			return nil, fmt.Errorf("scan group stats: %w", err)
		}
		g.Label = label.String
		stats = append(stats, g)
	}
	return stats, rows.Err()
}
