package domain

import (
	"context"
	"time"
)

// Status describes a user's relationship to one algorithm. There is no
// enforced transition graph; any status may follow any other.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusReview     Status = "review"
)

// ValidStatus reports whether s is one of the four known status values.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusReview:
		return true
	}
	return false
}

// ProgressRecord is the per-(user, algorithm) progress row. At most one
// record exists per pair. Attempts counts every save, starting at 1 on
// creation. CompletedAt is a latch: once set it is never cleared, even
// if the status later moves away from completed.
type ProgressRecord struct {
	ID            int64
	UserID        int64
	AlgorithmID   int64
	Status        Status
	Attempts      int
	LastAttemptAt time.Time
	CompletedAt   *time.Time
	UserSolution  string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProgressPatch is the caller-supplied change set for one upsert. Nil
// fields leave the stored value unchanged (on creation they fall back to
// defaults).
type ProgressPatch struct {
	Status       *Status
	UserSolution *string
	Notes        *string
}

// ProgressEntry is a progress record joined with the algorithm it tracks,
// for listing a user's full history.
type ProgressEntry struct {
	ProgressRecord
	Title        string
	Slug         string
	Difficulty   Difficulty
	CategoryName string
}

// Overview is the top-level rollup of one user's progress. not_started is
// never stored as a record, so it has no counter here.
type Overview struct {
	TotalAttempted int
	Completed      int
	InProgress     int
	Review         int
}

// GroupStats is the attempted/completed pair for one difficulty or
// category bucket.
type GroupStats struct {
	Label     string // difficulty value, or category name ("" = uncategorized)
	Attempted int
	Completed int
}

// StatsSnapshot is the full derived summary for one user, recomputed on
// every call.
type StatsSnapshot struct {
	Overview     Overview
	ByDifficulty []GroupStats
	ByCategory   []GroupStats
}

// ProgressRepository defines persistence operations for progress records.
// Upsert must apply the existence check and the create-or-increment as a
// single atomic statement per key; concurrent upserts on the same key
// serialize and every committed call increments Attempts.
type ProgressRepository interface {
	Get(ctx context.Context, userID, algorithmID int64) (*ProgressRecord, error)
	Upsert(ctx context.Context, userID, algorithmID int64, patch ProgressPatch) (*ProgressRecord, error)
	ListByUser(ctx context.Context, userID int64) ([]ProgressEntry, error)
	Stats(ctx context.Context, userID int64) (*StatsSnapshot, error)
}
