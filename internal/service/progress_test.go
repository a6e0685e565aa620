package service_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/dkoval/algotrack/internal/domain"
	"github.com/dkoval/algotrack/internal/service"
)

func newTestProgressService(t *testing.T) (*service.ProgressService, int64) {
	t.Helper()
	db := newTestDB(t)
	catalog := service.NewCatalogService(db.Algorithms(), db.Categories())
	if err := catalog.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	user := &domain.User{Username: "solver", Email: "solver@example.com", PasswordHash: "x"}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	return service.NewProgressService(db.Progress(), catalog), user.ID
}

func statusPtr(s domain.Status) *domain.Status { return &s }

func strPtr(s string) *string { return &s }

func TestProgressService_Get_NoRecord(t *testing.T) {
	svc, userID := newTestProgressService(t)

	rec, err := svc.Get(context.Background(), userID, "two-sum")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected no record, got %+v", rec)
	}
}

func TestProgressService_Get_UnknownAlgorithm(t *testing.T) {
	svc, userID := newTestProgressService(t)

	_, err := svc.Get(context.Background(), userID, "no-such-algorithm")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProgressService_Upsert_FirstTouchDefaults(t *testing.T) {
	svc, userID := newTestProgressService(t)

	rec, err := svc.Upsert(context.Background(), userID, "two-sum", domain.ProgressPatch{})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if rec.Status != domain.StatusInProgress {
		t.Fatalf("expected in_progress, got %s", rec.Status)
	}
	if rec.Attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", rec.Attempts)
	}
	if rec.CompletedAt != nil {
		t.Fatal("expected nil completed_at on first touch")
	}
}

func TestProgressService_Upsert_InvalidStatusRejectedBeforeWrite(t *testing.T) {
	svc, userID := newTestProgressService(t)
	ctx := context.Background()

	bad := domain.Status("done")
	_, err := svc.Upsert(ctx, userID, "two-sum", domain.ProgressPatch{Status: &bad})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// The rejected call must not have created a record or counted an attempt.
	rec, err := svc.Get(ctx, userID, "two-sum")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec != nil {
		t.Fatalf("rejected upsert left a record: %+v", rec)
	}
}

func TestProgressService_Upsert_UnknownAlgorithm(t *testing.T) {
	svc, userID := newTestProgressService(t)

	_, err := svc.Upsert(context.Background(), userID, "no-such-algorithm", domain.ProgressPatch{
		Status: statusPtr(domain.StatusCompleted),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProgressService_Upsert_ByIDAndSlugHitSameRecord(t *testing.T) {
	svc, userID := newTestProgressService(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, userID, "two-sum", domain.ProgressPatch{})
	if err != nil {
		t.Fatalf("Upsert by slug: %v", err)
	}

	second, err := svc.Upsert(ctx, userID, strconv.FormatInt(first.AlgorithmID, 10), domain.ProgressPatch{})
	if err != nil {
		t.Fatalf("Upsert by id: %v", err)
	}
	if second.AlgorithmID != first.AlgorithmID {
		t.Fatalf("id and slug resolved to different algorithms: %d vs %d", second.AlgorithmID, first.AlgorithmID)
	}
	if second.Attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", second.Attempts)
	}
}

func TestProgressService_CompletedAtLatch(t *testing.T) {
	svc, userID := newTestProgressService(t)
	ctx := context.Background()

	done, err := svc.Upsert(ctx, userID, "two-sum", domain.ProgressPatch{
		Status: statusPtr(domain.StatusCompleted),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}
	completedAt := *done.CompletedAt

	moved, err := svc.Upsert(ctx, userID, "two-sum", domain.ProgressPatch{
		Status: statusPtr(domain.StatusReview),
	})
	if err != nil {
		t.Fatalf("move to review: %v", err)
	}
	if moved.Status != domain.StatusReview {
		t.Fatalf("expected review, got %s", moved.Status)
	}
	if moved.CompletedAt == nil || !moved.CompletedAt.Equal(completedAt) {
		t.Fatalf("completed_at latch broken: %v", moved.CompletedAt)
	}

	noted, err := svc.Upsert(ctx, userID, "two-sum", domain.ProgressPatch{
		Notes: strPtr("revisit the hash map variant"),
	})
	if err != nil {
		t.Fatalf("notes-only upsert: %v", err)
	}
	if noted.CompletedAt == nil || !noted.CompletedAt.Equal(completedAt) {
		t.Fatalf("completed_at latch broken by metadata edit: %v", noted.CompletedAt)
	}
	if noted.Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", noted.Attempts)
	}
}

func TestProgressService_List(t *testing.T) {
	svc, userID := newTestProgressService(t)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, userID, "two-sum", domain.ProgressPatch{}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if _, err := svc.Upsert(ctx, userID, "valid-parentheses", domain.ProgressPatch{
		Status: statusPtr(domain.StatusCompleted),
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	entries, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Title == "" {
			t.Fatalf("entry missing joined algorithm title: %+v", e)
		}
	}
}

func TestProgressService_Stats(t *testing.T) {
	svc, userID := newTestProgressService(t)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, userID, "two-sum", domain.ProgressPatch{
		Status: statusPtr(domain.StatusCompleted),
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if _, err := svc.Upsert(ctx, userID, "maximum-subarray", domain.ProgressPatch{}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	stats, err := svc.Stats(ctx, userID)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Overview.TotalAttempted != 2 {
		t.Fatalf("expected 2 attempted, got %d", stats.Overview.TotalAttempted)
	}
	if stats.Overview.Completed != 1 {
		t.Fatalf("expected 1 completed, got %d", stats.Overview.Completed)
	}
}
