package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dkoval/algotrack/internal/domain"
	"github.com/dkoval/algotrack/internal/repository/sqlite"
)

func seedCategory(t *testing.T, db *sqlite.DB, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{Name: name, Description: name + " problems"}
	if err := db.Categories().Create(context.Background(), c); err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return c
}

func seedAlgorithm(t *testing.T, db *sqlite.DB, slug string, difficulty domain.Difficulty, categoryID *int64) *domain.Algorithm {
	t.Helper()
	alg := &domain.Algorithm{
		Title:            strings.ReplaceAll(slug, "-", " "),
		Slug:             slug,
		Description:      fmt.Sprintf("Description for %s.", slug),
		Difficulty:       difficulty,
		CategoryID:       categoryID,
		ProblemStatement: "Statement for " + slug,
	}
	if err := db.Algorithms().Create(context.Background(), alg); err != nil {
		t.Fatalf("create algorithm %s: %v", slug, err)
	}
	return alg
}

func TestAlgorithmRepository_Create_SetsFields(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	cat := seedCategory(t, db, "Array")
	alg := &domain.Algorithm{
		Title:            "Two Sum",
		Slug:             "two-sum",
		Description:      "Find two numbers in an array that add up to a target sum.",
		Difficulty:       domain.DifficultyEasy,
		CategoryID:       &cat.ID,
		ProblemStatement: "Given an array of integers...",
		TimeComplexity:   "O(n)",
		SpaceComplexity:  "O(n)",
		Hints:            []string{"Try a hash map"},
		Tags:             []string{"hash-map", "array"},
	}
	if err := db.Algorithms().Create(ctx, alg); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if alg.ID == 0 {
		t.Fatal("expected algorithm ID to be set")
	}

	found, err := db.Algorithms().GetBySlug(ctx, "two-sum")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if found.CategoryName != "Array" {
		t.Fatalf("expected joined category name 'Array', got %q", found.CategoryName)
	}
	if len(found.Hints) != 1 || found.Hints[0] != "Try a hash map" {
		t.Fatalf("expected hints round-trip, got %v", found.Hints)
	}
	if len(found.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", found.Tags)
	}
}

func TestAlgorithmRepository_Create_DuplicateSlug(t *testing.T) {
	db := newTestDB(t)

	seedAlgorithm(t, db, "dup-slug", domain.DifficultyEasy, nil)
	alg := &domain.Algorithm{
		Title: "Dup", Slug: "dup-slug", Description: "d",
		Difficulty: domain.DifficultyEasy, ProblemStatement: "s",
	}
	err := db.Algorithms().Create(context.Background(), alg)
	if !errors.Is(err, domain.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestAlgorithmRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Algorithms().GetByID(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAlgorithmRepository_GetBySlug_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Algorithms().GetBySlug(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// seedFilterFixture inserts the three-algorithm fixture used by the
// filter tests: Two Sum (Easy/Array), Trapping Rain Water (Hard/Array),
// Valid Parentheses (Easy/Stack).
func seedFilterFixture(t *testing.T, db *sqlite.DB) {
	t.Helper()
	ctx := context.Background()
	array := seedCategory(t, db, "Array")
	stack := seedCategory(t, db, "Stack")

	algs := []domain.Algorithm{
		{
			Title: "Two Sum", Slug: "two-sum",
			Description: "Find two numbers in an array that add up to a target sum.",
			Difficulty:  domain.DifficultyEasy, CategoryID: &array.ID,
			ProblemStatement: "s",
		},
		{
			Title: "Trapping Rain Water", Slug: "trapping-rain-water",
			Description: "Compute how much water can be trapped between bars.",
			Difficulty:  domain.DifficultyHard, CategoryID: &array.ID,
			ProblemStatement: "s",
		},
		{
			Title: "Valid Parentheses", Slug: "valid-parentheses",
			Description: "Determine if a string of parentheses is valid.",
			Difficulty:  domain.DifficultyEasy, CategoryID: &stack.ID,
			ProblemStatement: "s",
		},
	}
	for i := range algs {
		if err := db.Algorithms().Create(ctx, &algs[i]); err != nil {
			t.Fatalf("create %s: %v", algs[i].Slug, err)
		}
	}
}

func listSlugs(t *testing.T, db *sqlite.DB, filter domain.FilterSpec) []string {
	t.Helper()
	algs, err := db.Algorithms().List(context.Background(), filter)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	slugs := make([]string, len(algs))
	for i, a := range algs {
		slugs[i] = a.Slug
	}
	return slugs
}

func TestAlgorithmRepository_List_NoFilter_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	seedFilterFixture(t, db)

	slugs := listSlugs(t, db, domain.FilterSpec{})
	want := []string{"valid-parentheses", "trapping-rain-water", "two-sum"}
	if len(slugs) != len(want) {
		t.Fatalf("expected %d algorithms, got %v", len(want), slugs)
	}
	for i := range want {
		if slugs[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], slugs[i])
		}
	}
}

func TestAlgorithmRepository_List_ByDifficulty(t *testing.T) {
	db := newTestDB(t)
	seedFilterFixture(t, db)

	slugs := listSlugs(t, db, domain.FilterSpec{Difficulty: domain.DifficultyEasy})
	if len(slugs) != 2 {
		t.Fatalf("expected 2 Easy algorithms, got %v", slugs)
	}
}

func TestAlgorithmRepository_List_ByCategory(t *testing.T) {
	db := newTestDB(t)
	seedFilterFixture(t, db)

	slugs := listSlugs(t, db, domain.FilterSpec{Category: "Array"})
	if len(slugs) != 2 {
		t.Fatalf("expected 2 Array algorithms, got %v", slugs)
	}
}

func TestAlgorithmRepository_List_BySearch_CaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedFilterFixture(t, db)

	slugs := listSlugs(t, db, domain.FilterSpec{Search: "SUM"})
	if len(slugs) != 1 || slugs[0] != "two-sum" {
		t.Fatalf("expected [two-sum], got %v", slugs)
	}

	// Search also matches descriptions.
	slugs = listSlugs(t, db, domain.FilterSpec{Search: "trapped"})
	if len(slugs) != 1 || slugs[0] != "trapping-rain-water" {
		t.Fatalf("expected [trapping-rain-water], got %v", slugs)
	}
}

func TestAlgorithmRepository_List_Conjunction(t *testing.T) {
	db := newTestDB(t)
	seedFilterFixture(t, db)

	slugs := listSlugs(t, db, domain.FilterSpec{
		Difficulty: domain.DifficultyEasy,
		Category:   "Array",
	})
	if len(slugs) != 1 || slugs[0] != "two-sum" {
		t.Fatalf("expected [two-sum], got %v", slugs)
	}
}

func TestAlgorithmRepository_List_NoMatch(t *testing.T) {
	db := newTestDB(t)
	seedFilterFixture(t, db)

	slugs := listSlugs(t, db, domain.FilterSpec{Difficulty: domain.DifficultyMedium})
	if len(slugs) != 0 {
		t.Fatalf("expected empty result, got %v", slugs)
	}
}

func TestAlgorithmRepository_DifficultyCounts(t *testing.T) {
	db := newTestDB(t)
	seedFilterFixture(t, db)

	counts, err := db.Algorithms().DifficultyCounts(context.Background())
	if err != nil {
		t.Fatalf("DifficultyCounts: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 difficulty buckets, got %v", counts)
	}
	// Easy sorts before Hard.
	if counts[0].Difficulty != domain.DifficultyEasy || counts[0].Count != 2 {
		t.Fatalf("expected Easy=2 first, got %+v", counts[0])
	}
	if counts[1].Difficulty != domain.DifficultyHard || counts[1].Count != 1 {
		t.Fatalf("expected Hard=1 second, got %+v", counts[1])
	}
}

func TestAlgorithmRepository_TestCases(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alg := seedAlgorithm(t, db, "with-cases", domain.DifficultyEasy, nil)
	tc1 := &domain.TestCase{AlgorithmID: alg.ID, Input: "[2,7,11,15], 9", ExpectedOutput: "[0,1]", IsExample: true}
	tc2 := &domain.TestCase{AlgorithmID: alg.ID, Input: "[3,3], 6", ExpectedOutput: "[0,1]"}
	if err := db.Algorithms().AddTestCase(ctx, tc1); err != nil {
		t.Fatalf("AddTestCase tc1: %v", err)
	}
	if err := db.Algorithms().AddTestCase(ctx, tc2); err != nil {
		t.Fatalf("AddTestCase tc2: %v", err)
	}

	cases, err := db.Algorithms().TestCases(ctx, alg.ID)
	if err != nil {
		t.Fatalf("TestCases: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 test cases, got %d", len(cases))
	}
	if !cases[0].IsExample || cases[1].IsExample {
		t.Fatalf("expected example flag preserved in insertion order, got %+v", cases)
	}
}
