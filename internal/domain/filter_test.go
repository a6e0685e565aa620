package domain_test

import (
	"testing"

	"github.com/dkoval/algotrack/internal/domain"
)

// fixture returns three algorithms covering two difficulties and two
// categories, for exercising filter combinations without a database.
func fixture() []domain.Algorithm {
	return []domain.Algorithm{
		{
			Title:        "Two Sum",
			Description:  "Find two numbers in an array that add up to a target sum.",
			Difficulty:   domain.DifficultyEasy,
			CategoryName: "Array",
		},
		{
			Title:        "Trapping Rain Water",
			Description:  "Compute how much water can be trapped between bars.",
			Difficulty:   domain.DifficultyHard,
			CategoryName: "Array",
		},
		{
			Title:        "Valid Parentheses",
			Description:  "Determine if a string of parentheses is valid.",
			Difficulty:   domain.DifficultyEasy,
			CategoryName: "Stack",
		},
	}
}

func applyFilter(f domain.FilterSpec, algs []domain.Algorithm) []string {
	var titles []string
	for _, a := range algs {
		if f.Matches(a) {
			titles = append(titles, a.Title)
		}
	}
	return titles
}

func assertTitles(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d matches %v, got %d %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected match %d to be %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFilterSpec_Empty_MatchesAll(t *testing.T) {
	got := applyFilter(domain.FilterSpec{}, fixture())
	assertTitles(t, got, []string{"Two Sum", "Trapping Rain Water", "Valid Parentheses"})
}

func TestFilterSpec_DifficultyOnly(t *testing.T) {
	got := applyFilter(domain.FilterSpec{Difficulty: domain.DifficultyEasy}, fixture())
	assertTitles(t, got, []string{"Two Sum", "Valid Parentheses"})
}

func TestFilterSpec_CategoryOnly(t *testing.T) {
	got := applyFilter(domain.FilterSpec{Category: "Array"}, fixture())
	assertTitles(t, got, []string{"Two Sum", "Trapping Rain Water"})
}

func TestFilterSpec_CategoryIsCaseSensitive(t *testing.T) {
	got := applyFilter(domain.FilterSpec{Category: "array"}, fixture())
	assertTitles(t, got, nil)
}

func TestFilterSpec_SearchIsCaseInsensitive(t *testing.T) {
	got := applyFilter(domain.FilterSpec{Search: "SUM"}, fixture())
	assertTitles(t, got, []string{"Two Sum"})
}

func TestFilterSpec_SearchMatchesDescription(t *testing.T) {
	// "parentheses" appears in both the title and description of Valid
	// Parentheses and nowhere else; "trapped" only in a description.
	got := applyFilter(domain.FilterSpec{Search: "trapped"}, fixture())
	assertTitles(t, got, []string{"Trapping Rain Water"})
}

func TestFilterSpec_Conjunction(t *testing.T) {
	got := applyFilter(domain.FilterSpec{
		Difficulty: domain.DifficultyEasy,
		Category:   "Array",
	}, fixture())
	assertTitles(t, got, []string{"Two Sum"})
}

func TestFilterSpec_NoMatchIsEmptyNotError(t *testing.T) {
	got := applyFilter(domain.FilterSpec{
		Difficulty: domain.DifficultyMedium,
	}, fixture())
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestFilterSpec_Predicates_Order(t *testing.T) {
	f := domain.FilterSpec{
		Difficulty: domain.DifficultyHard,
		Category:   "Array",
		Search:     "water",
	}
	preds := f.Predicates()
	if len(preds) != 3 {
		t.Fatalf("expected 3 predicates, got %d", len(preds))
	}
	kinds := []domain.PredicateKind{
		domain.PredicateDifficultyEquals,
		domain.PredicateCategoryEquals,
		domain.PredicateTextContains,
	}
	for i, k := range kinds {
		if preds[i].Kind != k {
			t.Fatalf("predicate %d: expected kind %d, got %d", i, k, preds[i].Kind)
		}
	}
}

func TestFilterSpec_Predicates_EmptySpec(t *testing.T) {
	if preds := (domain.FilterSpec{}).Predicates(); preds != nil {
		t.Fatalf("expected nil predicates for empty spec, got %v", preds)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []domain.Status{
		domain.StatusNotStarted, domain.StatusInProgress,
		domain.StatusCompleted, domain.StatusReview,
	} {
		if !domain.ValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if domain.ValidStatus("done") {
		t.Fatal("expected 'done' to be invalid")
	}
	if domain.ValidStatus("") {
		t.Fatal("expected empty status to be invalid")
	}
}

func TestValidDifficulty(t *testing.T) {
	if !domain.ValidDifficulty(domain.DifficultyMedium) {
		t.Fatal("expected Medium to be valid")
	}
	if domain.ValidDifficulty("easy") {
		t.Fatal("difficulty values are case-sensitive; 'easy' should be invalid")
	}
}
