package domain

import "strings"

// FilterSpec carries the optional criteria for a catalog search. A zero
// value matches everything. Criteria are independent and combined with
// logical AND.
type FilterSpec struct {
	Difficulty Difficulty // exact match when non-empty
	Category   string     // exact, case-sensitive category name when non-empty
	Search     string     // case-insensitive substring of title or description
}

// PredicateKind tags the variants a filter predicate can take.
type PredicateKind int

const (
	PredicateDifficultyEquals PredicateKind = iota
	PredicateCategoryEquals
	PredicateTextContains
)

// Predicate is one concrete filter condition. Storage layers translate
// predicates into their native query form; Matches evaluates the same
// condition in memory.
type Predicate struct {
	Kind  PredicateKind
	Value string
}

// Predicates expands the spec into its active predicates, in a fixed
// order. An empty spec yields nil.
func (f FilterSpec) Predicates() []Predicate {
	var preds []Predicate
	if f.Difficulty != "" {
		preds = append(preds, Predicate{Kind: PredicateDifficultyEquals, Value: string(f.Difficulty)})
	}
	if f.Category != "" {
		preds = append(preds, Predicate{Kind: PredicateCategoryEquals, Value: f.Category})
	}
	if f.Search != "" {
		preds = append(preds, Predicate{Kind: PredicateTextContains, Value: f.Search})
	}
	return preds
}

// Matches evaluates a single predicate against an algorithm.
func (p Predicate) Matches(alg Algorithm) bool {
	switch p.Kind {
	case PredicateDifficultyEquals:
		return string(alg.Difficulty) == p.Value
	case PredicateCategoryEquals:
		return alg.CategoryName == p.Value
	case PredicateTextContains:
		needle := strings.ToLower(p.Value)
		return strings.Contains(strings.ToLower(alg.Title), needle) ||
			strings.Contains(strings.ToLower(alg.Description), needle)
	}
	return false
}

// Matches reports whether the algorithm satisfies every active predicate.
func (f FilterSpec) Matches(alg Algorithm) bool {
	for _, p := range f.Predicates() {
		if !p.Matches(alg) {
			return false
		}
	}
	return true
}
