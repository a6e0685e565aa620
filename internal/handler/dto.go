package handler

import (
	"time"

	"github.com/dkoval/algotrack/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// CategoryDTO is the JSON representation of a category.
type CategoryDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toCategoryDTOs(categories []domain.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = CategoryDTO{ID: c.ID, Name: c.Name, Description: c.Description}
	}
	return dtos
}

// AlgorithmSummaryDTO is the list-view representation of an algorithm.
type AlgorithmSummaryDTO struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
}

func toAlgorithmSummaryDTO(a domain.Algorithm) AlgorithmSummaryDTO {
	return AlgorithmSummaryDTO{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Description: a.Description,
		Difficulty:  string(a.Difficulty),
		Category:    categoryLabel(a.CategoryName),
		Tags:        a.Tags,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}

func toAlgorithmSummaryDTOs(algorithms []domain.Algorithm) []AlgorithmSummaryDTO {
	dtos := make([]AlgorithmSummaryDTO, len(algorithms))
	for i, a := range algorithms {
		dtos[i] = toAlgorithmSummaryDTO(a)
	}
	return dtos
}

// TestCaseDTO is the JSON representation of an example test case.
type TestCaseDTO struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}

// AlgorithmDTO is the detail-view representation of an algorithm.
// Only example test cases are exposed; hidden cases stay server-side.
type AlgorithmDTO struct {
	AlgorithmSummaryDTO
	ProblemStatement string        `json:"problemStatement"`
	ExampleInput     string        `json:"exampleInput"`
	ExampleOutput    string        `json:"exampleOutput"`
	Constraints      string        `json:"constraints"`
	TimeComplexity   string        `json:"timeComplexity"`
	SpaceComplexity  string        `json:"spaceComplexity"`
	SolutionTemplate string        `json:"solutionTemplate"`
	Explanation      string        `json:"explanation"`
	Hints            []string      `json:"hints"`
	TestCases        []TestCaseDTO `json:"testCases"`
}

func toAlgorithmDTO(a *domain.Algorithm) AlgorithmDTO {
	cases := make([]TestCaseDTO, 0, len(a.TestCases))
	for _, tc := range a.TestCases {
		if tc.IsExample {
			cases = append(cases, TestCaseDTO{Input: tc.Input, ExpectedOutput: tc.ExpectedOutput})
		}
	}
	return AlgorithmDTO{
		AlgorithmSummaryDTO: toAlgorithmSummaryDTO(*a),
		ProblemStatement:    a.ProblemStatement,
		ExampleInput:        a.ExampleInput,
		ExampleOutput:       a.ExampleOutput,
		Constraints:         a.Constraints,
		TimeComplexity:      a.TimeComplexity,
		SpaceComplexity:     a.SpaceComplexity,
		SolutionTemplate:    a.SolutionTemplate,
		Explanation:         a.Explanation,
		Hints:               a.Hints,
		TestCases:           cases,
	}
}

// ProgressDTO is the JSON representation of one progress record.
type ProgressDTO struct {
	AlgorithmID   int64   `json:"algorithmId"`
	Status        string  `json:"status"`
	Attempts      int     `json:"attempts"`
	LastAttemptAt string  `json:"lastAttemptAt"`
	CompletedAt   *string `json:"completedAt"`
	UserSolution  string  `json:"userSolution"`
	Notes         string  `json:"notes"`
	UpdatedAt     string  `json:"updatedAt"`
}

func toProgressDTO(rec *domain.ProgressRecord) ProgressDTO {
	dto := ProgressDTO{
		AlgorithmID:   rec.AlgorithmID,
		Status:        string(rec.Status),
		Attempts:      rec.Attempts,
		LastAttemptAt: rec.LastAttemptAt.Format(time.RFC3339),
		UserSolution:  rec.UserSolution,
		Notes:         rec.Notes,
		UpdatedAt:     rec.UpdatedAt.Format(time.RFC3339),
	}
	if rec.CompletedAt != nil {
		t := rec.CompletedAt.Format(time.RFC3339)
		dto.CompletedAt = &t
	}
	return dto
}

// ProgressEntryDTO is a progress record joined with its algorithm, for
// the user's history list.
type ProgressEntryDTO struct {
	ProgressDTO
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	Difficulty string  `json:"difficulty"`
	Category   *string `json:"category"`
}

func toProgressEntryDTOs(entries []domain.ProgressEntry) []ProgressEntryDTO {
	dtos := make([]ProgressEntryDTO, len(entries))
	for i := range entries {
		e := &entries[i]
		dtos[i] = ProgressEntryDTO{
			ProgressDTO: toProgressDTO(&e.ProgressRecord),
			Title:       e.Title,
			Slug:        e.Slug,
			Difficulty:  string(e.Difficulty),
			Category:    categoryLabel(e.CategoryName),
		}
	}
	return dtos
}

// OverviewDTO is the top-level progress rollup.
type OverviewDTO struct {
	TotalAttempted int `json:"totalAttempted"`
	Completed      int `json:"completed"`
	InProgress     int `json:"inProgress"`
	Review         int `json:"review"`
}

// GroupStatsDTO is one difficulty or category bucket. Category is null
// for records whose algorithm has no category.
type GroupStatsDTO struct {
	Label     *string `json:"label"`
	Attempted int     `json:"attempted"`
	Completed int     `json:"completed"`
}

// StatsDTO is the full derived progress summary.
type StatsDTO struct {
	Overview     OverviewDTO     `json:"overview"`
	ByDifficulty []GroupStatsDTO `json:"byDifficulty"`
	ByCategory   []GroupStatsDTO `json:"byCategory"`
}

func toStatsDTO(s *domain.StatsSnapshot) StatsDTO {
	return StatsDTO{
		Overview: OverviewDTO{
			TotalAttempted: s.Overview.TotalAttempted,
			Completed:      s.Overview.Completed,
			InProgress:     s.Overview.InProgress,
			Review:         s.Overview.Review,
		},
		ByDifficulty: toGroupStatsDTOs(s.ByDifficulty),
		ByCategory:   toGroupStatsDTOs(s.ByCategory),
	}
}

func toGroupStatsDTOs(groups []domain.GroupStats) []GroupStatsDTO {
	dtos := make([]GroupStatsDTO, len(groups))
	for i, g := range groups {
		dtos[i] = GroupStatsDTO{
			Label:     categoryLabel(g.Label),
			Attempted: g.Attempted,
			Completed: g.Completed,
		}
	}
	return dtos
}

// DifficultyCountDTO is the catalog size at one difficulty level.
type DifficultyCountDTO struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

func toDifficultyCountDTOs(counts []domain.DifficultyCount) []DifficultyCountDTO {
	dtos := make([]DifficultyCountDTO, len(counts))
	for i, c := range counts {
		dtos[i] = DifficultyCountDTO{Difficulty: string(c.Difficulty), Count: c.Count}
	}
	return dtos
}

// categoryLabel maps the empty string to a JSON null.
func categoryLabel(name string) *string {
	if name == "" {
		return nil
	}
	return &name
}
