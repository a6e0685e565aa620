package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkoval/algotrack/internal/domain"
)

// defaultCategories are the topic buckets every deployment starts with.
var defaultCategories = []domain.Category{
	{Name: "Array", Description: "Array manipulation and traversal problems"},
	{Name: "String", Description: "String processing and manipulation"},
	{Name: "Linked List", Description: "Linked list operations and algorithms"},
	{Name: "Tree", Description: "Binary trees, BST, and tree traversal"},
	{Name: "Graph", Description: "Graph algorithms and traversal"},
	{Name: "Dynamic Programming", Description: "Optimization problems using DP"},
	{Name: "Sorting", Description: "Sorting algorithms and related problems"},
	{Name: "Searching", Description: "Binary search and search algorithms"},
	{Name: "Stack", Description: "Stack-based problems and algorithms"},
	{Name: "Queue", Description: "Queue and deque based problems"},
}

type seedAlgorithm struct {
	alg      domain.Algorithm
	category string
	cases    []domain.TestCase
}

func starterAlgorithms() []seedAlgorithm {
	return []seedAlgorithm{
		{
			category: "Array",
			alg: domain.Algorithm{
				Title:       "Two Sum",
				Slug:        "two-sum",
				Description: "Find two numbers in an array that add up to a target sum.",
				Difficulty:  domain.DifficultyEasy,
				ProblemStatement: "Given an array of integers nums and an integer target, " +
					"return indices of the two numbers such that they add up to target.\n\n" +
					"You may assume that each input would have exactly one solution, and you " +
					"may not use the same element twice.",
				ExampleInput:     "nums = [2,7,11,15], target = 9",
				ExampleOutput:    "[0,1]",
				Constraints:      "2 <= nums.length <= 10^4",
				TimeComplexity:   "O(n)",
				SpaceComplexity:  "O(n)",
				SolutionTemplate: "function twoSum(nums, target) {\n    // Your code here\n}",
				Explanation: "Store each number's index in a hash map; for every element check " +
					"whether its complement (target minus the element) was already seen.",
				Hints: []string{
					"Try using a hash map to store previously seen numbers",
					"Think about what number you need to find for each current number",
				},
				Tags: []string{"hash-map", "array"},
			},
			cases: []domain.TestCase{
				{Input: "[2,7,11,15], 9", ExpectedOutput: "[0,1]", IsExample: true},
				{Input: "[3,2,4], 6", ExpectedOutput: "[1,2]"},
				{Input: "[3,3], 6", ExpectedOutput: "[0,1]"},
			},
		},
		{
			category: "Stack",
			alg: domain.Algorithm{
				Title:       "Valid Parentheses",
				Slug:        "valid-parentheses",
				Description: "Determine if a string of parentheses is valid.",
				Difficulty:  domain.DifficultyEasy,
				ProblemStatement: "Given a string s containing just the characters '(', ')', '{', '}', " +
					"'[' and ']', determine if the input string is valid: open brackets must be closed " +
					"by the same type of bracket and in the correct order.",
				ExampleInput:     `s = "()[]{}"`,
				ExampleOutput:    "true",
				Constraints:      "1 <= s.length <= 10^4",
				TimeComplexity:   "O(n)",
				SpaceComplexity:  "O(n)",
				SolutionTemplate: "function isValid(s) {\n    // Your code here\n}",
				Explanation: "Push opening brackets onto a stack; on a closing bracket the top of the " +
					"stack must be its matching opener. The string is valid if the stack ends empty.",
				Hints: []string{"Think about a stack", "What should the stack look like at the end?"},
				Tags:  []string{"stack", "string"},
			},
			cases: []domain.TestCase{
				{Input: `"()[]{}"`, ExpectedOutput: "true", IsExample: true},
				{Input: `"(]"`, ExpectedOutput: "false"},
				{Input: `"([)]"`, ExpectedOutput: "false"},
			},
		},
		{
			category: "Linked List",
			alg: domain.Algorithm{
				Title:       "Reverse Linked List",
				Slug:        "reverse-linked-list",
				Description: "Reverse a singly linked list.",
				Difficulty:  domain.DifficultyEasy,
				ProblemStatement: "Given the head of a singly linked list, reverse the list and " +
					"return the new head.",
				ExampleInput:     "head = [1,2,3,4,5]",
				ExampleOutput:    "[5,4,3,2,1]",
				TimeComplexity:   "O(n)",
				SpaceComplexity:  "O(1)",
				SolutionTemplate: "function reverseList(head) {\n    // Your code here\n}",
				Explanation: "Walk the list keeping a previous pointer; redirect each node's next " +
					"link to the previous node as you go.",
				Hints: []string{"Keep track of the previous node while iterating"},
				Tags:  []string{"linked-list", "two-pointers"},
			},
			cases: []domain.TestCase{
				{Input: "[1,2,3,4,5]", ExpectedOutput: "[5,4,3,2,1]", IsExample: true},
				{Input: "[]", ExpectedOutput: "[]"},
			},
		},
		{
			category: "Dynamic Programming",
			alg: domain.Algorithm{
				Title:       "Maximum Subarray",
				Slug:        "maximum-subarray",
				Description: "Find the contiguous subarray with the largest sum.",
				Difficulty:  domain.DifficultyMedium,
				ProblemStatement: "Given an integer array nums, find the subarray with the largest " +
					"sum, and return its sum.",
				ExampleInput:     "nums = [-2,1,-3,4,-1,2,1,-5,4]",
				ExampleOutput:    "6",
				TimeComplexity:   "O(n)",
				SpaceComplexity:  "O(1)",
				SolutionTemplate: "function maxSubArray(nums) {\n    // Your code here\n}",
				Explanation: "Kadane's algorithm: carry a running sum, resetting it whenever it " +
					"drops below zero, and track the best sum seen.",
				Hints: []string{"A negative running sum never helps a later subarray"},
				Tags:  []string{"dynamic-programming", "array"},
			},
			cases: []domain.TestCase{
				{Input: "[-2,1,-3,4,-1,2,1,-5,4]", ExpectedOutput: "6", IsExample: true},
				{Input: "[1]", ExpectedOutput: "1"},
				{Input: "[5,4,-1,7,8]", ExpectedOutput: "23"},
			},
		},
	}
}

// SeedDefaults inserts the default categories and starter algorithms if
// they are not already present. Safe to run on every startup.
func (s *CatalogService) SeedDefaults(ctx context.Context) error {
	byName := make(map[string]int64)
	for _, c := range defaultCategories {
		existing, err := s.categories.GetByName(ctx, c.Name)
		if err == nil {
			byName[c.Name] = existing.ID
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check category %s: %w", c.Name, err)
		}

		created := c
		if err := s.categories.Create(ctx, &created); err != nil {
			return fmt.Errorf("seed category %s: %w", c.Name, err)
		}
		byName[c.Name] = created.ID
	}

	for _, seed := range starterAlgorithms() {
		_, err := s.algorithms.GetBySlug(ctx, seed.alg.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check algorithm %s: %w", seed.alg.Slug, err)
		}

		alg := seed.alg
		if id, ok := byName[seed.category]; ok {
			alg.CategoryID = &id
		}
		if err := s.algorithms.Create(ctx, &alg); err != nil {
			return fmt.Errorf("seed algorithm %s: %w", alg.Slug, err)
		}

		for _, tc := range seed.cases {
			tc.AlgorithmID = alg.ID
			if err := s.algorithms.AddTestCase(ctx, &tc); err != nil {
				return fmt.Errorf("seed test case for %s: %w", alg.Slug, err)
			}
		}
	}

	return nil
}
