// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// SkillSet is a categorized skill collection keyed by taxonomy category name
// (e.g. "programming_languages" -> ["python", "go"]). Categories with no
// skills are absent from the map rather than present with empty slices.
type SkillSet map[string][]string

// Categories returns the category names present in the set, sorted for
// deterministic iteration.
func (s SkillSet) Categories() []string {
	categories := make([]string, 0, len(s))
	for category := range s {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Total returns the total number of skills across all categories.
func (s SkillSet) Total() int {
	total := 0
	for _, skills := range s {
		total += len(skills)
	}
	return total
}

// Count returns the number of skills in a single category (0 if absent).
func (s SkillSet) Count(category string) int {
	return len(s[category])
}

// Clone returns a deep copy of the skill set.
func (s SkillSet) Clone() SkillSet {
	if s == nil {
		return nil
	}
	clone := make(SkillSet, len(s))
	for category, skills := range s {
		copied := make([]string, len(skills))
		copy(copied, skills)
		clone[category] = copied
	}
	return clone
}
