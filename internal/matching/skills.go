package matching

import (
	"sort"

	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Superset bonus applied when a candidate covers every required skill in a
// category; the boosted score is capped at 1.0, never unbounded.
const supersetBonus = 1.2

// neutralCategoryScore is credited for categories the job states no
// requirement in, so silence does not penalize candidates.
const neutralCategoryScore = 0.5

// SkillMatch computes the per-category Jaccard match between candidate and
// job-required skills, weighted by the seniority-level table. It returns the
// weighted overall score in [0,1] and the per-category breakdown.
func SkillMatch(candidateSkills, jobSkills types.SkillSet, level types.SeniorityLevel) (float64, map[string]float64) {
	weights := weightsForLevel(level)

	perCategory := make(map[string]float64, len(weights))
	overall := 0.0

	// Sorted iteration keeps the float summation order, and therefore the
	// score, identical across runs.
	categories := make([]string, 0, len(weights))
	for category := range weights {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		score := categoryScore(candidateSkills[category], jobSkills[category])
		perCategory[category] = score
		overall += score * weights[category]
	}

	return clamp01(overall), perCategory
}

// categoryScore scores one category: neutral when the job requires nothing,
// otherwise Jaccard with the bounded superset bonus.
func categoryScore(candidateSkills, requiredSkills []string) float64 {
	required := canonicalSet(requiredSkills)
	if len(required) == 0 {
		return neutralCategoryScore
	}

	candidate := canonicalSet(candidateSkills)

	intersection := 0
	for skill := range candidate {
		if required[skill] {
			intersection++
		}
	}
	union := len(candidate) + len(required) - intersection

	score := float64(intersection) / float64(union)
	if intersection == len(required) {
		// Candidate covers the whole requirement; extra breadth should not
		// be punished by the union term.
		score = score * supersetBonus
	}
	return clamp01(score)
}

// MatchingSkills returns, per required category, the required skills the
// candidate has. Categories with no overlap are absent.
func MatchingSkills(candidateSkills, jobSkills types.SkillSet) types.SkillSet {
	return overlap(candidateSkills, jobSkills, true)
}

// MissingSkills returns, per required category, the required skills the
// candidate lacks. Categories with nothing missing are absent.
func MissingSkills(candidateSkills, jobSkills types.SkillSet) types.SkillSet {
	return overlap(candidateSkills, jobSkills, false)
}

// overlap walks the job's required categories and splits each requirement
// into held vs missing skills.
func overlap(candidateSkills, jobSkills types.SkillSet, wantHeld bool) types.SkillSet {
	result := types.SkillSet{}
	for _, category := range jobSkills.Categories() {
		candidate := canonicalSet(candidateSkills[category])

		var selected []string
		for _, skill := range jobSkills[category] {
			canonical := parsing.NormalizeSkillName(skill)
			if candidate[canonical] == wantHeld {
				selected = append(selected, canonical)
			}
		}
		if len(selected) > 0 {
			sort.Strings(selected)
			result[category] = selected
		}
	}
	return result
}

// canonicalSet folds a skill list into a canonical lookup set.
func canonicalSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		if canonical := parsing.NormalizeSkillName(skill); canonical != "" {
			set[canonical] = true
		}
	}
	return set
}

// clamp01 bounds a score to [0,1].
func clamp01(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
