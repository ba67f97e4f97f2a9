// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// Subscores holds the per-component scores that make up an overall match
// score. Each value is in [0,1].
type Subscores struct {
	TextSimilarity  float64 `json:"text_similarity"`
	SkillMatch      float64 `json:"skill_match"`
	ExperienceMatch float64 `json:"experience_match"`
	EducationMatch  float64 `json:"education_match"`
}

// MatchResult is the explainable outcome of scoring one candidate against
// one job. Produced fresh per match call and never persisted by the engine.
type MatchResult struct {
	CandidateID uuid.UUID `json:"candidate_id"`

	// OverallScore is the weighted combination of the subscores, in [0,1].
	OverallScore float64   `json:"overall_score"`
	Subscores    Subscores `json:"subscores"`

	// SkillBreakdown holds the per-category skill match scores.
	SkillBreakdown map[string]float64 `json:"skill_breakdown"`

	// MatchingSkills and MissingSkills explain the skill subscore:
	// required skills the candidate has, and required skills they lack.
	MatchingSkills SkillSet `json:"matching_skills"`
	MissingSkills  SkillSet `json:"missing_skills"`
}

// JobMatch pairs a job with its match score for candidate-centric
// recommendations (one candidate scored against many jobs).
type JobMatch struct {
	JobID        uuid.UUID `json:"job_id"`
	Title        string    `json:"title"`
	OverallScore float64   `json:"overall_score"`
	Subscores    Subscores `json:"subscores"`
}
