// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// JobProfile represents a job posting as seen by the matching engine.
// It is derived once per matching run and treated as immutable during it.
type JobProfile struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`

	// RequiredSkills lists the posting's stated skill requirements.
	// Category membership is unknown until extraction against the taxonomy.
	RequiredSkills []string `json:"required_skills"`

	// SeniorityLevel is the posting's stated or inferred level. Unknown
	// values fall back to mid_level during scoring.
	SeniorityLevel SeniorityLevel `json:"seniority_level"`

	// ExperienceYearsRequired is the explicit years-of-experience
	// requirement, when the posting states one. Nil means "infer from the
	// description, or fall back to the unknown-requirement default".
	ExperienceYearsRequired *int `json:"experience_years_required,omitempty"`
}

// Education represents a single education entry on a candidate profile.
type Education struct {
	Degree string `json:"degree"` // free-form, e.g. "M.S." or "Bachelor of Science"
	Field  string `json:"field,omitempty"`
}

// CandidateProfile represents a candidate as supplied by the resume-storage
// collaborator. The matching engine never mutates it.
type CandidateProfile struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name,omitempty"`
	ResumeText string      `json:"resume_text"`
	Skills     SkillSet    `json:"skills,omitempty"`
	Education  []Education `json:"education,omitempty"`

	// ExperienceYears is nil when the extraction collaborator could not
	// determine it; scoring then uses the unknown-candidate default.
	ExperienceYears *int `json:"experience_years,omitempty"`
}
