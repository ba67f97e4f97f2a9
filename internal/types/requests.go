package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RankRequest asks the server to score candidates against one job. The job
// and candidates may be given inline or referenced by stored IDs; inline
// values win when both are present.
type RankRequest struct {
	JobID        uuid.UUID          `json:"job_id,omitempty"`
	Job          *JobProfile        `json:"job,omitempty"`
	CandidateIDs []uuid.UUID        `json:"candidate_ids,omitempty"`
	Candidates   []CandidateProfile `json:"candidates,omitempty"`

	// Save persists the result set as a match report when the job is stored.
	Save bool `json:"save,omitempty"`
}

// Validate checks that the request names a job and that inline candidates
// carry something to match on. An empty candidate list is allowed and ranks
// to an empty result.
func (r *RankRequest) Validate() error {
	if r.Job == nil && r.JobID == uuid.Nil {
		return fmt.Errorf("either job or job_id is required")
	}
	for i, c := range r.Candidates {
		if c.ResumeText == "" && c.Skills.Total() == 0 {
			return fmt.Errorf("candidate %d: resume_text or skills is required", i)
		}
	}
	return nil
}

// RecommendJobsRequest asks for the best-matching stored jobs for one
// candidate.
type RecommendJobsRequest struct {
	CandidateID uuid.UUID         `json:"candidate_id,omitempty"`
	Candidate   *CandidateProfile `json:"candidate,omitempty"`
	TopN        int               `json:"top_n,omitempty" validate:"gte=0"`
}

// Validate checks that the request names a candidate.
func (r *RecommendJobsRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.Candidate == nil && r.CandidateID == uuid.Nil {
		return fmt.Errorf("either candidate or candidate_id is required")
	}
	return nil
}

// GapRequest asks for a skill-gap analysis toward a target domain and level.
// Skills may be supplied directly, extracted from resume text, or loaded from
// a stored candidate.
type GapRequest struct {
	CandidateID uuid.UUID `json:"candidate_id,omitempty"`
	Skills      []string  `json:"skills,omitempty"`
	ResumeText  string    `json:"resume_text,omitempty"`

	TargetDomain    string         `json:"target_domain,omitempty"`
	TargetLevel     SeniorityLevel `json:"target_level,omitempty"`
	TimeframeMonths int            `json:"timeframe_months,omitempty" validate:"gte=0"`
}

// Validate checks that the request carries at least one skill source.
func (r *GapRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if len(r.Skills) == 0 && r.ResumeText == "" && r.CandidateID == uuid.Nil {
		return fmt.Errorf("skills, resume_text, or candidate_id is required")
	}
	return nil
}

// CareerRequest asks for a full career recommendation for one candidate.
type CareerRequest struct {
	CandidateID uuid.UUID         `json:"candidate_id,omitempty"`
	Candidate   *CandidateProfile `json:"candidate,omitempty"`
}

// Validate checks that the request names a candidate.
func (r *CareerRequest) Validate() error {
	if r.Candidate == nil && r.CandidateID == uuid.Nil {
		return fmt.Errorf("either candidate or candidate_id is required")
	}
	return nil
}

// CreateJobRequest creates a stored job, either from inline fields or by
// fetching and parsing a posting URL.
type CreateJobRequest struct {
	Title                   string         `json:"title,omitempty"`
	Description             string         `json:"description,omitempty"`
	RequiredSkills          []string       `json:"required_skills,omitempty"`
	SeniorityLevel          SeniorityLevel `json:"seniority_level,omitempty"`
	ExperienceYearsRequired *int           `json:"experience_years_required,omitempty"`

	// JobURL, when set, is fetched and parsed instead of the inline fields.
	JobURL string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// Validate checks that the request is either inline or URL-based, not both.
func (r *CreateJobRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.JobURL != "" {
		if r.Title != "" || r.Description != "" {
			return fmt.Errorf("job_url and inline job fields are mutually exclusive")
		}
		return nil
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Description == "" && len(r.RequiredSkills) == 0 {
		return fmt.Errorf("description or required_skills is required")
	}
	return nil
}

// CreateCandidateRequest creates a stored candidate profile.
type CreateCandidateRequest struct {
	Name            string      `json:"name,omitempty"`
	ResumeText      string      `json:"resume_text,omitempty"`
	Skills          SkillSet    `json:"skills,omitempty"`
	Education       []Education `json:"education,omitempty"`
	ExperienceYears *int        `json:"experience_years,omitempty"`
}

// Validate checks that the candidate has something to match on.
func (r *CreateCandidateRequest) Validate() error {
	if r.ResumeText == "" && r.Skills.Total() == 0 {
		return fmt.Errorf("resume_text or skills is required")
	}
	return nil
}
