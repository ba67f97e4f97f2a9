package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// ResumeProfile is the structured output of resume extraction. Skills are
// raw names; the caller canonicalizes them against its taxonomy.
type ResumeProfile struct {
	Name            string   `json:"name"`
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years"`
	Degrees         []string `json:"degrees"`
}

// ParseResume extracts a candidate profile from raw resume text using the
// ResumeProfile schema. An extraction that yields no skills is treated as a
// failure so callers fall back to rule-based extraction.
func ParseResume(ctx context.Context, client Client, text string) (*ResumeProfile, error) {
	prompt := BuildExtractionPrompt(ResumeProfileSchema(), text)

	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("resume extraction failed: %w", err)
	}

	var profile ResumeProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to parse extraction output: %w", err)
	}
	if len(profile.Skills) == 0 {
		return nil, fmt.Errorf("extraction returned no skills")
	}

	return &profile, nil
}
