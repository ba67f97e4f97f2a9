package matching

// Defaults used when experience information is missing. The requirement
// being unknown is treated more charitably than the candidate's own
// experience being unknown.
const (
	unknownRequirementScore = 0.7
	unknownCandidateScore   = 0.3
)

// maxExcessRatio caps the bonus for exceeding the requirement at 2x.
const maxExcessRatio = 2.0

// ExperienceMatch scores candidate years against a job's requirement. Nil
// means unknown on either side and degrades to the documented defaults
// rather than erroring.
func ExperienceMatch(candidateYears, requiredYears *int) float64 {
	if requiredYears == nil {
		return unknownRequirementScore
	}
	if candidateYears == nil {
		return unknownCandidateScore
	}

	required := *requiredYears
	candidate := *candidateYears
	if candidate < 0 {
		candidate = 0
	}
	if required <= 0 {
		// A zero-year requirement is trivially met.
		return 1.0
	}

	if candidate >= required {
		excessRatio := float64(candidate) / float64(required)
		if excessRatio > maxExcessRatio {
			excessRatio = maxExcessRatio
		}
		return clamp01(0.8 + (excessRatio-1.0)*0.2)
	}

	return clamp01(float64(candidate) / float64(required))
}
