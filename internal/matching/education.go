package matching

import (
	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/types"
)

// noEducationScore applies when a candidate lists no education at all.
const noEducationScore = 0.3

// EducationMatch scores a candidate's education against a job's detected
// degree requirement. requiredDegree is a canonical degree keyword
// ("bachelor", "master", "doctorate"); hasRequirement is false when the job
// states none, in which case any education earns proportional credit.
func EducationMatch(education []types.Education, requiredDegree string, hasRequirement bool) float64 {
	if len(education) == 0 {
		return noEducationScore
	}

	highest := parsing.HighestDegreeRank(education)
	levelScore := float64(highest) / float64(types.MaxDegreeRank)

	if !hasRequirement {
		// No stated requirement: credit whatever education is present.
		return clamp01(levelScore + 0.3)
	}

	requiredRank := types.DegreeRank(requiredDegree)
	if requiredRank == 0 {
		// Unrecognized requirement keyword degrades to the no-requirement
		// policy instead of erroring.
		return clamp01(levelScore + 0.3)
	}

	if highest >= requiredRank {
		return 1.0
	}

	// Partial credit proportional to how close the candidate's highest
	// degree is to the requirement.
	return clamp01(float64(highest) / float64(requiredRank) * 0.7)
}
