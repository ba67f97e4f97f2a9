// Package matching implements candidate-job match scoring: categorical skill
// matching, experience and education heuristics, and the composite ranker.
package matching

import (
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Composite score component weights. Policy constants, not correctness
// requirements; they must sum to 1.0 (verified in tests).
const (
	skillWeight      = 0.40
	experienceWeight = 0.25
	textWeight       = 0.20
	educationWeight  = 0.15
)

// seniorityWeights holds per-category skill importance for each job level.
// Senior roles shift weight toward cloud/devops and soft skills relative to
// entry roles. Each table sums to 1.0 (verified in tests).
var seniorityWeights = map[types.SeniorityLevel]map[string]float64{
	types.EntryLevel: {
		taxonomy.ProgrammingLanguages: 0.30,
		taxonomy.FrameworksLibraries:  0.20,
		taxonomy.Databases:            0.15,
		taxonomy.CloudDevops:          0.10,
		taxonomy.SoftSkills:           0.20,
		taxonomy.ToolsTechnologies:    0.05,
	},
	types.MidLevel: {
		taxonomy.ProgrammingLanguages: 0.25,
		taxonomy.FrameworksLibraries:  0.25,
		taxonomy.Databases:            0.20,
		taxonomy.CloudDevops:          0.15,
		taxonomy.SoftSkills:           0.10,
		taxonomy.ToolsTechnologies:    0.05,
	},
	types.SeniorLevel: {
		taxonomy.ProgrammingLanguages: 0.20,
		taxonomy.FrameworksLibraries:  0.20,
		taxonomy.Databases:            0.15,
		taxonomy.CloudDevops:          0.20,
		taxonomy.SoftSkills:           0.15,
		taxonomy.ToolsTechnologies:    0.10,
	},
}

// weightsForLevel returns the weight table for a seniority level. Unknown
// levels fall back to mid_level so scoring stays available.
func weightsForLevel(level types.SeniorityLevel) map[string]float64 {
	if weights, ok := seniorityWeights[level]; ok {
		return weights
	}
	return seniorityWeights[types.MidLevel]
}

// SeniorityWeights exposes a copy of the weight table for a level, for
// callers that want to explain scoring.
func SeniorityWeights(level types.SeniorityLevel) map[string]float64 {
	weights := weightsForLevel(level)
	out := make(map[string]float64, len(weights))
	for category, weight := range weights {
		out[category] = weight
	}
	return out
}

// CompositeWeights returns the component weights used for the overall score.
func CompositeWeights() types.Subscores {
	return types.Subscores{
		SkillMatch:      skillWeight,
		ExperienceMatch: experienceWeight,
		TextSimilarity:  textWeight,
		EducationMatch:  educationWeight,
	}
}
