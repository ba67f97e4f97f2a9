// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SeniorityLevel classifies a job or career stage.
type SeniorityLevel string

// Seniority levels recognized by the matching and counseling engines.
// EntryLevel, MidLevel and SeniorLevel drive the skill-match weight tables;
// Management and Specialist exist only as counseling targets.
const (
	EntryLevel  SeniorityLevel = "entry_level"
	MidLevel    SeniorityLevel = "mid_level"
	SeniorLevel SeniorityLevel = "senior_level"
	Management  SeniorityLevel = "management"
	Specialist  SeniorityLevel = "specialist"
)

// LevelProgression is the ordered career ladder used when recommending a
// candidate's next step.
var LevelProgression = []SeniorityLevel{EntryLevel, MidLevel, SeniorLevel, Management, Specialist}

// Next returns the level after l on the career ladder, or l itself when
// already at the top (or unknown).
func (l SeniorityLevel) Next() SeniorityLevel {
	for i, level := range LevelProgression {
		if level == l {
			if i+1 < len(LevelProgression) {
				return LevelProgression[i+1]
			}
			return l
		}
	}
	return l
}

// degreeRanks maps degree keywords to ordinal levels for comparison. Higher
// is more advanced. Keys are matched as substrings of lowercased degree text
// ("M.S. Computer Science" ranks as master via the master entry in Normalize).
var degreeRanks = map[string]int{
	"certificate": 1,
	"diploma":     2,
	"associate":   3,
	"bachelor":    4,
	"master":      5,
	"doctorate":   6,
	"phd":         6,
}

// DegreeRank returns the ordinal rank for a canonical degree keyword, or 0
// when the degree is unrecognized.
func DegreeRank(degree string) int {
	return degreeRanks[degree]
}

// MaxDegreeRank is the rank of the most advanced recognized degree.
const MaxDegreeRank = 6
