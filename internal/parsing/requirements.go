package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// experiencePatterns match stated years-of-experience requirements in job
// descriptions, most specific first.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*of\s*experience`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*experience`),
	regexp.MustCompile(`minimum\s*(?:of\s*)?(\d+)\s*years?`),
	regexp.MustCompile(`at\s*least\s*(\d+)\s*years?`),
}

// ExtractRequiredYears scans a job description for a stated
// years-of-experience requirement. The second return is false when the text
// states none.
func ExtractRequiredYears(description string) (int, bool) {
	lower := strings.ToLower(description)
	for _, pattern := range experiencePatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years, true
			}
		}
	}
	return 0, false
}

var (
	seniorKeywords = []string{"senior", "lead", "principal", "architect", "manager", "director", "staff"}
	entryKeywords  = []string{"junior", "entry", "graduate", "intern", "trainee", "associate"}
)

// DetectSeniority infers a job's seniority level from its title and
// description. Senior signals win over entry signals; text with neither
// reads as mid_level.
func DetectSeniority(title, description string) types.SeniorityLevel {
	text := strings.ToLower(title + " " + description)

	for _, keyword := range seniorKeywords {
		if strings.Contains(text, keyword) {
			return types.SeniorLevel
		}
	}
	for _, keyword := range entryKeywords {
		if strings.Contains(text, keyword) {
			return types.EntryLevel
		}
	}
	return types.MidLevel
}

// degreeSignals maps canonical degree keywords to the textual hints that
// indicate a posting requires them.
var degreeSignals = []struct {
	degree string
	hints  []string
}{
	{"doctorate", []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{"master", []string{"master", "m.s.", "m.a.", "msc", "mba"}},
	{"bachelor", []string{"bachelor", "b.s.", "b.a.", "bsc", "undergraduate degree"}},
}

// DetectDegreeRequirement finds the highest degree level a job description
// asks for. The second return is false when no degree requirement is
// detectable, in which case education scoring credits any education present.
func DetectDegreeRequirement(description string) (string, bool) {
	lower := strings.ToLower(description)
	for _, signal := range degreeSignals {
		for _, hint := range signal.hints {
			if strings.Contains(lower, hint) {
				return signal.degree, true
			}
		}
	}
	return "", false
}

// HighestDegreeRank returns the best degree rank among a candidate's
// education entries (0 when none are recognized).
func HighestDegreeRank(education []types.Education) int {
	best := 0
	for _, entry := range education {
		degree := strings.ToLower(entry.Degree)
		for _, signal := range []string{"phd", "doctorate", "master", "bachelor", "associate", "diploma", "certificate"} {
			if strings.Contains(degree, signal) {
				if rank := types.DegreeRank(signal); rank > best {
					best = rank
				}
			}
		}
	}
	return best
}
