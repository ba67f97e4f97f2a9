package counseling

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/types"
)

// IdentifyDomain infers the most likely career domain from categorized
// skill counts. Ties and empty skill sets resolve to software_development.
func IdentifyDomain(candidateSkills types.SkillSet) string {
	bestDomain := DomainSoftwareDevelopment
	bestScore := 0.0

	// Sorted iteration keeps tie-breaking deterministic.
	domains := make([]string, 0, len(domainSkillWeights))
	for domain := range domainSkillWeights {
		domains = append(domains, domain)
	}
	sort.Strings(domains)

	for _, domain := range domains {
		score := 0.0
		for category, weight := range domainSkillWeights[domain] {
			score += float64(candidateSkills.Count(category)) * weight
		}
		if score > bestScore {
			bestScore = score
			bestDomain = domain
		}
	}
	return bestDomain
}

// AssessLevel estimates a candidate's current career level from total skill
// count, experience years, and an education bonus (+1 for a bachelor's,
// +2 for a master's or above).
func AssessLevel(candidateSkills types.SkillSet, experienceYears *int, education []types.Education) types.SeniorityLevel {
	totalSkills := candidateSkills.Total()

	years := 0
	if experienceYears != nil && *experienceYears > 0 {
		years = *experienceYears
	}

	bonus := 0
	if rank := parsing.HighestDegreeRank(education); rank >= types.DegreeRank("master") {
		bonus = 2
	} else if rank >= types.DegreeRank("bachelor") {
		bonus = 1
	}
	adjusted := years + bonus

	switch {
	case totalSkills >= 20 && adjusted >= 8:
		return types.Specialist
	case totalSkills >= 12 && adjusted >= 7:
		return types.Management
	case totalSkills >= 15 && adjusted >= 5:
		return types.SeniorLevel
	case totalSkills >= 10 && adjusted >= 2:
		return types.MidLevel
	default:
		return types.EntryLevel
	}
}

// Recommend produces the full counseling output for a candidate: current
// standing, the next career step, gap analysis toward it, a learning path,
// market insight, and action items. When an Advisor is configured its
// narration is attached; advisor failures degrade to the rule-based output.
func (c *Counselor) Recommend(ctx context.Context, candidate types.CandidateProfile) *types.CareerRecommendation {
	skills := candidate.Skills
	if skills.Total() == 0 {
		skills = c.taxonomy.ExtractSkills(candidate.ResumeText)
	}

	domain := IdentifyDomain(skills)
	currentLevel := AssessLevel(skills, candidate.ExperienceYears, candidate.Education)
	nextLevel := currentLevel.Next()

	gapReport := c.AnalyzeGap(skills, domain, nextLevel)

	recommendation := &types.CareerRecommendation{
		Current: types.CareerAssessment{
			Domain:        domain,
			Level:         currentLevel,
			SuitableRoles: careerPaths[domain][currentLevel],
		},
		TargetLevel: nextLevel,
		TargetRoles: careerPaths[domain][nextLevel],
		GapReport:   gapReport,
		Industry:    industryFor(domain),
		ActionItems: actionItems(gapReport),
	}

	if c.advisor != nil {
		if guidance, err := c.advisor.NarrateGapReport(ctx, candidate.Name, gapReport); err == nil {
			recommendation.AIGuidance = guidance
		}
	}
	return recommendation
}

// industryFor returns market insight for a domain, with a neutral default
// for domains missing from the trends table.
func industryFor(domain string) types.IndustryInsight {
	if insight, ok := industryTrends[domain]; ok {
		return insight
	}
	return types.IndustryInsight{
		GrowthOutlook: "moderate",
		SalaryRange:   "varies",
		MarketDemand:  "moderate",
	}
}

// actionItems derives concrete next steps from a gap report.
func actionItems(report *types.SkillGapReport) []string {
	var items []string

	if report.TotalSkillGap > 0 {
		items = append(items, fmt.Sprintf("Focus on developing %d additional skills", report.TotalSkillGap))
	}
	if len(report.PriorityAreas) > 0 {
		names := make([]string, len(report.PriorityAreas))
		for i, area := range report.PriorityAreas {
			names[i] = displayName(area)
		}
		items = append(items, "Prioritize learning in: "+strings.Join(names, ", "))
	}
	if len(report.LearningPath) > 0 {
		first := report.LearningPath[0]
		if len(first.SkillsToLearn) > 0 {
			preview := first.SkillsToLearn
			if len(preview) > 3 {
				preview = preview[:3]
			}
			items = append(items, fmt.Sprintf("Start with %s: learn %s", first.FocusArea, strings.Join(preview, ", ")))
		}
	}

	switch {
	case report.ReadinessScore < 70:
		items = append(items, "Build more foundational skills before advancing")
	case report.ReadinessScore > 85:
		items = append(items, "You are ready to apply for advanced positions")
	}
	return items
}
