package counseling

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
)

// DefaultTimeframeMonths is the learning-path horizon used when the caller
// does not supply one.
const DefaultTimeframeMonths = 6

// hoursPerSkill is the fixed study-time estimate per skill in a phase.
const hoursPerSkill = 40

// maxMilestonesPerPhase caps milestone lists so phases stay readable.
const maxMilestonesPerPhase = 6

// Counselor performs skill-gap analysis and career recommendations. It
// holds only immutable reference tables and is safe for concurrent use.
type Counselor struct {
	taxonomy *taxonomy.Taxonomy
	advisor  Advisor // optional; nil disables AI narration
}

// NewCounselor builds a Counselor over the given taxonomy. advisor may be
// nil; gap analysis never depends on it.
func NewCounselor(tax *taxonomy.Taxonomy, advisor Advisor) *Counselor {
	return &Counselor{taxonomy: tax, advisor: advisor}
}

// normalizeLevel maps caller-supplied level strings onto the reference
// table, falling back to mid_level for unknown values so analysis stays
// available.
func normalizeLevel(level types.SeniorityLevel) types.SeniorityLevel {
	if _, ok := levelRequirements[level]; ok {
		return level
	}
	return types.MidLevel
}

// normalizeDomain maps caller-supplied domains onto the reference tables,
// defaulting to software_development.
func normalizeDomain(domain string) string {
	if _, ok := careerPaths[domain]; ok {
		return domain
	}
	return DomainSoftwareDevelopment
}

// AnalyzeGap computes the skill gaps between a candidate's current skills
// and the reference requirements of a target domain and level, including a
// 0-100 readiness score and a phased learning path over the default
// timeframe.
func (c *Counselor) AnalyzeGap(candidateSkills types.SkillSet, targetDomain string, targetLevel types.SeniorityLevel) *types.SkillGapReport {
	domain := normalizeDomain(targetDomain)
	level := normalizeLevel(targetLevel)
	requirement := levelRequirements[level]

	currentTotal := candidateSkills.Total()

	// Per key area: gap against an even split of the level's minimum,
	// never recommending fewer than 3 skills per area.
	recommendedPerArea := 3
	if len(requirement.KeyAreas) > 0 {
		if split := requirement.MinSkills / len(requirement.KeyAreas); split > recommendedPerArea {
			recommendedPerArea = split
		}
	}

	var areaGaps []types.CategoryGap
	for _, area := range requirement.KeyAreas {
		current := candidateSkills.Count(area)
		if current >= recommendedPerArea {
			continue
		}
		areaGaps = append(areaGaps, types.CategoryGap{
			Category:    area,
			Current:     current,
			Recommended: recommendedPerArea,
			Gap:         recommendedPerArea - current,
		})
	}

	// Largest gap first; ties ordered by category name for determinism.
	sort.SliceStable(areaGaps, func(i, j int) bool {
		if areaGaps[i].Gap != areaGaps[j].Gap {
			return areaGaps[i].Gap > areaGaps[j].Gap
		}
		return areaGaps[i].Category < areaGaps[j].Category
	})

	totalGap := requirement.MinSkills - currentTotal
	if totalGap < 0 {
		totalGap = 0
	}

	report := &types.SkillGapReport{
		TargetDomain:      domain,
		TargetLevel:       level,
		TotalSkillGap:     totalGap,
		AreaGaps:          areaGaps,
		RecommendedSkills: c.recommendSkills(domain, level, candidateSkills),
		PriorityAreas:     requirement.KeyAreas,
		ReadinessScore:    readiness(currentTotal, requirement.MinSkills),
	}
	report.LearningPath = c.GenerateLearningPath(report, DefaultTimeframeMonths)
	return report
}

// readiness measures closeness to the level's minimum skill count in
// [0,100]. A zero minimum (malformed table) is defined as fully ready
// rather than a division error.
func readiness(currentTotal, minSkills int) float64 {
	if minSkills <= 0 {
		return 100
	}
	score := float64(currentTotal) / float64(minSkills) * 100
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// recommendSkills returns concrete skills to learn per category, preferring
// the domain/level recommendation table and falling back to taxonomy tokens
// the candidate does not already have.
func (c *Counselor) recommendSkills(domain string, level types.SeniorityLevel, candidateSkills types.SkillSet) types.SkillSet {
	recommended := types.SkillSet{}
	if byLevel, ok := recommendedSkills[domain]; ok {
		if skills, ok := byLevel[level]; ok {
			recommended = skills.Clone()
		}
	}

	// Fill categories the table does not cover from the taxonomy itself,
	// skipping skills the candidate already holds.
	held := make(map[string]bool)
	for _, skills := range candidateSkills {
		for _, skill := range skills {
			held[strings.ToLower(skill)] = true
		}
	}

	for _, category := range c.taxonomy.Categories() {
		if len(recommended[category.Name]) > 0 {
			continue
		}
		var fill []string
		for _, skill := range category.Skills {
			if held[strings.ToLower(skill)] {
				continue
			}
			fill = append(fill, strings.ToLower(skill))
			if len(fill) == 3 {
				break
			}
		}
		if len(fill) > 0 {
			recommended[category.Name] = fill
		}
	}
	return recommended
}

// GenerateLearningPath turns a gap report into ordered phases, one per
// gapped category largest-gap-first, splitting the timeframe evenly across
// phases.
func (c *Counselor) GenerateLearningPath(report *types.SkillGapReport, timeframeMonths int) []types.LearningPhase {
	if timeframeMonths <= 0 {
		timeframeMonths = DefaultTimeframeMonths
	}
	if len(report.AreaGaps) == 0 {
		return nil
	}

	monthsPerPhase := timeframeMonths / len(report.AreaGaps)
	if monthsPerPhase < 1 {
		monthsPerPhase = 1
	}

	phases := make([]types.LearningPhase, 0, len(report.AreaGaps))
	for i, gap := range report.AreaGaps {
		skills := report.RecommendedSkills[gap.Category]
		if len(skills) > gap.Gap {
			skills = skills[:gap.Gap]
		}

		phases = append(phases, types.LearningPhase{
			Phase:          i + 1,
			Timeframe:      fmt.Sprintf("Months %d-%d", i*monthsPerPhase+1, (i+1)*monthsPerPhase),
			FocusArea:      displayName(gap.Category),
			SkillsToLearn:  skills,
			EstimatedHours: len(skills) * hoursPerSkill,
			Resources:      resourcesFor(gap.Category),
			Milestones:     milestones(skills),
		})
	}
	return phases
}

// milestones generates up to maxMilestonesPerPhase learning checkpoints.
func milestones(skills []string) []string {
	var out []string
	for _, skill := range skills {
		out = append(out,
			fmt.Sprintf("Complete a basic %s tutorial", skill),
			fmt.Sprintf("Build a small project using %s", skill),
			fmt.Sprintf("Pass a %s assessment", skill),
		)
		if len(out) >= maxMilestonesPerPhase {
			return out[:maxMilestonesPerPhase]
		}
	}
	return out
}

// displayName renders a category name for humans ("cloud_devops" ->
// "Cloud Devops").
func displayName(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
