package counseling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
)

func newTestCounselor() *Counselor {
	return NewCounselor(taxonomy.Default(), nil)
}

func broadSkillSet() types.SkillSet {
	return types.SkillSet{
		taxonomy.ProgrammingLanguages: {"python", "go", "java", "typescript", "sql"},
		taxonomy.FrameworksLibraries:  {"react", "django", "spring", "flask"},
		taxonomy.Databases:            {"postgresql", "mongodb", "redis"},
		taxonomy.CloudDevops:          {"aws", "docker", "kubernetes", "terraform"},
		taxonomy.SoftSkills:           {"communication", "leadership", "mentoring"},
		taxonomy.ToolsTechnologies:    {"git", "rest"},
	}
}

func TestAnalyzeGap_WellStockedCandidateAtEntryLevel(t *testing.T) {
	counselor := newTestCounselor()

	report := counselor.AnalyzeGap(broadSkillSet(), DomainSoftwareDevelopment, types.EntryLevel)

	assert.Equal(t, 100.0, report.ReadinessScore)
	assert.Zero(t, report.TotalSkillGap)
	assert.Empty(t, report.AreaGaps, "no area should be under-filled")
	assert.Empty(t, report.LearningPath, "nothing left to learn means no phases")
}

func TestAnalyzeGap_EmptySkillSetAtSeniorLevel(t *testing.T) {
	counselor := newTestCounselor()

	report := counselor.AnalyzeGap(types.SkillSet{}, DomainSoftwareDevelopment, types.SeniorLevel)

	assert.Equal(t, 0.0, report.ReadinessScore)
	assert.Equal(t, 15, report.TotalSkillGap)

	// Every key area of the senior profile is gapped.
	require.Len(t, report.AreaGaps, 4)
	for _, gap := range report.AreaGaps {
		assert.Zero(t, gap.Current)
		assert.Equal(t, gap.Recommended, gap.Gap)
	}

	// One phase per gapped area, largest gap first.
	require.Len(t, report.LearningPath, len(report.AreaGaps))
	for i := 1; i < len(report.AreaGaps); i++ {
		assert.GreaterOrEqual(t, report.AreaGaps[i-1].Gap, report.AreaGaps[i].Gap)
	}
	for i, phase := range report.LearningPath {
		assert.Equal(t, i+1, phase.Phase)
		assert.NotEmpty(t, phase.SkillsToLearn)
		assert.Equal(t, len(phase.SkillsToLearn)*hoursPerSkill, phase.EstimatedHours)
		assert.NotEmpty(t, phase.Resources)
		assert.LessOrEqual(t, len(phase.Milestones), maxMilestonesPerPhase)
	}
}

func TestAnalyzeGap_RecommendedPerAreaNeverBelowThree(t *testing.T) {
	counselor := newTestCounselor()

	// Entry level: 5 minimum skills over 2 key areas would split to 2,
	// but the floor of 3 per area applies.
	report := counselor.AnalyzeGap(types.SkillSet{}, DomainSoftwareDevelopment, types.EntryLevel)

	require.NotEmpty(t, report.AreaGaps)
	for _, gap := range report.AreaGaps {
		assert.Equal(t, 3, gap.Recommended)
	}
}

func TestAnalyzeGap_UnknownDomainAndLevelFallBack(t *testing.T) {
	counselor := newTestCounselor()

	report := counselor.AnalyzeGap(types.SkillSet{}, "underwater_basket_weaving", types.SeniorityLevel("galactic"))

	assert.Equal(t, DomainSoftwareDevelopment, report.TargetDomain)
	assert.Equal(t, types.MidLevel, report.TargetLevel)
}

func TestAnalyzeGap_ReadinessIsProportional(t *testing.T) {
	counselor := newTestCounselor()

	skills := types.SkillSet{
		taxonomy.ProgrammingLanguages: {"python", "go", "sql"},
		taxonomy.Databases:            {"postgresql", "redis"},
	}

	// 5 of 10 skills toward mid level.
	report := counselor.AnalyzeGap(skills, DomainSoftwareDevelopment, types.MidLevel)
	assert.InDelta(t, 50.0, report.ReadinessScore, 0.001)
	assert.Equal(t, 5, report.TotalSkillGap)
}

func TestAnalyzeGap_RecommendedSkillsSkipHeldOnes(t *testing.T) {
	counselor := newTestCounselor()

	skills := types.SkillSet{
		taxonomy.Databases: {"postgresql", "mysql", "mongodb"},
	}
	report := counselor.AnalyzeGap(skills, DomainDevopsCloud, types.SeniorLevel)

	// Senior devops_cloud has no dedicated recommendation table, so the
	// taxonomy fallback applies and must not re-suggest held skills.
	for _, skill := range report.RecommendedSkills[taxonomy.Databases] {
		assert.NotContains(t, []string{"postgresql", "mysql", "mongodb"}, skill)
	}
}

func TestGenerateLearningPath_TimeframeSplitsEvenly(t *testing.T) {
	counselor := newTestCounselor()

	report := counselor.AnalyzeGap(types.SkillSet{}, DomainSoftwareDevelopment, types.SeniorLevel)
	phases := counselor.GenerateLearningPath(report, 12)

	require.Len(t, phases, len(report.AreaGaps))
	assert.Equal(t, "Months 1-3", phases[0].Timeframe)
	assert.Equal(t, "Months 4-6", phases[1].Timeframe)
}

func TestGenerateLearningPath_ShortTimeframeFloorsAtOneMonth(t *testing.T) {
	counselor := newTestCounselor()

	report := counselor.AnalyzeGap(types.SkillSet{}, DomainSoftwareDevelopment, types.SeniorLevel)
	phases := counselor.GenerateLearningPath(report, 2)

	require.NotEmpty(t, phases)
	assert.Equal(t, "Months 1-1", phases[0].Timeframe)
}

func TestGenerateLearningPath_SkillsCappedByGap(t *testing.T) {
	counselor := newTestCounselor()

	skills := types.SkillSet{
		taxonomy.ProgrammingLanguages: {"python", "go"},
	}
	report := counselor.AnalyzeGap(skills, DomainSoftwareDevelopment, types.MidLevel)

	for _, phase := range report.LearningPath {
		for _, gap := range report.AreaGaps {
			if displayName(gap.Category) == phase.FocusArea {
				assert.LessOrEqual(t, len(phase.SkillsToLearn), gap.Gap)
			}
		}
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Cloud Devops", displayName("cloud_devops"))
	assert.Equal(t, "Soft Skills", displayName("soft_skills"))
}
