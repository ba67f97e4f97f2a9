package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
)

func TestSkillMatch_EmptyRequirementsIsNeutral(t *testing.T) {
	candidate := types.SkillSet{taxonomy.ProgrammingLanguages: {"python", "go"}}

	overall, perCategory := SkillMatch(candidate, types.SkillSet{}, types.MidLevel)

	assert.InDelta(t, 0.5, overall, 1e-9, "no requirements anywhere should be neutral overall")
	for category, score := range perCategory {
		assert.InDelta(t, 0.5, score, 1e-9, "category %s", category)
	}
}

func TestSkillMatch_PerfectCoverageWithBonus(t *testing.T) {
	job := types.SkillSet{taxonomy.ProgrammingLanguages: {"python"}}
	candidate := types.SkillSet{taxonomy.ProgrammingLanguages: {"python"}}

	_, perCategory := SkillMatch(candidate, job, types.MidLevel)
	assert.Equal(t, 1.0, perCategory[taxonomy.ProgrammingLanguages])
}

func TestSkillMatch_SupersetBonusIsBounded(t *testing.T) {
	job := types.SkillSet{taxonomy.ProgrammingLanguages: {"python", "go"}}
	candidate := types.SkillSet{taxonomy.ProgrammingLanguages: {"python", "go", "rust"}}

	_, perCategory := SkillMatch(candidate, job, types.MidLevel)

	// Jaccard 2/3 boosted by 1.2 = 0.8; always capped at 1.0
	score := perCategory[taxonomy.ProgrammingLanguages]
	assert.InDelta(t, 0.8, score, 1e-9)
	assert.LessOrEqual(t, score, 1.0)
}

func TestSkillMatch_CaseInsensitiveComparison(t *testing.T) {
	job := types.SkillSet{taxonomy.ProgrammingLanguages: {"Python"}}
	candidate := types.SkillSet{taxonomy.ProgrammingLanguages: {"PYTHON"}}

	_, perCategory := SkillMatch(candidate, job, types.MidLevel)
	assert.Equal(t, 1.0, perCategory[taxonomy.ProgrammingLanguages])
}

func TestSkillMatch_MonotonicInRequiredSkills(t *testing.T) {
	job := types.SkillSet{taxonomy.CloudDevops: {"aws", "docker", "kubernetes"}}

	before := types.SkillSet{taxonomy.CloudDevops: {"aws"}}
	after := types.SkillSet{taxonomy.CloudDevops: {"aws", "docker"}}

	for _, level := range []types.SeniorityLevel{types.EntryLevel, types.MidLevel, types.SeniorLevel} {
		beforeScore, _ := SkillMatch(before, job, level)
		afterScore, _ := SkillMatch(after, job, level)
		assert.GreaterOrEqual(t, afterScore, beforeScore,
			"adding a required skill must not decrease the score at %s", level)
	}
}

func TestSkillMatch_ScoresInRange(t *testing.T) {
	job := types.SkillSet{
		taxonomy.ProgrammingLanguages: {"python", "java"},
		taxonomy.Databases:            {"postgresql"},
	}
	candidate := types.SkillSet{
		taxonomy.ProgrammingLanguages: {"python", "go", "rust", "c++"},
		taxonomy.SoftSkills:           {"communication"},
	}

	overall, perCategory := SkillMatch(candidate, job, types.SeniorLevel)
	assert.GreaterOrEqual(t, overall, 0.0)
	assert.LessOrEqual(t, overall, 1.0)
	for category, score := range perCategory {
		assert.GreaterOrEqual(t, score, 0.0, category)
		assert.LessOrEqual(t, score, 1.0, category)
	}
}

func TestMatchingAndMissingSkills(t *testing.T) {
	job := types.SkillSet{
		taxonomy.ProgrammingLanguages: {"python", "go"},
		taxonomy.CloudDevops:          {"aws"},
	}
	candidate := types.SkillSet{
		taxonomy.ProgrammingLanguages: {"python"},
	}

	matching := MatchingSkills(candidate, job)
	assert.Equal(t, types.SkillSet{taxonomy.ProgrammingLanguages: {"python"}}, matching)

	missing := MissingSkills(candidate, job)
	assert.Equal(t, types.SkillSet{
		taxonomy.ProgrammingLanguages: {"go"},
		taxonomy.CloudDevops:          {"aws"},
	}, missing)
}

func TestMatchingSkills_NormalizesAliases(t *testing.T) {
	job := types.SkillSet{taxonomy.ProgrammingLanguages: {"Go"}}
	candidate := types.SkillSet{taxonomy.ProgrammingLanguages: {"Golang"}}

	matching := MatchingSkills(candidate, job)
	assert.Equal(t, []string{"go"}, matching[taxonomy.ProgrammingLanguages])
	assert.Empty(t, MissingSkills(candidate, job))
}
