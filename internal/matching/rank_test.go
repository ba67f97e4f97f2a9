package matching

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
)

func newTestRanker() *Ranker {
	return NewRanker(taxonomy.Default())
}

func TestNewRankerWithOptions(t *testing.T) {
	ranker := NewRankerWithOptions(taxonomy.Default(), Options{Workers: 2, MaxVocabulary: 50})
	assert.Equal(t, 2, ranker.workers)
	require.NotNil(t, ranker.scorer)

	// Zero values fall back to defaults.
	fallback := NewRankerWithOptions(taxonomy.Default(), Options{})
	assert.Greater(t, fallback.workers, 0)
}

func TestRank_SingleWorkerOrderingMatchesDefault(t *testing.T) {
	job := types.JobProfile{
		Title:          "Backend Engineer",
		Description:    "Python and PostgreSQL services on AWS.",
		RequiredSkills: []string{"Python", "PostgreSQL", "AWS"},
	}
	candidates := []types.CandidateProfile{
		{ID: uuid.New(), ResumeText: "Designer working in Figma and Illustrator."},
		{ID: uuid.New(), ResumeText: "Python engineer running PostgreSQL on AWS."},
	}

	serial := NewRankerWithOptions(taxonomy.Default(), Options{Workers: 1})
	parallel := newTestRanker()

	serialResults, err := serial.Rank(context.Background(), job, candidates)
	require.NoError(t, err)
	parallelResults, err := parallel.Rank(context.Background(), job, candidates)
	require.NoError(t, err)

	require.Len(t, serialResults, 2)
	for i := range serialResults {
		assert.Equal(t, parallelResults[i].CandidateID, serialResults[i].CandidateID)
		assert.InDelta(t, parallelResults[i].OverallScore, serialResults[i].OverallScore, 1e-12)
	}
}

func TestRank_EmptyCandidateList(t *testing.T) {
	ranker := newTestRanker()

	results, err := ranker.Rank(context.Background(), types.JobProfile{Description: "Go developer"}, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRank_SkillCoverageWins(t *testing.T) {
	ranker := newTestRanker()

	job := types.JobProfile{
		ID:             uuid.New(),
		Title:          "Cloud Engineer",
		Description:    "We need Python and AWS experience.",
		RequiredSkills: []string{"Python", "AWS"},
	}

	candidateA := types.CandidateProfile{
		ID:         uuid.New(),
		ResumeText: "Engineer experienced with Python, AWS and Docker deployments.",
		Skills: types.SkillSet{
			taxonomy.ProgrammingLanguages: {"python"},
			taxonomy.CloudDevops:          {"aws", "docker"},
		},
	}
	candidateB := types.CandidateProfile{
		ID:         uuid.New(),
		ResumeText: "Java developer maintaining enterprise applications.",
		Skills: types.SkillSet{
			taxonomy.ProgrammingLanguages: {"java"},
		},
	}

	results, err := ranker.Rank(context.Background(), job, []types.CandidateProfile{candidateB, candidateA})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, candidateA.ID, results[0].CandidateID, "A must rank above B")
	var scoreA, scoreB float64
	for _, r := range results {
		if r.CandidateID == candidateA.ID {
			scoreA = r.Subscores.SkillMatch
		} else {
			scoreB = r.Subscores.SkillMatch
		}
	}
	assert.Greater(t, scoreA, scoreB, "A's skillMatch must be strictly greater")
}

func TestRank_TextSimilarityBreaksOtherwiseEqualCandidates(t *testing.T) {
	ranker := newTestRanker()

	job := types.JobProfile{
		ID:             uuid.New(),
		Title:          "Backend Engineer",
		Description:    "Building distributed payment processing systems in Go with PostgreSQL.",
		RequiredSkills: []string{"Go"},
	}

	sharedSkills := types.SkillSet{taxonomy.ProgrammingLanguages: {"go"}}
	years := 4

	near := types.CandidateProfile{
		ID:              uuid.New(),
		ResumeText:      "Built distributed payment processing systems in Go backed by PostgreSQL.",
		Skills:          sharedSkills,
		ExperienceYears: &years,
	}
	far := types.CandidateProfile{
		ID:              uuid.New(),
		ResumeText:      "Maintained legacy desktop applications for retail kiosks.",
		Skills:          sharedSkills,
		ExperienceYears: &years,
	}

	results, err := ranker.Rank(context.Background(), job, []types.CandidateProfile{far, near})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, near.ID, results[0].CandidateID)
	assert.Greater(t, results[0].Subscores.TextSimilarity, results[1].Subscores.TextSimilarity)
}

func TestRank_DeterministicAcrossRuns(t *testing.T) {
	ranker := newTestRanker()

	job := types.JobProfile{
		ID:             uuid.New(),
		Description:    "Senior Python engineer, 5+ years experience, AWS required.",
		RequiredSkills: []string{"Python", "AWS", "Docker"},
	}

	candidates := []types.CandidateProfile{
		{ID: uuid.New(), ResumeText: "Python and AWS veteran with Docker and Kubernetes."},
		{ID: uuid.New(), ResumeText: "Full stack JavaScript developer using React."},
		{ID: uuid.New(), ResumeText: "Python data engineer building Airflow pipelines on AWS."},
	}

	first, err := ranker.Rank(context.Background(), job, candidates)
	require.NoError(t, err)
	second, err := ranker.Rank(context.Background(), job, candidates)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRank_TiesPreserveInputOrder(t *testing.T) {
	ranker := newTestRanker()

	// Identical candidates (different IDs) must tie and keep input order
	job := types.JobProfile{Description: "Go developer", RequiredSkills: []string{"Go"}}
	idFirst, idSecond := uuid.New(), uuid.New()
	template := types.CandidateProfile{
		ResumeText: "Go developer",
		Skills:     types.SkillSet{taxonomy.ProgrammingLanguages: {"go"}},
	}
	first, second := template, template
	first.ID, second.ID = idFirst, idSecond

	results, err := ranker.Rank(context.Background(), job, []types.CandidateProfile{first, second})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, results[0].OverallScore, results[1].OverallScore)
	assert.Equal(t, idFirst, results[0].CandidateID)
	assert.Equal(t, idSecond, results[1].CandidateID)
}

func TestRank_AllScoresInRange(t *testing.T) {
	ranker := newTestRanker()

	job := types.JobProfile{
		Description:    "Senior engineer. Master's degree required. Minimum 8 years.",
		RequiredSkills: []string{"Go", "Kubernetes", "PostgreSQL", "leadership"},
	}
	candidates := []types.CandidateProfile{
		{ID: uuid.New(), ResumeText: ""},
		{ID: uuid.New(), ResumeText: "Go Kubernetes PostgreSQL leadership", Education: []types.Education{{Degree: "PhD"}}},
	}

	results, err := ranker.Rank(context.Background(), job, candidates)
	require.NoError(t, err)

	for _, r := range results {
		for name, score := range map[string]float64{
			"overall":    r.OverallScore,
			"text":       r.Subscores.TextSimilarity,
			"skill":      r.Subscores.SkillMatch,
			"experience": r.Subscores.ExperienceMatch,
			"education":  r.Subscores.EducationMatch,
		} {
			assert.GreaterOrEqual(t, score, 0.0, name)
			assert.LessOrEqual(t, score, 1.0, name)
			assert.False(t, score != score, "%s is NaN", name)
		}
	}
}

func TestRank_ExtractsSkillsFromResumeWhenNotSupplied(t *testing.T) {
	ranker := newTestRanker()

	job := types.JobProfile{Description: "Python shop", RequiredSkills: []string{"Python"}}
	candidate := types.CandidateProfile{
		ID:         uuid.New(),
		ResumeText: "Five years writing Python services.",
		// Skills intentionally empty
	}

	results, err := ranker.Rank(context.Background(), job, []types.CandidateProfile{candidate})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Contains(t, results[0].MatchingSkills[taxonomy.ProgrammingLanguages], "python")
	assert.Empty(t, results[0].MissingSkills)
}

func TestRank_CanceledContext(t *testing.T) {
	ranker := newTestRanker()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ranker.Rank(ctx, types.JobProfile{Description: "x"}, []types.CandidateProfile{{ID: uuid.New()}})
	assert.Error(t, err)
}

func TestRecommendJobs_TopNOrdering(t *testing.T) {
	ranker := newTestRanker()

	candidate := types.CandidateProfile{
		ID:         uuid.New(),
		ResumeText: "Python engineer with AWS and Docker experience.",
		Skills: types.SkillSet{
			taxonomy.ProgrammingLanguages: {"python"},
			taxonomy.CloudDevops:          {"aws", "docker"},
		},
	}

	jobs := []types.JobProfile{
		{ID: uuid.New(), Title: "Ruby Developer", Description: "Rails monolith work", RequiredSkills: []string{"Ruby", "Rails"}},
		{ID: uuid.New(), Title: "Cloud Engineer", Description: "Python on AWS with Docker", RequiredSkills: []string{"Python", "AWS", "Docker"}},
		{ID: uuid.New(), Title: "DBA", Description: "Oracle administration", RequiredSkills: []string{"Oracle"}},
	}

	matches, err := ranker.RecommendJobs(context.Background(), candidate, jobs, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, "Cloud Engineer", matches[0].Title)
	assert.GreaterOrEqual(t, matches[0].OverallScore, matches[1].OverallScore)
}
