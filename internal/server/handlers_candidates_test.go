package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/types"
)

type scriptedLLM struct {
	response string
	err      error
}

func (c *scriptedLLM) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return c.response, c.err
}

func (c *scriptedLLM) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return c.response, c.err
}

func (c *scriptedLLM) GetModel(llm.ModelTier) string { return "scripted" }
func (c *scriptedLLM) Close() error                  { return nil }

func TestEnrichFromResume_LLMExtraction(t *testing.T) {
	s := newTestServer()
	s.llmClient = &scriptedLLM{response: `{
		"name": "Ada Example",
		"skills": ["python", "postgresql", "kubernetes"],
		"experience_years": 6,
		"degrees": ["Master of Science in Data Engineering"]
	}`}

	candidate := &types.CandidateProfile{ResumeText: "Seasoned data engineer."}
	s.enrichFromResume(t.Context(), candidate)

	assert.Equal(t, "Ada Example", candidate.Name)
	require.NotNil(t, candidate.ExperienceYears)
	assert.Equal(t, 6, *candidate.ExperienceYears)
	require.Len(t, candidate.Education, 1)
	assert.Equal(t, "Master of Science in Data Engineering", candidate.Education[0].Degree)
	assert.Equal(t, 3, candidate.Skills.Total())
}

func TestEnrichFromResume_RequestFieldsWin(t *testing.T) {
	s := newTestServer()
	s.llmClient = &scriptedLLM{response: `{
		"name": "Wrong Name",
		"skills": ["go"],
		"experience_years": 1
	}`}

	years := 9
	candidate := &types.CandidateProfile{
		Name:            "Given Name",
		ResumeText:      "Go developer.",
		ExperienceYears: &years,
		Education:       []types.Education{{Degree: "B.S.", Field: "Physics"}},
	}
	s.enrichFromResume(t.Context(), candidate)

	assert.Equal(t, "Given Name", candidate.Name)
	assert.Equal(t, 9, *candidate.ExperienceYears)
	require.Len(t, candidate.Education, 1)
	assert.Equal(t, "Physics", candidate.Education[0].Field)
	assert.Contains(t, candidate.Skills["programming_languages"], "go")
}

func TestEnrichFromResume_LLMFailureFallsBackToTaxonomy(t *testing.T) {
	s := newTestServer()
	s.llmClient = &scriptedLLM{err: fmt.Errorf("quota exhausted")}

	candidate := &types.CandidateProfile{
		ResumeText: "Backend engineer working with Python and PostgreSQL.",
	}
	s.enrichFromResume(t.Context(), candidate)

	assert.Contains(t, candidate.Skills["programming_languages"], "python")
	assert.Contains(t, candidate.Skills["databases"], "postgresql")
}

func TestEnrichFromResume_NoClientUsesTaxonomy(t *testing.T) {
	s := newTestServer()

	candidate := &types.CandidateProfile{
		ResumeText: "Docker and Kubernetes deployments on AWS.",
	}
	s.enrichFromResume(t.Context(), candidate)

	assert.Greater(t, candidate.Skills.Total(), 0)
}
