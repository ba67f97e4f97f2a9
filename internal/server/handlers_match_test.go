package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/counseling"
	"github.com/jonathan/talent-matcher/internal/matching"
	"github.com/jonathan/talent-matcher/internal/taxonomy"
	"github.com/jonathan/talent-matcher/internal/types"
)

// newTestServer builds a Server wired for in-memory matching only. Handlers
// exercised here never touch the database.
func newTestServer() *Server {
	tax := taxonomy.Default()
	return &Server{
		taxonomy:  tax,
		ranker:    matching.NewRanker(tax),
		counselor: counseling.NewCounselor(tax, nil),
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleRank_InlineCandidates(t *testing.T) {
	s := newTestServer()

	strong := types.CandidateProfile{
		ID:         uuid.New(),
		Name:       "Strong Fit",
		ResumeText: "Backend engineer building Django and Flask services in Python with PostgreSQL and Docker deployments on AWS.",
	}
	weak := types.CandidateProfile{
		ID:         uuid.New(),
		Name:       "Weak Fit",
		ResumeText: "Graphic designer focused on branding, typography, and print layouts.",
	}

	rec := postJSON(t, s.handleRank, "/rank", types.RankRequest{
		Job: &types.JobProfile{
			Title:          "Senior Python Engineer",
			Description:    "We need a senior engineer with 5+ years of experience in Python, Django, PostgreSQL, Docker, and AWS.",
			RequiredSkills: []string{"Python", "Django", "PostgreSQL", "Docker", "AWS"},
		},
		Candidates: []types.CandidateProfile{weak, strong},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		JobID   uuid.UUID           `json:"job_id"`
		Results []types.MatchResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response.Results, 2)

	// Best match first
	assert.Equal(t, strong.ID, response.Results[0].CandidateID)
	assert.Equal(t, weak.ID, response.Results[1].CandidateID)
	assert.Greater(t, response.Results[0].OverallScore, response.Results[1].OverallScore)
}

func TestHandleRank_EmptyCandidates(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s.handleRank, "/rank", types.RankRequest{
		Job: &types.JobProfile{
			Title:          "Python Engineer",
			RequiredSkills: []string{"Python"},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Results []types.MatchResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Empty(t, response.Results)
}

func TestHandleRank_MissingJob(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s.handleRank, "/rank", types.RankRequest{
		Candidates: []types.CandidateProfile{{ResumeText: "python developer"}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job")
}

func TestHandleRank_InvalidBody(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("POST", "/rank", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.handleRank(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGap_WithSkills(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s.handleGap, "/gap", types.GapRequest{
		Skills:       []string{"python", "sql", "docker"},
		TargetDomain: "software_development",
		TargetLevel:  types.SeniorLevel,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var report types.SkillGapReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))

	assert.Equal(t, "software_development", report.TargetDomain)
	assert.Equal(t, types.SeniorLevel, report.TargetLevel)
	assert.Greater(t, report.ReadinessScore, 0.0)
	assert.Less(t, report.ReadinessScore, 100.0)
	assert.NotEmpty(t, report.AreaGaps)
	assert.NotEmpty(t, report.LearningPath)
}

func TestHandleGap_TimeframeOverride(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s.handleGap, "/gap", types.GapRequest{
		ResumeText:      "No technology keywords here at all.",
		TargetLevel:     types.SeniorLevel,
		TimeframeMonths: 12,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var report types.SkillGapReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))

	// Senior level tracks 4 key areas; 12 months split across 4 phases.
	require.Len(t, report.LearningPath, 4)
	assert.Equal(t, "Months 1-3", report.LearningPath[0].Timeframe)
}

func TestHandleGap_NoSkillSource(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s.handleGap, "/gap", types.GapRequest{
		TargetDomain: "data_science",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLearningPath(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s.handleLearningPath, "/gap/learning-path", types.GapRequest{
		ResumeText:      "No technology keywords here at all.",
		TargetLevel:     types.SeniorLevel,
		TimeframeMonths: 12,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		LearningPath []types.LearningPhase `json:"learning_path"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response.LearningPath, 4)
	assert.Equal(t, "Months 1-3", response.LearningPath[0].Timeframe)
}

func TestHandleCareer_InlineCandidate(t *testing.T) {
	s := newTestServer()

	years := 4
	rec := postJSON(t, s.handleCareer, "/career", types.CareerRequest{
		Candidate: &types.CandidateProfile{
			Name:            "Dev",
			ResumeText:      "Engineer shipping Python and Go services with Docker, Kubernetes, Terraform, and AWS. PostgreSQL and Redis for storage.",
			ExperienceYears: &years,
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var recommendation types.CareerRecommendation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&recommendation))

	assert.NotEmpty(t, recommendation.Current.Domain)
	assert.NotEmpty(t, recommendation.Current.Level)
	assert.NotNil(t, recommendation.GapReport)
	assert.NotEmpty(t, recommendation.ActionItems)
	assert.Empty(t, recommendation.AIGuidance)
}

func TestHandleCareer_MissingCandidate(t *testing.T) {
	s := newTestServer()

	rec := postJSON(t, s.handleCareer, "/career", types.CareerRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_Health(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
